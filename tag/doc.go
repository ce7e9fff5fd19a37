// Package tag defines the structural tags exchanged between parsers,
// printers and the highlighter, and the pull protocol used to read them.
//
// A tag stream is a well-nested sequence of open and close node markers
// interleaved with references (naming the slot the next node fills) and
// literals (raw text):
//
//	tag.Ref("value")
//	tag.Open("LiteralTag")
//	tag.Lit("42")
//	tag.Close()
//
// # Pulling
//
// A [Source] answers each [Source.Pull] with a [Step]. A step is either
// ready, carrying a [Result], or pending, carrying a future that settles
// with the result later. [Await] is the single place a consumer blocks:
//
//	for {
//	    res := tag.Await(ctx, src.Pull())
//	    if res.Err != nil {
//	        return res.Err
//	    }
//	    if res.Done {
//	        break
//	    }
//	    use(res.Tag)
//	}
//
// [Async] runs a producer on its own goroutine and exposes its tags as a
// source whose steps are pending until the producer catches up.
package tag
