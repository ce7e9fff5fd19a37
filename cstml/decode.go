package cstml

import (
	"errors"
	"io"

	"github.com/signadot/cstml/tag"
)

// Decoder reads CSTML text and yields the tags it describes. Whitespace
// between tags is insignificant.
type Decoder struct {
	lx    *lexer
	queue []tag.Tag
	err   error
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{lx: newLexer(r, false)}
}

// Next returns the next tag, or io.EOF at the end of the input. Errors are
// sticky.
func (d *Decoder) Next() (tag.Tag, error) {
	if len(d.queue) == 0 && d.err == nil {
		d.err = d.decode()
	}
	if len(d.queue) > 0 {
		t := d.queue[0]
		d.queue = d.queue[1:]
		return t, nil
	}
	return tag.Tag{}, d.err
}

// Pull makes the decoder a synchronous tag.Source.
func (d *Decoder) Pull() tag.Step {
	t, err := d.Next()
	switch {
	case errors.Is(err, io.EOF):
		return tag.Step{Result: tag.Result{Done: true}}
	case err != nil:
		return tag.Step{Result: tag.Result{Err: err}}
	}
	return tag.Step{Result: tag.Result{Tag: t}}
}

// decode reads one tag's worth of input. A self closing open tag queues
// two tags.
func (d *Decoder) decode() error {
	tok, err := d.skipSpace()
	if err != nil {
		return err
	}
	switch tok.Type {
	case tEOF:
		return io.EOF
	case tIdent:
		c, err := d.lx.next()
		if err != nil {
			return err
		}
		if c.Type != tColon {
			return syntaxErr(c.Pos, "expected ':' after reference name %q, got %s", tok.Text, c.Type)
		}
		d.queue = append(d.queue, tag.Ref(tok.Text))
		return nil
	case tLAngle:
		return d.openTag()
	case tLAngleSlash:
		c, err := d.skipSpace()
		if err != nil {
			return err
		}
		if c.Type != tRAngle {
			return syntaxErr(c.Pos, "expected '>' closing '</', got %s", c.Type)
		}
		d.queue = append(d.queue, tag.Close())
		return nil
	case tString:
		d.queue = append(d.queue, tag.Lit(tok.Value))
		return nil
	}
	return syntaxErr(tok.Pos, "unexpected %s", tok.Type)
}

func (d *Decoder) openTag() error {
	id, err := d.lx.next()
	if err != nil {
		return err
	}
	if id.Type != tIdent {
		return syntaxErr(id.Pos, "expected node type after '<', got %s", id.Type)
	}
	var (
		value     string
		hasValue  bool
		selfClose bool
	)
	for {
		tok, err := d.skipSpace()
		if err != nil {
			return err
		}
		switch {
		case tok.Type == tString && !hasValue && !selfClose:
			value, hasValue = tok.Value, true
			continue
		case tok.Type == tSlash && !selfClose:
			selfClose = true
			continue
		case tok.Type == tRAngle:
		default:
			return syntaxErr(tok.Pos, "unexpected %s in open tag <%s", tok.Type, id.Text)
		}
		break
	}
	d.queue = append(d.queue, tag.OpenValue(id.Text, value))
	if selfClose {
		d.queue = append(d.queue, tag.Close())
	}
	return nil
}

func (d *Decoder) skipSpace() (token, error) {
	for {
		tok, err := d.lx.next()
		if err != nil {
			return tok, err
		}
		if tok.Type != tSpace && tok.Type != tNewline {
			return tok, nil
		}
	}
}
