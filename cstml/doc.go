// Package cstml reads and writes CSTML, the textual form of a tag stream.
//
//	<Type>            open node
//	<Type 'value'>    open node with an intrinsic value
//	<Type 'value' />  open node with an intrinsic value, closed at once
//	</>               close node
//	name:             reference to the slot the next node fills
//	'text'            literal
//
// A [Decoder] turns CSTML text into the tags it describes. A [Printer]
// does the reverse, in a pretty or plain layout, or as a verbose trace of
// the stream when effects are requested.
//
// [ParseDocument] and [ParseOutput] are different: they parse the text
// printed by a Printer and return tags describing its syntax (open tag
// punctuation, identifiers, escapes, instruction lines). Those are the
// tags the highlight package colors.
package cstml
