package cstml

import (
	"io"
	"strings"

	"github.com/signadot/cstml/tag"
)

// ParseOutput returns the syntax tags of the verbose instruction trace
// written by a Printer with PrintEffects.
func ParseOutput(text string) tag.Source {
	return NewOutputParser(strings.NewReader(text))
}

// NewOutputParser is ParseOutput over a reader.
func NewOutputParser(r io.Reader) tag.Source {
	return &syntaxSource{lx: newLexer(r, true), top: tag.Output, item: outputItem}
}

func outputItem(s *syntaxSource, b *builder) error {
	tok, err := s.lx.next()
	if err != nil {
		return err
	}
	switch tok.Type {
	case tEOF:
		b.close()
		s.finished = true
		return nil
	case tSpace, tNewline:
		b.lit(tok.Text)
		return nil
	case tSigil:
		return instructionLine(s.lx, b, tok)
	}
	return syntaxErr(tok.Pos, "expected instruction line, got %s", tok.Type)
}

func instructionLine(lx *lexer, b *builder, sigil token) error {
	switch sigil.Text {
	case ">>>", "<<<":
		typ := tag.EnterProductionLine
		if sigil.Text == "<<<" {
			typ = tag.LeaveProductionLine
		}
		b.open("lines", typ)
		b.punct("sigilToken", sigil.Text)
		if err := productionLine(lx, b); err != nil {
			return err
		}
		b.close()
		return nil
	}

	// an exec line is told apart by what follows the sigil
	var lead []string
	tok, err := lx.next()
	for err == nil && tok.Type == tSpace {
		lead = append(lead, tok.Text)
		tok, err = lx.next()
	}
	if err != nil {
		return err
	}
	switch tok.Type {
	case tString:
		b.open("lines", tag.ExecCSTMLInstructionLine)
		b.punct("sigilToken", sigil.Text)
		b.lit(strings.Join(lead, ""))
		b.quoted("tag", tag.LiteralTag, tok)
	case tIdent:
		b.open("lines", tag.ExecSpamexInstructionLine)
		b.punct("sigilToken", sigil.Text)
		b.lit(strings.Join(lead, ""))
		if err := call(lx, b, tok); err != nil {
			return err
		}
	default:
		return syntaxErr(tok.Pos, "expected string or call after %s, got %s", sigil.Text, tok.Type)
	}
	if err := lineEnd(lx, b); err != nil {
		return err
	}
	b.close()
	return nil
}

// productionLine parses `[name:]Type` after an enter or leave sigil.
func productionLine(lx *lexer, b *builder) error {
	seenType := false
	for {
		tok, err := lx.peek()
		if err != nil {
			return err
		}
		switch {
		case tok.Type == tSpace:
			lx.next()
			b.lit(tok.Text)
		case tok.Type == tIdent && !seenType:
			lx.next()
			nxt, err := lx.peek()
			if err != nil {
				return err
			}
			if nxt.Type == tColon {
				if err := b.referenceTag("reference", tok, lx); err != nil {
					return err
				}
				continue
			}
			b.ident("type", tok.Text)
			seenType = true
		case tok.Type == tNewline || tok.Type == tEOF:
			if !seenType {
				return syntaxErr(tok.Pos, "missing production type")
			}
			return nil
		default:
			return syntaxErr(tok.Pos, "unexpected %s in production line", tok.Type)
		}
	}
}

// call parses `callee(args)`.
func call(lx *lexer, b *builder, callee token) error {
	b.open("call", tag.Call)
	b.ident("callee", callee.Text)
	tok, err := lx.next()
	if err != nil {
		return err
	}
	if tok.Type != tLParen {
		return syntaxErr(tok.Pos, "expected '(' after %s, got %s", callee.Text, tok.Type)
	}
	b.open("arguments", tag.Tuple)
	b.punct("openToken", "(")
	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		switch tok.Type {
		case tSpace:
			b.lit(tok.Text)
		case tIdent:
			if err := b.referenceTag("values", tok, lx); err != nil {
				return err
			}
		case tLAngle:
			if err := openNodeMatcher(lx, b); err != nil {
				return err
			}
		case tRParen:
			b.punct("closeToken", ")")
			b.close()
			b.close()
			return nil
		default:
			return syntaxErr(tok.Pos, "unexpected %s in arguments", tok.Type)
		}
	}
}

// openNodeMatcher parses `<Type 'value'>` once its '<' has been read.
func openNodeMatcher(lx *lexer, b *builder) error {
	b.open("values", tag.OpenNodeMatcher)
	b.punct("openToken", "<")
	id, err := lx.next()
	if err != nil {
		return err
	}
	if id.Type != tIdent {
		return syntaxErr(id.Pos, "expected node type after '<', got %s", id.Type)
	}
	b.ident("type", id.Text)
	hasValue := false
	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		switch {
		case tok.Type == tSpace:
			b.lit(tok.Text)
		case tok.Type == tString && !hasValue:
			b.quoted("intrinsicValue", tag.String, tok)
			hasValue = true
		case tok.Type == tRAngle:
			b.punct("closeToken", ">")
			b.close()
			return nil
		default:
			return syntaxErr(tok.Pos, "unexpected %s in matcher <%s", tok.Type, id.Text)
		}
	}
}

// lineEnd accepts trailing spaces before the newline ending a line. The
// newline itself is left for the next item.
func lineEnd(lx *lexer, b *builder) error {
	for {
		tok, err := lx.peek()
		if err != nil {
			return err
		}
		switch tok.Type {
		case tSpace:
			lx.next()
			b.lit(tok.Text)
		case tNewline, tEOF:
			return nil
		default:
			return syntaxErr(tok.Pos, "unexpected %s at end of line", tok.Type)
		}
	}
}
