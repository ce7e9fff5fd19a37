package cstml

import (
	"io"
	"strings"

	"github.com/signadot/cstml/tag"
)

// builder accumulates the syntax tags of one top level item.
type builder struct {
	tags []tag.Tag
}

func (b *builder) ref(name string) {
	if name != "" {
		b.tags = append(b.tags, tag.Ref(name))
	}
}

func (b *builder) open(ref string, typ tag.Type) {
	b.ref(ref)
	b.tags = append(b.tags, tag.Open(typ.String()))
}

func (b *builder) close() {
	b.tags = append(b.tags, tag.Close())
}

func (b *builder) lit(s string) {
	if s != "" {
		b.tags = append(b.tags, tag.Lit(s))
	}
}

func (b *builder) punct(ref, v string) {
	b.ref(ref)
	b.tags = append(b.tags, tag.OpenValue(tag.Punctuator.String(), v), tag.Close())
}

func (b *builder) ident(ref, name string) {
	b.open(ref, tag.Identifier)
	b.lit(name)
	b.close()
}

// quoted adds a string node of type typ for a tString token, splitting
// escapes into their own nodes.
func (b *builder) quoted(ref string, typ tag.Type, tok token) {
	q := tok.Text[:1]
	b.open(ref, typ)
	b.punct("openToken", q)
	for _, seg := range tok.Segs {
		if !seg.Escape {
			b.lit(seg.Text)
			continue
		}
		b.open("content", tag.EscapeSequence)
		b.lit(seg.Text)
		b.close()
	}
	b.punct("closeToken", q)
	b.close()
}

// referenceTag adds `name:` given the name token; the colon is read from lx.
func (b *builder) referenceTag(ref string, name token, lx *lexer) error {
	c, err := lx.next()
	if err != nil {
		return err
	}
	if c.Type != tColon {
		return syntaxErr(c.Pos, "expected ':' after %q, got %s", name.Text, c.Type)
	}
	b.open(ref, tag.ReferenceTag)
	b.ident("name", name.Text)
	b.punct("mapOperator", ":")
	b.close()
	return nil
}

// syntaxSource lazily parses text one top level item at a time. The tags
// of an item are released only once the whole item has parsed.
type syntaxSource struct {
	lx       *lexer
	top      tag.Type
	item     func(*syntaxSource, *builder) error
	queue    []tag.Tag
	started  bool
	finished bool
	err      error
}

func (s *syntaxSource) Pull() tag.Step {
	for len(s.queue) == 0 {
		if s.err != nil {
			return tag.Step{Result: tag.Result{Err: s.err}}
		}
		if s.finished {
			return tag.Step{Result: tag.Result{Done: true}}
		}
		b := &builder{}
		if !s.started {
			s.started = true
			b.open("", s.top)
		} else if err := s.item(s, b); err != nil {
			s.err = err
			continue
		}
		s.queue = b.tags
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	return tag.Step{Result: tag.Result{Tag: t}}
}

// ParseDocument returns the syntax tags of CSTML document text.
func ParseDocument(text string) tag.Source {
	return NewDocumentParser(strings.NewReader(text))
}

// NewDocumentParser is ParseDocument over a reader.
func NewDocumentParser(r io.Reader) tag.Source {
	return &syntaxSource{lx: newLexer(r, false), top: tag.Document, item: documentItem}
}

func documentItem(s *syntaxSource, b *builder) error {
	tok, err := s.lx.next()
	if err != nil {
		return err
	}
	switch tok.Type {
	case tEOF:
		b.close()
		s.finished = true
	case tSpace, tNewline:
		b.lit(tok.Text)
	case tIdent:
		return b.referenceTag("tags", tok, s.lx)
	case tLAngle:
		return openNodeTag(s.lx, b)
	case tLAngleSlash:
		b.open("tags", tag.CloseNodeTag)
		b.punct("openToken", "</")
		for {
			tok, err := s.lx.next()
			if err != nil {
				return err
			}
			switch tok.Type {
			case tSpace, tNewline:
				b.lit(tok.Text)
				continue
			case tRAngle:
				b.punct("closeToken", ">")
				b.close()
				return nil
			}
			return syntaxErr(tok.Pos, "expected '>' closing '</', got %s", tok.Type)
		}
	case tString:
		b.quoted("tags", tag.LiteralTag, tok)
	default:
		return syntaxErr(tok.Pos, "unexpected %s", tok.Type)
	}
	return nil
}

func openNodeTag(lx *lexer, b *builder) error {
	b.open("tags", tag.OpenNodeTag)
	b.punct("openToken", "<")
	id, err := lx.next()
	if err != nil {
		return err
	}
	if id.Type != tIdent {
		return syntaxErr(id.Pos, "expected node type after '<', got %s", id.Type)
	}
	b.ident("type", id.Text)
	hasValue, selfClose := false, false
	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		switch {
		case tok.Type == tSpace || tok.Type == tNewline:
			b.lit(tok.Text)
		case tok.Type == tString && !hasValue && !selfClose:
			b.quoted("intrinsicValue", tag.String, tok)
			hasValue = true
		case tok.Type == tSlash && !selfClose:
			b.punct("selfClosingTagToken", "/")
			selfClose = true
		case tok.Type == tRAngle:
			b.punct("closeToken", ">")
			b.close()
			return nil
		default:
			return syntaxErr(tok.Pos, "unexpected %s in open tag <%s", tok.Type, id.Text)
		}
	}
}
