package cstml

import (
	"context"
	"io"
	"strings"

	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/tag"
)

const indentWidth = 2

// Printer renders a tag stream as CSTML text. It is an effect.Reader whose
// effects are all writes, one per tag that produces output.
type Printer struct {
	src     tag.Source
	pretty  bool
	effects bool

	names  []string
	ref    string
	hasRef bool
	// an intrinsic open tag was written without its closing '>'
	selfClosable bool
	// the last tag opened an intrinsic node (verbose form)
	ate bool

	n    int
	done bool
	err  error
}

type PrintOption func(*Printer)

// PrintPretty selects the indented, one tag per line layout.
func PrintPretty(v bool) PrintOption {
	return func(p *Printer) { p.pretty = v }
}

// PrintEffects selects the verbose form: a trace of instruction lines
// rather than a document.
func PrintEffects(v bool) PrintOption {
	return func(p *Printer) { p.effects = v }
}

func NewPrinter(src tag.Source, opts ...PrintOption) *Printer {
	p := &Printer{src: src}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) Next(ctx context.Context) (effect.Effect, error) {
	for {
		if p.done {
			if p.err != nil {
				return effect.Effect{}, p.err
			}
			return effect.Effect{}, io.EOF
		}
		res := tag.Await(ctx, p.src.Pull())
		var (
			out string
			err error
		)
		switch {
		case res.Err != nil:
			err = res.Err
		case res.Done:
			p.done = true
			err = p.finish()
		case p.effects:
			out, err = p.trace(res.Tag)
		default:
			out, err = p.document(res.Tag)
		}
		if err != nil {
			p.done, p.err = true, err
			continue
		}
		p.n++
		if out != "" {
			return effect.WriteText(out), nil
		}
	}
}

func (p *Printer) malformed(t tag.Tag, err error) error {
	return &tag.MalformedError{Index: p.n, Tag: t, Depth: len(p.names), Err: err}
}

func (p *Printer) check(t tag.Tag) error {
	if p.hasRef && t.Kind != tag.OpenNode {
		return p.malformed(t, tag.ErrDanglingReference)
	}
	if t.Kind == tag.CloseNode && len(p.names) == 0 {
		return p.malformed(t, tag.ErrUnmatchedClose)
	}
	return nil
}

func (p *Printer) finish() error {
	if p.hasRef {
		return p.malformed(tag.Tag{}, tag.ErrDanglingReference)
	}
	if len(p.names) != 0 {
		return p.malformed(tag.Tag{}, tag.ErrUnclosed)
	}
	return nil
}

func (p *Printer) pop() string {
	n := len(p.names)
	name := p.names[n-1]
	p.names = p.names[:n-1]
	return name
}

func (p *Printer) indent(b *strings.Builder) {
	if p.pretty {
		b.WriteString(strings.Repeat(" ", indentWidth*len(p.names)))
	}
}

func (p *Printer) newline(b *strings.Builder) {
	if p.pretty || p.effects {
		b.WriteByte('\n')
	}
}

// takeRef returns the pending reference rendered as a prefix.
func (p *Printer) takeRef(sep string) string {
	if !p.hasRef {
		return ""
	}
	p.hasRef = false
	return p.ref + ":" + sep
}

func (p *Printer) document(t tag.Tag) (string, error) {
	if err := p.check(t); err != nil {
		return "", err
	}
	var b strings.Builder
	if p.selfClosable {
		p.selfClosable = false
		if t.Kind == tag.CloseNode {
			p.pop()
			b.WriteString(" />")
			p.newline(&b)
			return b.String(), nil
		}
		b.WriteByte('>')
		p.newline(&b)
	}
	switch t.Kind {
	case tag.Reference:
		p.ref, p.hasRef = t.Value, true
	case tag.OpenNode:
		p.indent(&b)
		sep := ""
		if p.pretty {
			sep = " "
		}
		b.WriteString(p.takeRef(sep))
		b.WriteByte('<')
		b.WriteString(t.TypeName())
		p.names = append(p.names, t.TypeName())
		if t.HasIntrinsic() {
			b.WriteByte(' ')
			b.WriteString(Quote(t.Value))
			p.selfClosable = true
			break
		}
		b.WriteByte('>')
		p.newline(&b)
	case tag.CloseNode:
		p.pop()
		p.indent(&b)
		b.WriteString("</>")
		p.newline(&b)
	case tag.Literal:
		p.indent(&b)
		b.WriteString(Quote(t.Value))
		p.newline(&b)
	}
	return b.String(), nil
}

func (p *Printer) trace(t tag.Tag) (string, error) {
	if err := p.check(t); err != nil {
		return "", err
	}
	ate := p.ate
	p.ate = false
	var b strings.Builder
	switch t.Kind {
	case tag.Reference:
		p.ref, p.hasRef = t.Value, true
		return "", nil
	case tag.OpenNode:
		p.indent(&b)
		if t.HasIntrinsic() {
			b.WriteString("--> eat(")
			b.WriteString(p.takeRef(""))
			b.WriteByte('<')
			b.WriteString(t.TypeName())
			b.WriteByte(' ')
			b.WriteString(Quote(t.Value))
			b.WriteString(">)")
			p.ate = true
		} else {
			b.WriteString(">>> ")
			b.WriteString(p.takeRef(""))
			b.WriteString(t.TypeName())
		}
		p.names = append(p.names, t.TypeName())
	case tag.CloseNode:
		name := p.pop()
		if ate {
			return "", nil
		}
		p.indent(&b)
		b.WriteString("<<< ")
		b.WriteString(name)
	case tag.Literal:
		p.indent(&b)
		b.WriteString("--> ")
		b.WriteString(Quote(t.Value))
	}
	p.newline(&b)
	return b.String(), nil
}
