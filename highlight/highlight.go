package highlight

import (
	"context"
	"io"
	"log/slog"

	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/tag"
)

type state int

const (
	advancing state = iota
	processing
	done
)

// Highlighter is a single pass effect.Reader over a tag source. It owns its
// type stack and reference slot; run one Highlighter per stream.
type Highlighter struct {
	src   tag.Source
	types Stack

	// ref is the name of the most recent reference. It stays visible until
	// the next reference replaces it.
	ref        string
	refPending bool

	state state
	cur   tag.Tag
	n     int
	queue []effect.Effect
	err   error

	log *slog.Logger
}

type Option func(*Highlighter)

// WithLogger logs every classification at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(h *Highlighter) { h.log = l }
}

func New(src tag.Source, opts ...Option) *Highlighter {
	h := &Highlighter{src: src}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Highlight returns the effects of highlighting src.
func Highlight(src tag.Source, opts ...Option) effect.Reader {
	return New(src, opts...)
}

// Depth returns the number of nodes currently open.
func (h *Highlighter) Depth() int {
	return h.types.Depth()
}

// Next returns the next effect, io.EOF once the source is exhausted, or the
// first error met. Errors are terminal: every later call returns the same
// error. When the source answers a pull with a pending step, Next waits for
// it to settle; this is the only place it blocks.
func (h *Highlighter) Next(ctx context.Context) (effect.Effect, error) {
	for {
		if len(h.queue) > 0 {
			e := h.queue[0]
			h.queue = h.queue[1:]
			return e, nil
		}
		switch h.state {
		case done:
			if h.err != nil {
				return effect.Effect{}, h.err
			}
			return effect.Effect{}, io.EOF
		case advancing:
			res := tag.Await(ctx, h.src.Pull())
			switch {
			case res.Err != nil:
				h.fail(res.Err)
			case res.Done:
				h.finish()
			default:
				h.cur = res.Tag
				h.state = processing
			}
		case processing:
			if err := h.process(h.cur); err != nil {
				h.fail(err)
				continue
			}
			h.n++
			h.state = advancing
		}
	}
}

func (h *Highlighter) fail(err error) {
	h.err = err
	h.queue = nil
	h.state = done
}

func (h *Highlighter) finish() {
	h.state = done
	switch {
	case h.refPending:
		h.err = h.malformed(tag.Tag{}, tag.ErrDanglingReference)
	case h.types.Depth() != 0:
		h.err = h.malformed(tag.Tag{}, tag.ErrUnclosed)
	}
}

func (h *Highlighter) malformed(t tag.Tag, err error) error {
	return &tag.MalformedError{Index: h.n, Tag: t, Depth: h.types.Depth(), Err: err}
}

func (h *Highlighter) process(t tag.Tag) error {
	if h.refPending && t.Kind != tag.OpenNode {
		return h.malformed(t, tag.ErrDanglingReference)
	}
	switch t.Kind {
	case tag.OpenNode:
		h.refPending = false
		enclosing := h.types.Top()
		h.types.Push(t.Type)
		style := Classify(t, enclosing, h.ref)
		if h.log != nil {
			h.log.Debug("classify", "tag", t, "enclosing", enclosing, "ref", h.ref, "style", style)
		}
		h.queue = append(h.queue, effect.PushStyle(style))
		if t.HasIntrinsic() {
			// the value's own style, closed before the node's
			h.queue = append(h.queue,
				effect.PushStyle(style),
				effect.WriteText(t.Value),
				effect.PopStyle())
		}
	case tag.Reference:
		h.ref = t.Value
		h.refPending = true
	case tag.CloseNode:
		if _, ok := h.types.Pop(); !ok {
			return h.malformed(t, tag.ErrUnmatchedClose)
		}
		h.queue = append(h.queue, effect.PopStyle())
	case tag.Literal:
		h.queue = append(h.queue, effect.WriteText(t.Value))
	}
	return nil
}
