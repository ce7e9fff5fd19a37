package effect

import (
	"context"
	"errors"
	"io"
	"iter"
	"strings"
)

// Reader is a lazy, single pass sequence of effects. Next returns io.EOF
// once the sequence is exhausted.
type Reader interface {
	Next(ctx context.Context) (Effect, error)
}

type sliceReader struct {
	effects []Effect
}

// FromSlice returns a Reader over a fixed sequence of effects.
func FromSlice(effects ...Effect) Reader {
	return &sliceReader{effects: effects}
}

func (r *sliceReader) Next(context.Context) (Effect, error) {
	if len(r.effects) == 0 {
		return Effect{}, io.EOF
	}
	e := r.effects[0]
	r.effects = r.effects[1:]
	return e, nil
}

// All adapts r to a range-over-func sequence. Iteration stops after the
// first error, which is yielded with a zero Effect.
func All(ctx context.Context, r Reader) iter.Seq2[Effect, error] {
	return func(yield func(Effect, error) bool) {
		for {
			e, err := r.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Effect{}, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Collect drains r. On error the effects read so far are returned with it.
func Collect(ctx context.Context, r Reader) ([]Effect, error) {
	var res []Effect
	for e, err := range All(ctx, r) {
		if err != nil {
			return res, err
		}
		res = append(res, e)
	}
	return res, nil
}

// Text drains r and concatenates the text of its writes, discarding style
// changes.
func Text(ctx context.Context, r Reader) (string, error) {
	var b strings.Builder
	for e, err := range All(ctx, r) {
		if err != nil {
			return "", err
		}
		if e.Kind == Write {
			b.WriteString(e.Text)
		}
	}
	return b.String(), nil
}
