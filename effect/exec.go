package effect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Executor performs effects against an io.Writer.
type Executor struct {
	w       io.Writer
	color   bool
	palette *Palette

	// stack of active styles; nil entries render plain
	stack []*color.Color
	cache map[Style]*color.Color
}

type ExecOption func(*Executor)

// WithColor enables ANSI styling. Without it only writes have an effect,
// though pushes and pops are still checked for balance.
func WithColor(v bool) ExecOption {
	return func(x *Executor) { x.color = v }
}

func WithPalette(p *Palette) ExecOption {
	return func(x *Executor) { x.palette = p }
}

func NewExecutor(w io.Writer, opts ...ExecOption) *Executor {
	x := &Executor{w: w, cache: map[Style]*color.Color{}}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Depth returns the number of styles currently pushed.
func (x *Executor) Depth() int {
	return len(x.stack)
}

func (x *Executor) Exec(e Effect) error {
	switch e.Kind {
	case Write:
		return x.write(e.Text)
	case Push:
		c, err := x.style(e.Style)
		if err != nil {
			return err
		}
		if c == nil && len(x.stack) > 0 {
			c = x.stack[len(x.stack)-1]
		}
		x.stack = append(x.stack, c)
		return nil
	case Pop:
		n := len(x.stack)
		if n == 0 {
			return fmt.Errorf("%w: pop with no style pushed", ErrUnbalanced)
		}
		x.stack = x.stack[:n-1]
		return nil
	default:
		return fmt.Errorf("unknown effect kind %s", e.Kind)
	}
}

// Run executes every effect of r in order. It stops at the first error;
// effects executed before it are not undone.
func (x *Executor) Run(ctx context.Context, r Reader) error {
	for {
		e, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := x.Exec(e); err != nil {
			return err
		}
	}
	if len(x.stack) != 0 {
		return fmt.Errorf("%w: %d styles left pushed", ErrUnbalanced, len(x.stack))
	}
	return nil
}

func (x *Executor) write(s string) error {
	if s == "" {
		return nil
	}
	var top *color.Color
	if n := len(x.stack); n > 0 {
		top = x.stack[n-1]
	}
	if top == nil || !x.color {
		_, err := io.WriteString(x.w, s)
		return err
	}
	_, err := io.WriteString(x.w, top.Sprint(s))
	return err
}

func (x *Executor) style(s Style) (*color.Color, error) {
	if !x.color {
		return nil, nil
	}
	s = x.palette.Resolve(s)
	if c, ok := x.cache[s]; ok {
		return c, nil
	}
	c, err := ParseStyle(s)
	if err != nil {
		return nil, err
	}
	if c != nil {
		// the caller decided on color; ignore the global tty check
		c.EnableColor()
	}
	x.cache[s] = c
	return c, nil
}
