// Package render selects how a tag stream becomes terminal effects.
//
// Without color the printer's writes are the result. With color the
// printed text is materialized, parsed again as syntax (the instruction
// trace grammar when effects are emitted, the document grammar otherwise)
// and highlighted.
package render

import (
	"context"
	"log/slog"

	"github.com/signadot/cstml/cstml"
	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/highlight"
	"github.com/signadot/cstml/tag"
)

type Options struct {
	// Format selects the pretty layout.
	Format      bool
	Color       bool
	EmitEffects bool

	Logger *slog.Logger
}

// Strategy produces the effects of rendering. A strategy consumes its
// source, so it yields a useful reader once.
type Strategy func() effect.Reader

func New(src tag.Source, opts Options) Strategy {
	printer := func() effect.Reader {
		return cstml.NewPrinter(src,
			cstml.PrintPretty(opts.Format),
			cstml.PrintEffects(opts.EmitEffects))
	}
	if !opts.Color {
		return printer
	}
	parse := cstml.ParseDocument
	if opts.EmitEffects {
		parse = cstml.ParseOutput
	}
	var hopts []highlight.Option
	if opts.Logger != nil {
		hopts = append(hopts, highlight.WithLogger(opts.Logger))
	}
	return func() effect.Reader {
		return &colored{text: printer(), parse: parse, hopts: hopts, log: opts.Logger}
	}
}

// colored materializes its text on the first pull and then highlights it.
type colored struct {
	text  effect.Reader
	parse func(string) tag.Source
	hopts []highlight.Option
	log   *slog.Logger

	hl  effect.Reader
	err error
}

func (c *colored) Next(ctx context.Context) (effect.Effect, error) {
	if c.err != nil {
		return effect.Effect{}, c.err
	}
	if c.hl == nil {
		text, err := effect.Text(ctx, c.text)
		if err != nil {
			c.err = err
			return effect.Effect{}, err
		}
		if c.log != nil {
			c.log.Debug("materialized", "bytes", len(text))
		}
		c.hl = highlight.Highlight(c.parse(text), c.hopts...)
	}
	return c.hl.Next(ctx)
}
