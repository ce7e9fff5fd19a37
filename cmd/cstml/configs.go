package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/cstml/cstml"
	"github.com/signadot/cstml/debug"
	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/format"
	"github.com/signadot/cstml/render"
)

type MainConfig struct {
	Format     bool   `cli:"name=f aliases=format desc='print in the pretty layout'"`
	Plain      bool   `cli:"name=F aliases=plain desc='print in the plain layout'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='print the instruction trace and log debug output'"`
	Embedded   bool   `cli:"name=e aliases=embedded desc='input is one quoted CSTML string'"`
	Theme      string `cli:"name=theme desc='YAML palette file remapping highlight styles'"`
	Production string `cli:"name=p aliases=production desc='type the top node of the input must have'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Language  *cstml.Language
	ColorMode format.ColorMode

	Main *cli.Command
}

func (cfg *MainConfig) languageOpt(_ *cli.Context, v string) (any, error) {
	l, err := cstml.Lookup(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Language = l
	return l.Name, nil
}

func (cfg *MainConfig) colorOpt(_ *cli.Context, v string) (any, error) {
	m, err := format.ParseColorMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.ColorMode = m
	return m, nil
}

func (cfg *MainConfig) language() *cstml.Language {
	if cfg.Language != nil {
		return cfg.Language
	}
	l, _ := cstml.Lookup("cstml")
	return l
}

func (cfg *MainConfig) checkProduction() error {
	if err := cfg.language().CheckProduction(cfg.Production); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return nil
}

func (cfg *MainConfig) layout() format.Layout {
	if cfg.Plain || !cfg.Format {
		return format.Plain
	}
	return format.Pretty
}

func (cfg *MainConfig) renderOpts(w io.Writer, log *slog.Logger) render.Options {
	opts := render.Options{
		Format:      cfg.layout().IsPretty(),
		Color:       cfg.ColorMode.Enabled(w),
		EmitEffects: cfg.Verbose,
	}
	if cfg.Verbose || debug.Classify() {
		opts.Logger = log
	}
	return opts
}

func (cfg *MainConfig) execOpts(w io.Writer) ([]effect.ExecOption, error) {
	res := []effect.ExecOption{effect.WithColor(cfg.ColorMode.Enabled(w))}
	if cfg.Theme == "" {
		return res, nil
	}
	f, err := os.Open(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("could not open theme %q: %w", cfg.Theme, err)
	}
	defer f.Close()
	p, err := effect.LoadPalette(f)
	if err != nil {
		return nil, fmt.Errorf("error loading theme %q: %w", cfg.Theme, err)
	}
	return append(res, effect.WithPalette(p)), nil
}
