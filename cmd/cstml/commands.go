package main

import (
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/cstml/cstml"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Format: true}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "l",
			Aliases:     []string{"language"},
			Description: "input language: " + strings.Join(cstml.LanguageNames(), ", ") + " (default cstml)",
			Type:        cli.NamedFuncOpt(cfg.languageOpt, "(language)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"color"},
			Description: "color output: auto, always, never (default auto)",
			Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cstml").
		WithSynopsis("cstml [-l language] [-p production] [-f|-F] [-v] [-c auto|always|never] [-e] [-theme file] [files]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cstmlMain(cfg, cc, args)
		})
}

const mainDescription = `cstml prints concrete syntax tree markup.

The input is parsed in the given language into a stream of tags which is
printed as CSTML, pretty (-f, the default) or plain (-F). With -v the
instruction trace of the stream is printed instead:

  >>> name:Type      a node is entered
  --> eat(<Type 'v'>) a node with an intrinsic value is consumed
  --> 'text'         literal text
  <<< Type           a node is left

When the output is colored the printed text is highlighted. A palette file
given with -theme remaps the highlight styles:

  styles:
    bold orange: bold yellow

With -p the top node of the input must have the given type; for the
document and output languages it must name their top production.

Input is read as it arrives, so a stream can be printed while it is still
being written, except with -e or colored output which need all of it.

With -e the input is a single quoted CSTML string, as found embedded in
other output, and its content is what is parsed.`
