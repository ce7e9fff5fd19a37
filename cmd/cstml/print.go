package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/cstml/cstml"
	"github.com/signadot/cstml/debug"
	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/render"
	"github.com/signadot/cstml/tag"
)

func cstmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkProduction(); err != nil {
		return err
	}
	log := newLog(cfg.Verbose || debug.Classify())
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	xOpts, err := cfg.execOpts(cc.Out)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return printReader(ctx, cfg, log, cc.Out, cc.In, xOpts)
	}
	for _, file := range args {
		if err := printFile(ctx, cfg, log, cc.Out, file, xOpts); err != nil {
			return err
		}
	}
	return nil
}

func printFile(ctx context.Context, cfg *MainConfig, log *slog.Logger, w io.Writer, file string, xOpts []effect.ExecOption) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := printReader(ctx, cfg, log, w, f, xOpts); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func printReader(ctx context.Context, cfg *MainConfig, log *slog.Logger, w io.Writer, r io.Reader, xOpts []effect.ExecOption) error {
	in, err := inputReader(r, cfg.Embedded)
	if err != nil {
		return err
	}
	lang := cfg.language()
	log.Debug("parsing", "language", lang.Name, "production", cfg.Production)

	pctx, cancel := context.WithCancel(ctx)
	defer cancel()
	src := tag.Async(pctx, tag.Forward(lang.ParseProduction(in, cfg.Production)))
	var tags tag.Source = src
	if debug.Tags() {
		tags = &tagLog{src: src}
	}
	opts := cfg.renderOpts(w, log)
	var effects effect.Reader = render.New(tags, opts)()
	if debug.Effects() {
		effects = &effectLog{r: effects}
	}
	x := effect.NewExecutor(w, xOpts...)
	runErr := x.Run(ctx, effects)
	if runErr != nil {
		// unblock the producer
		cancel()
	}
	waitErr := src.Wait()
	if runErr != nil {
		return runErr
	}
	if waitErr != nil {
		return waitErr
	}
	if !opts.Format && !opts.EmitEffects {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// inputReader streams r without its final newline. Embedded input is read
// whole and unquoted.
func inputReader(r io.Reader, embedded bool) (io.Reader, error) {
	if !embedded {
		return &trimReader{r: r}, nil
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	text, err := cstml.Unquote(strings.TrimSpace(string(in)))
	if err != nil {
		return nil, fmt.Errorf("error unquoting embedded input: %w", err)
	}
	return strings.NewReader(text), nil
}

// trimReader passes its input through as it arrives, holding back a
// newline until more input shows it is not the last byte.
type trimReader struct {
	r       io.Reader
	buf     []byte
	scratch []byte
	err     error
}

func (t *trimReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n := len(t.buf)
		if n > 0 && t.buf[n-1] == '\n' {
			n--
		}
		if n > 0 {
			c := copy(p, t.buf[:n])
			t.buf = t.buf[c:]
			return c, nil
		}
		if t.err != nil {
			t.buf = nil
			return 0, t.err
		}
		if t.scratch == nil {
			t.scratch = make([]byte, 4096)
		}
		m, err := t.r.Read(t.scratch)
		t.buf = append(t.buf, t.scratch[:m]...)
		t.err = err
	}
}

type tagLog struct {
	src tag.Source
	n   int
}

func (l *tagLog) Pull() tag.Step {
	s := l.src.Pull()
	if !s.Ready() {
		debug.Logf("tag %d: pending", l.n)
		return s
	}
	l.log(s.Result)
	return s
}

func (l *tagLog) log(r tag.Result) {
	switch {
	case r.Err != nil:
		debug.Logf("tag %d: error %v", l.n, r.Err)
	case r.Done:
		debug.Logf("tag %d: done", l.n)
	default:
		debug.Logf("tag %d: %s", l.n, r.Tag)
		l.n++
	}
}

type effectLog struct {
	r effect.Reader
}

func (l *effectLog) Next(ctx context.Context) (effect.Effect, error) {
	e, err := l.r.Next(ctx)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		debug.Logf("effect error: %v", err)
	default:
		debug.LogAny(e)
	}
	return e, err
}
