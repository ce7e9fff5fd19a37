package main

import (
	"errors"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/cstml/cstml"
	"github.com/signadot/cstml/format"
)

func TestColorOpt(t *testing.T) {
	cfg := &MainConfig{}
	if _, err := cfg.colorOpt(nil, "Never"); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != format.Never {
		t.Errorf("got %s", cfg.ColorMode)
	}
	_, err := cfg.colorOpt(nil, "sometimes")
	if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, format.ErrBadColorMode) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestLanguageOpt(t *testing.T) {
	cfg := &MainConfig{}
	if cfg.language().Name != "cstml" {
		t.Errorf("default language %s", cfg.language().Name)
	}
	if _, err := cfg.languageOpt(nil, "document"); err != nil {
		t.Fatal(err)
	}
	if cfg.language().Name != "document" {
		t.Errorf("got %s", cfg.language().Name)
	}
	_, err := cfg.languageOpt(nil, "cobol")
	if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, cstml.ErrNoLanguage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		cfg  MainConfig
		want format.Layout
	}{
		{MainConfig{Format: true}, format.Pretty},
		{MainConfig{Format: true, Plain: true}, format.Plain},
		{MainConfig{}, format.Plain},
	}
	for _, tc := range tests {
		if got := tc.cfg.layout(); got != tc.want {
			t.Errorf("%+v: got %s want %s", tc.cfg, got, tc.want)
		}
	}
}

func TestMainCommand(t *testing.T) {
	if MainCommand() == nil {
		t.Fatal("no command")
	}
}

func TestCheckProduction(t *testing.T) {
	output, _ := cstml.Lookup("output")
	if err := (&MainConfig{Language: output, Production: "Output"}).checkProduction(); err != nil {
		t.Error(err)
	}
	if err := (&MainConfig{Production: "Anything"}).checkProduction(); err != nil {
		t.Error(err)
	}
	err := (&MainConfig{Language: output, Production: "Document"}).checkProduction()
	if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, cstml.ErrProduction) {
		t.Errorf("expected usage error, got %v", err)
	}
}
