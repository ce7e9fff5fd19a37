package format

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]Layout{"p": Pretty, "pretty": Pretty, "plain": Plain} {
		got, err := ParseLayout(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseLayout("fancy"); !errors.Is(err, ErrBadLayout) {
		t.Errorf("expected ErrBadLayout, got %v", err)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"auto":   Auto,
		"Always": Always,
		"NEVER":  Never,
	}
	for in, want := range tests {
		got, err := ParseColorMode(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	for _, in := range []string{"", "yes", "colour"} {
		if _, err := ParseColorMode(in); !errors.Is(err, ErrBadColorMode) {
			t.Errorf("%q: expected ErrBadColorMode, got %v", in, err)
		}
	}
}

func TestColorModeText(t *testing.T) {
	for _, m := range AllColorModes() {
		d, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back ColorMode
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != m {
			t.Errorf("%s came back as %s", m, back)
		}
	}
	if _, err := ColorMode(9).MarshalText(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !Always.Enabled(&buf) {
		t.Error("always should enable color")
	}
	if Never.Enabled(os.Stdout) {
		t.Error("never should disable color")
	}
	if Auto.Enabled(&buf) {
		t.Error("auto should not color a buffer")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if Auto.Enabled(f) {
		t.Error("auto should not color a regular file")
	}
}
