package effect

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette(strings.NewReader(`
styles:
  bold orange: bold yellow
  bold gray: dim
`))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Resolve("bold orange"); got != "bold yellow" {
		t.Errorf("got %q", got)
	}
	if got := p.Resolve("bold cyan"); got != "bold cyan" {
		t.Errorf("unmapped style changed: %q", got)
	}
	var nilp *Palette
	if got := nilp.Resolve("bold"); got != "bold" {
		t.Errorf("nil palette changed style: %q", got)
	}
}

func TestLoadPaletteBadTarget(t *testing.T) {
	_, err := LoadPalette(strings.NewReader("styles:\n  bold: glittery\n"))
	if !errors.Is(err, ErrPalette) || !errors.Is(err, ErrBadStyle) {
		t.Errorf("expected ErrPalette wrapping ErrBadStyle, got %v", err)
	}
}
