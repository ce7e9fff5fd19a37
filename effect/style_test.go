package effect

import (
	"errors"
	"testing"

	"github.com/fatih/color"
)

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{"bold green", "magenta bold", "bold orange", "bold gray", "bold cyan", "blue bold"} {
		c, err := ParseStyle(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if c == nil {
			t.Errorf("%q: expected a color", s)
		}
	}
	c, err := ParseStyle(Default)
	if err != nil || c != nil {
		t.Errorf("default style: expected nil, nil; got %v, %v", c, err)
	}
	if _, err := ParseStyle("bold chartreuse"); !errors.Is(err, ErrBadStyle) {
		t.Errorf("expected ErrBadStyle, got %v", err)
	}
}

func TestParseStyleOrderInsensitive(t *testing.T) {
	a, _ := ParseStyle("bold green")
	b, _ := ParseStyle("green bold")
	a.EnableColor()
	b.EnableColor()
	if got, want := a.Sprint("x"), paint("x", color.Bold, color.FgGreen); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := b.Sprint("x"), paint("x", color.FgGreen, color.Bold); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
