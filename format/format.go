package format

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Layout selects how printed CSTML is laid out.
type Layout int

const (
	Pretty Layout = iota
	Plain
)

var (
	ErrBadLayout    = errors.New("bad layout")
	ErrBadColorMode = errors.New("bad color mode")
)

func ParseLayout(v string) (Layout, error) {
	l, ok := map[string]Layout{
		"p":      Pretty,
		"pretty": Pretty,
		"plain":  Plain,
	}[v]
	if ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLayout, v)
}

func (l Layout) String() string {
	d, err := l.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (l Layout) MarshalText() ([]byte, error) {
	switch l {
	case Pretty:
		return []byte("pretty"), nil
	case Plain:
		return []byte("plain"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a layout>", l)
	}
}

func (l *Layout) UnmarshalText(d []byte) error {
	pl, err := ParseLayout(string(d))
	if err != nil {
		return err
	}
	*l = pl
	return nil
}

func (l Layout) IsPretty() bool { return l == Pretty }

// ColorMode says when output is colored.
type ColorMode int

const (
	Auto ColorMode = iota
	Always
	Never
)

// ParseColorMode accepts auto, always and never in any case.
func ParseColorMode(v string) (ColorMode, error) {
	switch strings.ToLower(v) {
	case "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return 0, fmt.Errorf("%w: %q (want auto, always or never)", ErrBadColorMode, v)
}

func (m ColorMode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m ColorMode) MarshalText() ([]byte, error) {
	switch m {
	case Auto:
		return []byte("auto"), nil
	case Always:
		return []byte("always"), nil
	case Never:
		return []byte("never"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a color mode>", m)
	}
}

func (m *ColorMode) UnmarshalText(d []byte) error {
	pm, err := ParseColorMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

// Enabled reports whether output written to w should be colored. In auto
// mode that is when w is a terminal and the environment supports color.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// AllColorModes returns the color modes in flag help order.
func AllColorModes() []ColorMode {
	return []ColorMode{Auto, Always, Never}
}
