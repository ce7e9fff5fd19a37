package effect

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Palette remaps the styles requested by a producer before they are
// rendered, e.g. to replace "bold orange" on terminals without RGB.
type Palette struct {
	Styles map[Style]Style `yaml:"styles"`
}

// LoadPalette reads a YAML palette:
//
//	styles:
//	  bold orange: bold yellow
//	  bold gray: dim
//
// Every target style must parse.
func LoadPalette(r io.Reader) (*Palette, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &Palette{}
	if err := yaml.Unmarshal(d, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPalette, err)
	}
	for from, to := range p.Styles {
		if _, err := ParseStyle(to); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrPalette, string(from), err)
		}
	}
	return p, nil
}

// Resolve returns the style s is remapped to, or s itself.
func (p *Palette) Resolve(s Style) Style {
	if p == nil {
		return s
	}
	if to, ok := p.Styles[s]; ok {
		return to
	}
	return s
}
