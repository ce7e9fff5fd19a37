package cstml

import (
	"fmt"
	"io"
	"sort"

	"github.com/signadot/cstml/tag"
)

// Language is a grammar that can be used as the top level tag source.
type Language struct {
	Name         string
	CanonicalURL string
	// TopType is the type of the node wrapping every parse, or tag.Unknown
	// when the language yields the tags its text describes.
	TopType tag.Type
	Parse   func(r io.Reader) tag.Source
}

var languages = map[string]*Language{
	"cstml": {
		Name:         "cstml",
		CanonicalURL: "https://bablr.org/languages/core/en/cstml",
		Parse:        func(r io.Reader) tag.Source { return NewDecoder(r) },
	},
	"document": {
		Name:         "document",
		CanonicalURL: "https://bablr.org/languages/core/en/cstml#Document",
		TopType:      tag.Document,
		Parse:        NewDocumentParser,
	},
	"output": {
		Name:         "output",
		CanonicalURL: "https://bablr.org/languages/core/en/bablr-cli-verbose-output",
		TopType:      tag.Output,
		Parse:        NewOutputParser,
	},
}

// CheckProduction reports whether a parse in l can have a top node of the
// type spelled name. Languages without a top type accept any name.
func (l *Language) CheckProduction(name string) error {
	if name == "" || l.TopType == tag.Unknown || l.TopType.String() == name {
		return nil
	}
	return fmt.Errorf("%w: %s parses %s, not %q", ErrProduction, l.Name, l.TopType, name)
}

// ParseProduction is Parse for input whose top node must be of the type
// spelled name. An empty name accepts any top node.
func (l *Language) ParseProduction(r io.Reader, name string) tag.Source {
	src := l.Parse(r)
	if name == "" {
		return src
	}
	return &productionSource{src: src, name: name}
}

// productionSource checks the type of the first node opened by src.
type productionSource struct {
	src  tag.Source
	name string
	seen bool
}

func (s *productionSource) Pull() tag.Step {
	step := s.src.Pull()
	if s.seen {
		return step
	}
	if step.Ready() {
		return tag.Step{Result: s.check(step.Result)}
	}
	ch := make(chan tag.Result, 1)
	go func() {
		r, ok := <-step.Pending
		if !ok {
			r = tag.Result{Done: true}
		}
		ch <- s.check(r)
	}()
	return tag.Step{Pending: ch}
}

func (s *productionSource) check(r tag.Result) tag.Result {
	if r.Err != nil || r.Done || r.Tag.Kind != tag.OpenNode {
		return r
	}
	s.seen = true
	if got := r.Tag.TypeName(); got != s.name {
		return tag.Result{Err: fmt.Errorf("%w: top node is %s, want %s", ErrProduction, got, s.name)}
	}
	return r
}

// Lookup finds a built in language by name or canonical URL.
func Lookup(name string) (*Language, error) {
	if l, ok := languages[name]; ok {
		return l, nil
	}
	for _, l := range languages {
		if l.CanonicalURL == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrNoLanguage, name, LanguageNames())
}

func LanguageNames() []string {
	res := make([]string, 0, len(languages))
	for n := range languages {
		res = append(res, n)
	}
	sort.Strings(res)
	return res
}
