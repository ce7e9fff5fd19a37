package effect

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	Write Kind = iota
	Push
	Pop
)

func (k Kind) String() string {
	switch k {
	case Write:
		return "Write"
	case Push:
		return "Push"
	case Pop:
		return "Pop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Write, Push, Pop:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an effect kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, ok := map[string]Kind{
		"Write": Write,
		"Push":  Push,
		"Pop":   Pop,
	}[string(d)]
	if ok {
		*k = pk
		return nil
	}
	return fmt.Errorf("unknown effect kind %q", string(d))
}

// Style is a space separated style spec such as "bold green". The empty
// style is the default: it overrides nothing and inherits the enclosing
// style.
type Style string

const Default Style = ""

// Effect is one output instruction.
type Effect struct {
	Kind  Kind
	Text  string
	Style Style
}

func WriteText(s string) Effect {
	return Effect{Kind: Write, Text: s}
}

func PushStyle(s Style) Effect {
	return Effect{Kind: Push, Style: s}
}

func PopStyle() Effect {
	return Effect{Kind: Pop}
}

func (e Effect) String() string {
	switch e.Kind {
	case Write:
		return "Write(" + strconv.Quote(e.Text) + ")"
	case Push:
		if e.Style == Default {
			return "Push()"
		}
		return "Push(" + strconv.Quote(string(e.Style)) + ")"
	default:
		return e.Kind.String() + "()"
	}
}
