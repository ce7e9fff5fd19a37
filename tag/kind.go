package tag

import "fmt"

// Kind discriminates the four tag variants.
type Kind int

const (
	OpenNode Kind = iota
	CloseNode
	Reference
	Literal
)

func (k Kind) String() string {
	switch k {
	case OpenNode:
		return "OpenNode"
	case CloseNode:
		return "CloseNode"
	case Reference:
		return "Reference"
	case Literal:
		return "Literal"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, ok := map[string]Kind{
		"OpenNode":  OpenNode,
		"CloseNode": CloseNode,
		"Reference": Reference,
		"Literal":   Literal,
	}[string(d)]
	if ok {
		*k = pk
		return nil
	}
	return fmt.Errorf("unknown kind %q", string(d))
}
