package cstml

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax     = errors.New("syntax error")
	ErrBadEscape  = errors.New("bad escape")
	ErrNoLanguage = errors.New("no such language")
	ErrProduction = errors.New("wrong production")
)

// Pos is a 1 based line and column in the input.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// SyntaxError reports malformed CSTML text.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrSyntax, e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErr(p Pos, format string, args ...any) error {
	return &SyntaxError{Pos: p, Msg: fmt.Sprintf(format, args...)}
}
