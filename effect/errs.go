package effect

import "errors"

var (
	ErrBadStyle   = errors.New("bad style")
	ErrUnbalanced = errors.New("unbalanced style stack")
	ErrPalette    = errors.New("bad palette")
)
