package tag

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed         = errors.New("malformed tag stream")
	ErrUnmatchedClose    = errors.New("unmatched close node")
	ErrDanglingReference = errors.New("reference not followed by open node")
	ErrUnclosed          = errors.New("unclosed node at end of stream")
)

// MalformedError reports a contract violation by a tag source. It unwraps to
// ErrMalformed and to the specific cause.
type MalformedError struct {
	// Index is the position of the offending tag in the stream, counting
	// from 0. At end of stream it is the number of tags read.
	Index int
	Tag   Tag
	Depth int
	Err   error
}

func (e *MalformedError) Error() string {
	if e.Err == ErrUnclosed {
		return fmt.Sprintf("%s: %s: depth %d after %d tags", ErrMalformed, e.Err, e.Depth, e.Index)
	}
	return fmt.Sprintf("%s: %s: %s at %d (depth %d)", ErrMalformed, e.Err, e.Tag, e.Index, e.Depth)
}

func (e *MalformedError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}
