package highlight

import "github.com/signadot/cstml/tag"

// Stack holds the types of the currently open nodes, innermost last.
type Stack struct {
	types []tag.Type
}

func (s *Stack) Push(t tag.Type) {
	s.types = append(s.types, t)
}

// Pop removes the innermost type. It reports false when the stack is empty.
func (s *Stack) Pop() (tag.Type, bool) {
	n := len(s.types)
	if n == 0 {
		return tag.Unknown, false
	}
	t := s.types[n-1]
	s.types = s.types[:n-1]
	return t, true
}

// Top returns the innermost type, or tag.Unknown when nothing is open.
func (s *Stack) Top() tag.Type {
	n := len(s.types)
	if n == 0 {
		return tag.Unknown
	}
	return s.types[n-1]
}

func (s *Stack) Depth() int {
	return len(s.types)
}
