package tag

// Check validates that tags form a well-nested stream: every close matches
// an open, every reference is immediately followed by an open node, and no
// node is left open at the end.
func Check(tags []Tag) error {
	depth := 0
	for i, t := range tags {
		if i > 0 && tags[i-1].Kind == Reference && t.Kind != OpenNode {
			return &MalformedError{Index: i, Tag: t, Depth: depth, Err: ErrDanglingReference}
		}
		switch t.Kind {
		case OpenNode:
			depth++
		case CloseNode:
			if depth == 0 {
				return &MalformedError{Index: i, Tag: t, Err: ErrUnmatchedClose}
			}
			depth--
		}
	}
	n := len(tags)
	if n > 0 && tags[n-1].Kind == Reference {
		return &MalformedError{Index: n, Tag: tags[n-1], Depth: depth, Err: ErrDanglingReference}
	}
	if depth != 0 {
		return &MalformedError{Index: n, Depth: depth, Err: ErrUnclosed}
	}
	return nil
}
