package cstml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quote renders s as a single quoted CSTML string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Unquote is the inverse of Quote. Double quoted strings are accepted too.
func Unquote(s string) (string, error) {
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') || s[len(s)-1] != s[0] {
		return "", fmt.Errorf("%w: not a quoted string", ErrSyntax)
	}
	body := s[1 : len(s)-1]
	var b strings.Builder
	for len(body) > 0 {
		i := strings.IndexByte(body, '\\')
		if i < 0 {
			b.WriteString(body)
			break
		}
		b.WriteString(body[:i])
		n, r, err := unescape(body[i:])
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		body = body[i+n:]
	}
	return b.String(), nil
}

// unescape decodes the escape sequence at the start of s, returning its
// length in bytes and the rune it denotes.
func unescape(s string) (int, rune, error) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadEscape, s)
	}
	switch s[1] {
	case '\\', '\'', '"':
		return 2, rune(s[1]), nil
	case 'n':
		return 2, '\n', nil
	case 'r':
		return 2, '\r', nil
	case 't':
		return 2, '\t', nil
	case '0':
		return 2, 0, nil
	case 'u':
		if len(s) < 6 {
			return 0, 0, fmt.Errorf("%w: short unicode escape %q", ErrBadEscape, s)
		}
		v, err := strconv.ParseUint(s[2:6], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadEscape, s[:6])
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return 0, 0, fmt.Errorf("%w: invalid rune %q", ErrBadEscape, s[:6])
		}
		return 6, r, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrBadEscape, s[:2])
}
