package cstml

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

type tokType int

const (
	tEOF tokType = iota
	tSpace
	tNewline
	tLAngle      // <
	tLAngleSlash // </
	tRAngle      // >
	tSlash       // /
	tColon       // :
	tLParen      // (
	tRParen      // )
	tIdent
	tString
	tSigil // >>> <<< --> at the start of a line
)

func (t tokType) String() string {
	switch t {
	case tEOF:
		return "end of input"
	case tSpace:
		return "space"
	case tNewline:
		return "newline"
	case tLAngle:
		return "'<'"
	case tLAngleSlash:
		return "'</'"
	case tRAngle:
		return "'>'"
	case tSlash:
		return "'/'"
	case tColon:
		return "':'"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tIdent:
		return "identifier"
	case tString:
		return "string"
	case tSigil:
		return "sigil"
	default:
		return "unknown"
	}
}

// segment is a run of a quoted string's body: either literal text or a
// single escape sequence, both raw.
type segment struct {
	Text   string
	Escape bool
}

type token struct {
	Type tokType
	Text string
	Pos  Pos

	// tString only
	Value string
	Segs  []segment
}

var punctTypes = map[rune]tokType{
	'>': tRAngle,
	'/': tSlash,
	':': tColon,
	'(': tLParen,
	')': tRParen,
}

var sigils = [][]byte{[]byte(">>>"), []byte("<<<"), []byte("-->")}

type lexer struct {
	r   *bufio.Reader
	pos Pos

	// sigils enables instruction line sigils; lineStart is true while only
	// spaces have been read on the current line.
	sigils    bool
	lineStart bool

	peeked *token
}

func newLexer(r io.Reader, sigils bool) *lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &lexer{r: br, pos: Pos{Line: 1, Col: 1}, sigils: sigils, lineStart: true}
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}
	return c, nil
}

func (l *lexer) peekRune() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return c, l.r.UnreadRune()
}

func (l *lexer) peek() (token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.next()
	if err != nil {
		return tok, err
	}
	l.peeked = &tok
	return tok, nil
}

func (l *lexer) next() (token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	start := l.pos
	c, err := l.peekRune()
	if errors.Is(err, io.EOF) {
		return token{Type: tEOF, Pos: start}, nil
	}
	if err != nil {
		return token{}, err
	}
	switch {
	case c == '\n':
		l.read()
		l.lineStart = true
		return token{Type: tNewline, Text: "\n", Pos: start}, nil
	case c == ' ' || c == '\t' || c == '\r':
		return l.space(start)
	}
	if l.sigils && l.lineStart {
		if d, _ := l.r.Peek(3); len(d) == 3 {
			for _, s := range sigils {
				if bytes.Equal(d, s) {
					l.r.Discard(3)
					l.pos.Col += 3
					l.lineStart = false
					return token{Type: tSigil, Text: string(s), Pos: start}, nil
				}
			}
		}
	}
	l.lineStart = false
	switch {
	case c == '<':
		l.read()
		if n, err := l.peekRune(); err == nil && n == '/' {
			l.read()
			return token{Type: tLAngleSlash, Text: "</", Pos: start}, nil
		}
		return token{Type: tLAngle, Text: "<", Pos: start}, nil
	case c == '\'' || c == '"':
		return l.quoted(start)
	case isIdentStart(c):
		return l.ident(start)
	}
	if tt, ok := punctTypes[c]; ok {
		l.read()
		return token{Type: tt, Text: string(c), Pos: start}, nil
	}
	return token{}, syntaxErr(start, "unexpected %q", c)
}

func (l *lexer) space(start Pos) (token, error) {
	var b strings.Builder
	for {
		c, err := l.peekRune()
		if err != nil || (c != ' ' && c != '\t' && c != '\r') {
			break
		}
		l.read()
		b.WriteRune(c)
	}
	return token{Type: tSpace, Text: b.String(), Pos: start}, nil
}

func (l *lexer) ident(start Pos) (token, error) {
	var b strings.Builder
	for {
		c, err := l.peekRune()
		if err != nil || !isIdentPart(c) {
			break
		}
		l.read()
		b.WriteRune(c)
	}
	return token{Type: tIdent, Text: b.String(), Pos: start}, nil
}

func (l *lexer) quoted(start Pos) (token, error) {
	q, _ := l.read()
	var (
		raw, val, lit strings.Builder
		segs          []segment
	)
	raw.WriteRune(q)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{Text: lit.String()})
			lit.Reset()
		}
	}
	for {
		at := l.pos
		c, err := l.read()
		if errors.Is(err, io.EOF) {
			return token{}, syntaxErr(start, "unterminated string")
		}
		if err != nil {
			return token{}, err
		}
		switch c {
		case q:
			raw.WriteRune(c)
			flush()
			return token{Type: tString, Text: raw.String(), Pos: start, Value: val.String(), Segs: segs}, nil
		case '\n':
			return token{}, syntaxErr(at, "newline in string")
		case '\\':
			esc, err := l.escape()
			if err != nil {
				return token{}, err
			}
			_, r, err := unescape(esc)
			if err != nil {
				return token{}, &SyntaxError{Pos: at, Msg: err.Error()}
			}
			flush()
			segs = append(segs, segment{Text: esc, Escape: true})
			raw.WriteString(esc)
			val.WriteRune(r)
		default:
			raw.WriteRune(c)
			lit.WriteRune(c)
			val.WriteRune(c)
		}
	}
}

// escape reads the remainder of an escape sequence whose backslash has
// been consumed and returns the whole sequence.
func (l *lexer) escape() (string, error) {
	at := l.pos
	c, err := l.read()
	if err != nil {
		return "", syntaxErr(at, "unterminated escape")
	}
	esc := []rune{'\\', c}
	if c == 'u' {
		for range 4 {
			h, err := l.read()
			if err != nil {
				return "", syntaxErr(at, "unterminated escape")
			}
			esc = append(esc, h)
		}
	}
	return string(esc), nil
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
