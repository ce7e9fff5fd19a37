package cstml

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/cstml/tag"
)

func decodeAll(t *testing.T, in string) ([]tag.Tag, error) {
	t.Helper()
	return tag.Collect(context.Background(), NewDecoder(strings.NewReader(in)))
}

func TestDecode(t *testing.T) {
	in := `
<Expression>
  left: <Number>
    '42'
  </>
  op: <Punctuator '+' />
  right: <Identifier 'x'>
  </>
</>
`
	got, err := decodeAll(t, in)
	if err != nil {
		t.Fatal(err)
	}
	want := []tag.Tag{
		tag.Open("Expression"),
		tag.Ref("left"), tag.Open("Number"), tag.Lit("42"), tag.Close(),
		tag.Ref("op"), tag.OpenValue("Punctuator", "+"), tag.Close(),
		tag.Ref("right"), tag.OpenValue("Identifier", "x"), tag.Close(),
		tag.Close(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestDecodeEscapes(t *testing.T) {
	got, err := decodeAll(t, `<S>'a\'b\nA'</>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1] != tag.Lit("a'b\nA") {
		t.Errorf("unexpected tags %v", got)
	}
}

func TestDecodeEmpty(t *testing.T) {
	d := NewDecoder(strings.NewReader("  \n"))
	if _, err := d.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in  string
		pos Pos
	}{
		{in: "<>", pos: Pos{1, 2}},
		{in: "name <A>", pos: Pos{1, 5}},
		{in: "<A 'x' 'y'>", pos: Pos{1, 8}},
		{in: "</ x>", pos: Pos{1, 4}},
		{in: "\n'abc", pos: Pos{2, 1}},
		{in: "'a\nb'", pos: Pos{1, 3}},
		{in: "'\\q'", pos: Pos{1, 2}},
		{in: "<A>\n  %", pos: Pos{2, 3}},
	}
	for _, tc := range tests {
		_, err := decodeAll(t, tc.in)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: expected *SyntaxError, got %v", tc.in, err)
			continue
		}
		if se.Pos != tc.pos {
			t.Errorf("%q: error at %s, want %s (%v)", tc.in, se.Pos, tc.pos, err)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected ErrSyntax", tc.in)
		}
	}
}
