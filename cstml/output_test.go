package cstml

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/cstml/highlight"
	"github.com/signadot/cstml/tag"
)

func TestParseOutputEnter(t *testing.T) {
	got := collect(t, ParseOutput(">>> left:Number\n"))
	want := cat(
		tag.Open("Output"),
		tag.Ref("lines"), tag.Open("EnterProductionLine"),
		punct("sigilToken", ">>>"),
		tag.Lit(" "),
		tag.Ref("reference"), tag.Open("ReferenceTag"),
		ident("name", "left"), punct("mapOperator", ":"),
		tag.Close(),
		ident("type", "Number"),
		tag.Close(),
		tag.Lit("\n"),
		tag.Close(),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestParseOutputExec(t *testing.T) {
	got := collect(t, ParseOutput(`--> eat(<P '+'>)`))
	want := cat(
		tag.Open("Output"),
		tag.Ref("lines"), tag.Open("ExecSpamexInstructionLine"),
		punct("sigilToken", "-->"),
		tag.Lit(" "),
		tag.Ref("call"), tag.Open("Call"),
		ident("callee", "eat"),
		tag.Ref("arguments"), tag.Open("Tuple"),
		punct("openToken", "("),
		tag.Ref("values"), tag.Open("OpenNodeMatcher"),
		punct("openToken", "<"), ident("type", "P"),
		tag.Lit(" "),
		tag.Ref("intrinsicValue"), tag.Open("String"),
		punct("openToken", "'"), tag.Lit("+"), punct("closeToken", "'"),
		tag.Close(),
		punct("closeToken", ">"),
		tag.Close(),
		punct("closeToken", ")"),
		tag.Close(),
		tag.Close(),
		tag.Close(),
		tag.Close(),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestParseOutputLiteral(t *testing.T) {
	got := collect(t, ParseOutput(`--> 'x'`))
	want := cat(
		tag.Open("Output"),
		tag.Ref("lines"), tag.Open("ExecCSTMLInstructionLine"),
		punct("sigilToken", "-->"),
		tag.Lit(" "),
		tag.Ref("tag"), tag.Open("LiteralTag"),
		punct("openToken", "'"), tag.Lit("x"), punct("closeToken", "'"),
		tag.Close(),
		tag.Close(),
		tag.Close(),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestParseOutputOfPrinter(t *testing.T) {
	trace := printTags(t, sampleTags(), PrintEffects(true), PrintPretty(true))
	tags := collect(t, ParseOutput(trace))
	if got := sourceText(tags); got != trace {
		t.Errorf("leaves do not rebuild the trace:\n%s", got)
	}
}

func TestParseOutputHighlight(t *testing.T) {
	trace := printTags(t, sampleTags(), PrintEffects(true))
	ws := styledWrites(t, ParseOutput(trace))
	tests := []styled{
		{">>>", highlight.StyleProduction},
		{"Expression", highlight.StyleProduction},
		{"-->", highlight.StyleInstruction},
		{"eat", highlight.StyleCallee},
		{"(", highlight.StyleInstruction},
		{")", highlight.StyleInstruction},
		{"left", highlight.StyleReferenceName},
		{"42", highlight.StyleMatcherValue},
		{"x", highlight.StyleValue},
		{"<<<", highlight.StyleProduction},
	}
	for _, tc := range tests {
		got, ok := styleOf(ws, tc.Text)
		if !ok {
			t.Errorf("%q not written", tc.Text)
			continue
		}
		if got != tc.Style {
			t.Errorf("%q styled %q, want %q", tc.Text, got, tc.Style)
		}
	}
}

func TestParseOutputErrors(t *testing.T) {
	for _, in := range []string{
		"Expression",
		">>>\n",
		">>> A B\n",
		"--> (",
		"--> eat 'x'",
		"--> eat(<A 'x' 'y'>)",
		"--> 'x' 'y'",
		"  --> 'x' >>> A",
	} {
		_, err := tag.Collect(context.Background(), ParseOutput(in))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", in, err)
		}
	}
}
