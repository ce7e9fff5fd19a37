package tag

import "testing"

func TestLookupType(t *testing.T) {
	for _, typ := range Types() {
		if got := LookupType(typ.String()); got != typ {
			t.Errorf("LookupType(%q) = %v", typ.String(), got)
		}
	}
	if got := LookupType("Expression"); got != Unknown {
		t.Errorf("expected Unknown for a name outside the vocabulary, got %v", got)
	}
}

func TestOpenKeepsName(t *testing.T) {
	tg := Open("Expression")
	if tg.Type != Unknown || tg.TypeName() != "Expression" {
		t.Errorf("unexpected tag %v", tg)
	}
	if got := (Tag{Kind: OpenNode, Type: Identifier}).TypeName(); got != "Identifier" {
		t.Errorf("expected vocabulary name fallback, got %q", got)
	}
}

func TestTagString(t *testing.T) {
	tests := map[Tag]string{
		OpenValue("Punctuator", "<"): `OpenNode(Punctuator "<")`,
		Close():                      "CloseNode",
		Ref("sigilToken"):            `Reference("sigilToken")`,
		Lit("a\n"):                   `Literal("a\n")`,
	}
	for tg, want := range tests {
		if got := tg.String(); got != want {
			t.Errorf("got %s want %s", got, want)
		}
	}
}
