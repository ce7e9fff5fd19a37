package effect

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEffectJSON(t *testing.T) {
	es := []Effect{PushStyle("bold green"), WriteText("42"), PopStyle()}
	d, err := json.Marshal(es)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"Kind":"Push","Text":"","Style":"bold green"},` +
		`{"Kind":"Write","Text":"42","Style":""},` +
		`{"Kind":"Pop","Text":"","Style":""}]`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
	var back []Effect
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(es, back); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}
}

func TestKindText(t *testing.T) {
	if _, err := Kind(7).MarshalText(); err == nil {
		t.Error("expected error for unknown kind")
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Jump")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}
