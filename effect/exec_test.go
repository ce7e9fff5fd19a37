package effect

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestExecutorPlain(t *testing.T) {
	var b strings.Builder
	x := NewExecutor(&b)
	r := FromSlice(PushStyle("bold green"), WriteText("42"), PopStyle())
	if err := x.Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if b.String() != "42" {
		t.Errorf("got %q", b.String())
	}
}

func TestExecutorColor(t *testing.T) {
	var b strings.Builder
	x := NewExecutor(&b, WithColor(true))
	r := FromSlice(
		PushStyle("bold green"),
		WriteText("a"),
		PushStyle(Default),
		WriteText("b"),
		PopStyle(),
		PopStyle(),
		WriteText("c"),
	)
	if err := x.Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	want := paint("a", color.Bold, color.FgGreen) + paint("b", color.Bold, color.FgGreen) + "c"
	if b.String() != want {
		t.Errorf("got %q want %q", b.String(), want)
	}
}

func TestExecutorPalette(t *testing.T) {
	var b strings.Builder
	p := &Palette{Styles: map[Style]Style{"bold orange": "bold yellow"}}
	x := NewExecutor(&b, WithColor(true), WithPalette(p))
	r := FromSlice(PushStyle("bold orange"), WriteText("v"), PopStyle())
	if err := x.Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if want := paint("v", color.Bold, color.FgYellow); b.String() != want {
		t.Errorf("got %q want %q", b.String(), want)
	}
}

func TestExecutorUnbalanced(t *testing.T) {
	x := NewExecutor(&strings.Builder{})
	if err := x.Exec(PopStyle()); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced on pop, got %v", err)
	}
	err := x.Run(context.Background(), FromSlice(PushStyle(Default)))
	if !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced at end, got %v", err)
	}
}

func TestExecutorBadStyle(t *testing.T) {
	x := NewExecutor(&strings.Builder{}, WithColor(true))
	if err := x.Exec(PushStyle("sparkly")); !errors.Is(err, ErrBadStyle) {
		t.Errorf("expected ErrBadStyle, got %v", err)
	}
}

func TestTextAndCollect(t *testing.T) {
	ctx := context.Background()
	effects := []Effect{WriteText("<"), PushStyle("bold"), WriteText("x"), PopStyle(), WriteText(">")}
	s, err := Text(ctx, FromSlice(effects...))
	if err != nil {
		t.Fatal(err)
	}
	if s != "<x>" {
		t.Errorf("got %q", s)
	}
	got, err := Collect(ctx, FromSlice(effects...))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(effects) {
		t.Errorf("expected %d effects, got %d", len(effects), len(got))
	}
}
