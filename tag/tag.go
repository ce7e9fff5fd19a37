package tag

import (
	"strconv"
	"strings"
)

// Tag is a single structural marker of a parse.
//
// The payload depends on Kind:
//   - OpenNode: Type and Name identify the node type, Value is the
//     optional intrinsic value and Language the declared sub-language.
//   - CloseNode: none.
//   - Reference: Value is the name of the slot the next node fills.
//   - Literal: Value is the raw text.
type Tag struct {
	Kind Kind
	Type Type

	// Name is the node type as spelled by the producer. It is kept so that
	// types outside the vocabulary still print faithfully.
	Name     string
	Value    string
	Language string
}

// Open returns an open node tag for the node type spelled name.
func Open(name string) Tag {
	return Tag{Kind: OpenNode, Type: LookupType(name), Name: name}
}

// OpenValue returns an open node tag carrying an intrinsic value.
func OpenValue(name, value string) Tag {
	t := Open(name)
	t.Value = value
	return t
}

// OpenIn returns an open node tag declared in the sub-language lang.
func OpenIn(name, lang string) Tag {
	t := Open(name)
	t.Language = lang
	return t
}

func Close() Tag {
	return Tag{Kind: CloseNode}
}

func Ref(name string) Tag {
	return Tag{Kind: Reference, Value: name}
}

func Lit(text string) Tag {
	return Tag{Kind: Literal, Value: text}
}

// HasIntrinsic reports whether t opens a node with an intrinsic value.
func (t Tag) HasIntrinsic() bool {
	return t.Kind == OpenNode && t.Value != ""
}

// TypeName returns the spelled type name, falling back to the vocabulary
// name for tags built without one.
func (t Tag) TypeName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Type.String()
}

func (t Tag) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	switch t.Kind {
	case OpenNode:
		b.WriteByte('(')
		b.WriteString(t.TypeName())
		if t.HasIntrinsic() {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(t.Value))
		}
		if t.Language != "" {
			b.WriteString(" in ")
			b.WriteString(t.Language)
		}
		b.WriteByte(')')
	case Reference, Literal:
		b.WriteByte('(')
		b.WriteString(strconv.Quote(t.Value))
		b.WriteByte(')')
	}
	return b.String()
}
