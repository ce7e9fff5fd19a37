package tag

// VocabularyVersion identifies the node type vocabulary below. Producers and
// the highlighter agree on a version; new members are only ever appended.
const VocabularyVersion = 1

// SpamexLanguage is the canonical URL of the node matching sub-language.
// Patterns declared in any other language are highlighted as foreign.
const SpamexLanguage = "https://bablr.org/languages/core/en/spamex"

// Type is a node type drawn from a closed vocabulary shared by every tag
// source and the highlighter. Names outside the vocabulary map to Unknown.
type Type uint16

const (
	Unknown Type = iota

	// top level productions
	Document
	Output

	// CSTML tags, as they appear in rendered text
	OpenNodeTag
	CloseNodeTag
	ReferenceTag
	LiteralTag

	// values and matchers
	OpenNodeMatcher
	Pattern
	String
	EscapeSequence
	Identifier
	Punctuator
	Call
	Tuple

	// verbose output lines
	EnterProductionLine
	LeaveProductionLine
	ExecSpamexInstructionLine
	ExecCSTMLInstructionLine
)

var typeNames = [...]string{
	Unknown:                   "Unknown",
	Document:                  "Document",
	Output:                    "Output",
	OpenNodeTag:               "OpenNodeTag",
	CloseNodeTag:              "CloseNodeTag",
	ReferenceTag:              "ReferenceTag",
	LiteralTag:                "LiteralTag",
	OpenNodeMatcher:           "OpenNodeMatcher",
	Pattern:                   "Pattern",
	String:                    "String",
	EscapeSequence:            "EscapeSequence",
	Identifier:                "Identifier",
	Punctuator:                "Punctuator",
	Call:                      "Call",
	Tuple:                     "Tuple",
	EnterProductionLine:       "EnterProductionLine",
	LeaveProductionLine:       "LeaveProductionLine",
	ExecSpamexInstructionLine: "ExecSpamexInstructionLine",
	ExecCSTMLInstructionLine:  "ExecCSTMLInstructionLine",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for i, n := range typeNames {
		if Type(i) == Unknown {
			continue
		}
		m[n] = Type(i)
	}
	return m
}()

// LookupType returns the vocabulary member spelled name, or Unknown.
func LookupType(name string) Type {
	return typesByName[name]
}

// Types returns every known member of the vocabulary, excluding Unknown.
func Types() []Type {
	res := make([]Type, 0, len(typeNames)-1)
	for i := range typeNames {
		if Type(i) == Unknown {
			continue
		}
		res = append(res, Type(i))
	}
	return res
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[Unknown]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	*t = LookupType(string(d))
	return nil
}
