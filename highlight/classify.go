package highlight

import (
	"github.com/signadot/cstml/effect"
	"github.com/signadot/cstml/tag"
)

const (
	StyleValue         effect.Style = "bold green"
	StyleMatcherValue  effect.Style = "bold orange"
	StyleForeign       effect.Style = "bold orange"
	StyleEscape        effect.Style = "bold cyan"
	StyleReferenceName effect.Style = "bold gray"
	StyleCallee        effect.Style = "magenta bold"
	StyleProduction    effect.Style = "blue bold"
	StyleInstruction   effect.Style = "magenta bold"
)

// reference names the classifier keys on
const (
	RefIntrinsicValue = "intrinsicValue"
	RefSigilToken     = "sigilToken"
	RefOpenToken      = "openToken"
	RefCloseToken     = "closeToken"
)

// Classify returns the style pushed for the open node t, given the type of
// the node enclosing it and the name of the most recent reference. The
// first matching rule wins; anything unmatched gets the default style.
func Classify(t tag.Tag, enclosing tag.Type, ref string) effect.Style {
	switch t.Type {
	case tag.LiteralTag:
		return StyleValue
	case tag.String:
		if ref == RefIntrinsicValue {
			switch enclosing {
			case tag.OpenNodeTag:
				return StyleValue
			case tag.OpenNodeMatcher:
				return StyleMatcherValue
			}
			return effect.Default
		}
	case tag.Pattern:
		if t.Language != tag.SpamexLanguage {
			return StyleForeign
		}
	case tag.EscapeSequence:
		return StyleEscape
	case tag.Identifier:
		switch enclosing {
		case tag.ReferenceTag:
			return StyleReferenceName
		case tag.Call:
			return StyleCallee
		}
		return effect.Default
	case tag.EnterProductionLine, tag.LeaveProductionLine:
		return StyleProduction
	}
	return classifyByContext(enclosing, ref)
}

func classifyByContext(enclosing tag.Type, ref string) effect.Style {
	switch enclosing {
	case tag.ExecSpamexInstructionLine, tag.ExecCSTMLInstructionLine:
		if ref == RefSigilToken {
			return StyleInstruction
		}
	case tag.Tuple:
		if ref == RefOpenToken || ref == RefCloseToken {
			return StyleInstruction
		}
	}
	return effect.Default
}
