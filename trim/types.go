// Package trim defines side tags, the Cutset configuration Spec, and the
// legacy-flag mapping for strategy-driven string trimming.
package trim

import "github.com/velmark/selekt/strategy"

// Side tags. These are the strategy identifiers trim call sites accept.
const (
	// Left trims from the start of the string.
	Left strategy.Tag = "left"

	// Right trims from the end of the string.
	Right strategy.Tag = "right"

	// Both trims from both ends.
	Both strategy.Tag = "both"
)

// DefaultCutset is the rune set trimmed when a caller resolves a side by
// plain name: ASCII whitespace.
const DefaultCutset = " \t\n\v\f\r"

// CutsetSpec configures which runes a side strategy removes. Build it with
// Cutset; the zero value is not a valid Spec.
type CutsetSpec struct {
	side strategy.Tag

	// Chars is the set of runes to remove. Must be non-empty.
	Chars string
}

// StrategyTag reports which side this cutset configures.
func (s CutsetSpec) StrategyTag() strategy.Tag { return s.side }

// Cutset builds a CutsetSpec removing the runes in chars from the given
// side. Validation happens at resolution time: an empty chars fails with
// strategy.ErrInvalidParameters naming the Chars field.
//
//	trim.Trim("xxhello", trim.Cutset(trim.Left, "x"))  // "hello"
func Cutset(side strategy.Tag, chars string) CutsetSpec {
	return CutsetSpec{side: side, Chars: chars}
}

// SideFromFlags maps the legacy boolean-flag API (trimLeft / trimRight) to
// a side tag. Historically such flag pairs shipped without a documented
// conflict rule; here the precedence is explicit:
//
//	both flags set   → Both
//	exactly one set  → that side
//	neither set      → Both (trimming both ends is the historical default)
func SideFromFlags(left, right bool) strategy.Tag {
	switch {
	case left && !right:
		return Left
	case right && !left:
		return Right
	default:
		return Both
	}
}
