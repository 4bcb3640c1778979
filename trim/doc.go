// Package trim trims strings through the strategy registry: callers pick a
// side by name ("left", "right", "both"), configure the rune set with
// Cutset, or supply custom behavior through the escape hatch.
//
// This is the canonical small consumer of the strategy package. It shows
// the three idioms library authors need:
//
//   - enumeration by name, with actionable errors —
//     Trim(s, "center") fails listing {both, left, right};
//   - strategy-specific configuration —
//     Trim(s, Cutset(Left, "x")) validates Chars before anything runs;
//   - call sites that support a subset of strategies —
//     TrimStart only accepts Left, so Trim's valid descriptors can still
//     fail there with strategy.ErrUnsupportedStrategy.
//
// SideFromFlags documents the precedence rule for migrating legacy
// trimLeft/trimRight boolean-flag APIs onto the side enumeration.
package trim
