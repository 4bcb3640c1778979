// Package selekt is a toolkit for function-library authors who want to let
// callers choose between named implementation strategies — by name, by a
// strategy-specific configuration value, or by supplying custom behavior —
// with strict validation and actionable errors.
//
// 🚀 What is selekt?
//
//	A small, thread-safe library that brings together:
//		• strategy/ — the core registry: resolve a descriptor, validate it,
//		  execute exactly one strategy per call
//		• trim/     — string trimming with left/right/both side strategies
//		• impute/   — missing-value fill for numeric series (mean, median,
//		  constant, forward-fill)
//		• outlier/  — outlier detection (z-score, IQR, fixed fences)
//		• config/   — YAML + environment selection of strategies
//
// ✨ Why choose selekt?
//
//   - One descriptor, three shapes – a plain name, a configured spec, or a
//     custom callable escape hatch, all resolved through one entry point
//   - Actionable failures – every error names the offending value and, for
//     unknown names, lists the valid choices
//   - Rock-solid guarantees – registries are immutable after construction
//     and safe for concurrent use without locks
//   - Pure Go core – resolution is deterministic and side-effect free
//
// Quick example:
//
//	out, err := trim.Trim("  hello  ", "left")   // resolve by name
//	out, err = trim.Trim("xxhello", trim.Cutset(trim.Left, "x"))
//
// Dive into the per-package docs, the examples/ directory for runnable
// scenarios, and cmd/selekt for a small CLI front end.
//
//	go get github.com/velmark/selekt
package selekt
