// Package strategy provides a production-grade strategy registry: a single,
// validated entry point for functions that support multiple named
// implementation strategies with strategy-specific configuration.
//
// What
//
//   - A Registry maps immutable registrations (tag → validator + executor)
//     to the descriptors callers actually write: a plain name ("left"), a
//     configured Spec (trim.Cutset(trim.Left, "x")), or a custom callable.
//   - Resolve turns one descriptor into one Resolved strategy, atomically:
//     it either fully succeeds or fails with exactly one structured error.
//   - Execute runs the resolved executor once against the call-site input
//     and propagates executor failures untouched.
//
// Why
//
//	Libraries rendezvous on strings ("mean", "median", …) because strings
//	are ergonomic; they then pay for it with ad-hoc switch statements and
//	inconsistent error text at every call site. The registry centralizes
//	the switch, the allow-listing, the parameter validation, and the error
//	rendering, so every public function in a library fails the same way:
//	naming the offending value and listing the valid choices.
//
// Guarantees
//
//   - Exactly one strategy is active per invocation; tags are unique.
//   - Registries are immutable after New and safe for unlocked concurrent
//     use; Resolve and Execute are pure functions of their inputs.
//   - Resolution is deterministic and idempotent — retrying a failed
//     Resolve without changing the input cannot succeed.
//   - The resolution error taxonomy is closed: ErrInvalidTag,
//     ErrUnsupportedStrategy, ErrInvalidParameters, ErrInvalidSignature.
//
// Quick example:
//
//	reg := strategy.MustNew(
//	    strategy.Registration[[]float64, []float64]{Tag: "mean", Run: fillMean},
//	    strategy.Registration[[]float64, []float64]{Tag: "median", Run: fillMedian},
//	)
//	rs, err := reg.Resolve("mean")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filled, err := rs.Execute(series)
//
// See the trim, impute and outlier packages for complete consumers.
package strategy
