package strategy_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmark/selekt/strategy"
)

// repeatSpec configures the "repeat" test strategy.
type repeatSpec struct {
	Count int
}

func (repeatSpec) StrategyTag() strategy.Tag { return "repeat" }

// validateRepeat requires a positive Count; a nil spec means the caller
// resolved by plain name without the required parameter.
func validateRepeat(spec strategy.Spec) error {
	rs, ok := spec.(repeatSpec)
	if !ok {
		return &strategy.ParameterError{Tag: "repeat", Field: "Count", Value: nil, Reason: "count is required"}
	}
	if rs.Count <= 0 {
		return &strategy.ParameterError{Tag: "repeat", Field: "Count", Value: rs.Count, Reason: "must be positive"}
	}
	return nil
}

// newTestRegistry builds a small string→string registry with three
// strategies: upper and lower (no parameters) and repeat (parameterized).
func newTestRegistry(t *testing.T) *strategy.Registry[string, string] {
	t.Helper()

	reg, err := strategy.New(
		strategy.Registration[string, string]{
			Tag: "upper",
			Run: func(in string, _ strategy.Spec) (string, error) { return strings.ToUpper(in), nil },
		},
		strategy.Registration[string, string]{
			Tag: "lower",
			Run: func(in string, _ strategy.Spec) (string, error) { return strings.ToLower(in), nil },
		},
		strategy.Registration[string, string]{
			Tag:      "repeat",
			Validate: validateRepeat,
			Run: func(in string, spec strategy.Spec) (string, error) {
				return strings.Repeat(in, spec.(repeatSpec).Count), nil
			},
		},
	)
	require.NoError(t, err, "registry construction must succeed")

	return reg
}

// TestNew_RejectsBadRegistrations covers every construction-time failure.
func TestNew_RejectsBadRegistrations(t *testing.T) {
	run := func(in string, _ strategy.Spec) (string, error) { return in, nil }

	_, err := strategy.New[string, string]()
	assert.ErrorIs(t, err, strategy.ErrNoRegistrations, "empty registry must be rejected")

	_, err = strategy.New(strategy.Registration[string, string]{Tag: "", Run: run})
	assert.ErrorIs(t, err, strategy.ErrEmptyTag, "empty tag must be rejected")

	_, err = strategy.New(strategy.Registration[string, string]{Tag: "upper"})
	assert.ErrorIs(t, err, strategy.ErrNilExecutor, "nil executor must be rejected")

	_, err = strategy.New(
		strategy.Registration[string, string]{Tag: "upper", Run: run},
		strategy.Registration[string, string]{Tag: "upper", Run: run},
	)
	assert.ErrorIs(t, err, strategy.ErrDuplicateTag, "duplicate tags must be rejected")
}

// TestTags_Sorted verifies Tags returns the registered set in sorted order
// regardless of registration order.
func TestTags_Sorted(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Equal(t, []strategy.Tag{"lower", "repeat", "upper"}, reg.Tags())
}

// TestResolve_NameRoundTrip verifies every registered tag resolves by plain
// name to a Resolved value carrying that tag.
func TestResolve_NameRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)

	for _, tag := range []strategy.Tag{"upper", "lower"} {
		rs, err := reg.Resolve(tag, "upper", "lower")
		require.NoError(t, err, "registered tag %q must resolve", tag)
		assert.Equal(t, tag, rs.Tag(), "resolved tag must round-trip")
	}

	// Plain strings resolve the same way as Tags.
	rs, err := reg.Resolve("upper")
	require.NoError(t, err)
	out, err := rs.Execute("go")
	require.NoError(t, err)
	assert.Equal(t, "GO", out)
}

// TestResolve_UnknownName verifies an unregistered name fails with
// ErrInvalidTag and the message lists the valid choices.
func TestResolve_UnknownName(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("title")
	assert.ErrorIs(t, err, strategy.ErrInvalidTag, "unknown name must be ErrInvalidTag")
	assert.NotErrorIs(t, err, strategy.ErrUnsupportedStrategy, "unknown name must not be another kind")

	var ite *strategy.InvalidTagError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "title", ite.Name, "error must carry the offending name")
	assert.Equal(t, []strategy.Tag{"lower", "repeat", "upper"}, ite.Allowed, "error must list valid choices")
	assert.Contains(t, err.Error(), "lower, repeat, upper")
}

// TestResolve_NameNotAllowed verifies a registered tag outside the
// call-site allow list fails with ErrUnsupportedStrategy, never ErrInvalidTag.
func TestResolve_NameNotAllowed(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("repeat", "upper", "lower")
	assert.ErrorIs(t, err, strategy.ErrUnsupportedStrategy)
	assert.NotErrorIs(t, err, strategy.ErrInvalidTag)

	var ue *strategy.UnsupportedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, strategy.Tag("repeat"), ue.Tag)
	assert.Equal(t, []strategy.Tag{"lower", "upper"}, ue.Allowed, "allow list is reported sorted")
}

// TestResolve_SpecValidated verifies a configured Spec runs its validator:
// valid parameters resolve, out-of-range parameters fail with
// ErrInvalidParameters naming the field.
func TestResolve_SpecValidated(t *testing.T) {
	reg := newTestRegistry(t)

	rs, err := reg.Resolve(repeatSpec{Count: 3})
	require.NoError(t, err)
	assert.Equal(t, strategy.Tag("repeat"), rs.Tag())
	assert.Equal(t, repeatSpec{Count: 3}, rs.Spec())

	out, err := rs.Execute("ab")
	require.NoError(t, err)
	assert.Equal(t, "ababab", out)

	_, err = reg.Resolve(repeatSpec{Count: 0})
	assert.ErrorIs(t, err, strategy.ErrInvalidParameters)

	var pe *strategy.ParameterError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Count", pe.Field, "error must name the offending field")
	assert.Equal(t, 0, pe.Value)
}

// TestResolve_SpecNotAllowed verifies a Spec whose tag the call site does
// not support fails with ErrUnsupportedStrategy before validation.
func TestResolve_SpecNotAllowed(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve(repeatSpec{Count: 3}, "upper", "lower")
	assert.ErrorIs(t, err, strategy.ErrUnsupportedStrategy)
}

// TestResolve_NameRequiresParameters verifies a parameterized strategy
// without a Default cannot be resolved by bare name.
func TestResolve_NameRequiresParameters(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("repeat")
	assert.ErrorIs(t, err, strategy.ErrInvalidParameters, "bare name without required params must fail validation")
}

// TestResolve_Callable verifies the escape hatch: a callable matching the
// executor signature bypasses registration and is invoked exactly once.
func TestResolve_Callable(t *testing.T) {
	reg := newTestRegistry(t)

	calls := 0
	custom := func(in string, _ strategy.Spec) (string, error) {
		calls++
		return in + "!", nil
	}

	rs, err := reg.Resolve(custom)
	require.NoError(t, err, "matching callable must resolve")
	assert.Equal(t, strategy.Tag(""), rs.Tag(), "escape hatch carries no tag")

	out, err := rs.Execute("hey")
	require.NoError(t, err)
	assert.Equal(t, "hey!", out)
	assert.Equal(t, 1, calls, "executor must run exactly once")
}

// TestResolve_BadSignature verifies descriptors that are neither names,
// Specs, nor signature-exact callables fail with ErrInvalidSignature.
func TestResolve_BadSignature(t *testing.T) {
	reg := newTestRegistry(t)

	// Callable missing the Spec parameter.
	_, err := reg.Resolve(func(in string) (string, error) { return in, nil })
	assert.ErrorIs(t, err, strategy.ErrInvalidSignature)

	var se *strategy.SignatureError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Want, "strategy.Spec", "error must describe the wanted signature")

	// Not a callable at all.
	_, err = reg.Resolve(42)
	assert.ErrorIs(t, err, strategy.ErrInvalidSignature)
}

// TestResolve_Idempotent verifies resolving the same descriptor twice
// yields equal results and no observable side effect.
func TestResolve_Idempotent(t *testing.T) {
	reg := newTestRegistry(t)

	first, err := reg.Resolve(repeatSpec{Count: 2})
	require.NoError(t, err)
	second, err := reg.Resolve(repeatSpec{Count: 2})
	require.NoError(t, err)

	assert.Equal(t, first.Tag(), second.Tag())
	assert.Equal(t, first.Spec(), second.Spec())
	assert.Equal(t, []strategy.Tag{"lower", "repeat", "upper"}, reg.Tags(), "resolution must not mutate the registry")
}

// TestExecute_Unresolved verifies the zero Resolved value refuses to run.
func TestExecute_Unresolved(t *testing.T) {
	var rs strategy.Resolved[string, string]

	_, err := rs.Execute("x")
	assert.ErrorIs(t, err, strategy.ErrNotResolved)
}

// TestExecute_PropagatesExecutorError verifies executor failures surface
// unchanged, with no re-wrapping by the registry.
func TestExecute_PropagatesExecutorError(t *testing.T) {
	errBoom := errors.New("boom")
	reg, err := strategy.New(
		strategy.Registration[string, string]{
			Tag: "explode",
			Run: func(string, strategy.Spec) (string, error) { return "", errBoom },
		},
	)
	require.NoError(t, err)

	rs, err := reg.Resolve("explode")
	require.NoError(t, err)

	_, err = rs.Execute("x")
	assert.Equal(t, errBoom, err, "executor error must propagate unchanged")
}
