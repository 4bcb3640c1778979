package strategy

import (
	"fmt"
	"reflect"
	"sort"
)

// Registry resolves caller-supplied descriptors into executable strategies.
//
// A Registry is built once by New and is read-only afterwards, so it may be
// shared freely across concurrent callers without locking. Resolve and
// Execute are pure functions of their inputs: no shared mutable state, no
// side effects, no ordering requirements between calls.
//
// In is the call-site input type (the data a strategy operates on) and Out
// the strategy result type. An escape-hatch callable must match
// Executor[In, Out] exactly.
type Registry[In, Out any] struct {
	regs map[Tag]Registration[In, Out]
	tags []Tag // sorted; insertion order never affects resolution
}

// New builds an immutable Registry from the given registrations.
//
// Errors:
//   - ErrNoRegistrations if regs is empty.
//   - ErrEmptyTag        if a registration has an empty tag.
//   - ErrNilExecutor     if a registration has a nil Run.
//   - ErrDuplicateTag    if two registrations share a tag.
func New[In, Out any](regs ...Registration[In, Out]) (*Registry[In, Out], error) {
	if len(regs) == 0 {
		return nil, ErrNoRegistrations
	}

	r := &Registry[In, Out]{
		regs: make(map[Tag]Registration[In, Out], len(regs)),
		tags: make([]Tag, 0, len(regs)),
	}
	for _, reg := range regs {
		if reg.Tag == "" {
			return nil, ErrEmptyTag
		}
		if reg.Run == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilExecutor, string(reg.Tag))
		}
		if _, dup := r.regs[reg.Tag]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, string(reg.Tag))
		}
		r.regs[reg.Tag] = reg
		r.tags = append(r.tags, reg.Tag)
	}
	sort.Slice(r.tags, func(i, j int) bool { return r.tags[i] < r.tags[j] })

	return r, nil
}

// MustNew is New that panics on error. Intended for package-level registry
// construction during init, where a bad registration is a programming error.
func MustNew[In, Out any](regs ...Registration[In, Out]) *Registry[In, Out] {
	r, err := New(regs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Tags returns the registered tags in sorted order, for help output and
// error rendering. The returned slice is a copy.
func (r *Registry[In, Out]) Tags() []Tag {
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Resolved pairs an executor with its validated Spec. It is produced only
// by Registry.Resolve; the zero value is the unresolved state and its
// Execute fails with ErrNotResolved.
type Resolved[In, Out any] struct {
	tag  Tag
	spec Spec
	run  Executor[In, Out]
}

// Tag reports the resolved strategy's tag; empty for escape-hatch callables.
func (rs Resolved[In, Out]) Tag() Tag { return rs.tag }

// Spec reports the validated Spec the executor will receive; nil when the
// strategy takes no parameters or the descriptor was a callable.
func (rs Resolved[In, Out]) Spec() Spec { return rs.spec }

// Execute invokes the resolved executor exactly once with the call-site
// input. Executor failures propagate unchanged: the registry is a dispatch
// and validation boundary, not a behavior boundary.
func (rs Resolved[In, Out]) Execute(in In) (Out, error) {
	if rs.run == nil {
		var zero Out
		return zero, ErrNotResolved
	}
	return rs.run(in, rs.spec)
}

// Resolve turns a descriptor into a Resolved strategy, or fails with
// exactly one of: InvalidTagError, UnsupportedError, ParameterError,
// SignatureError.
//
// Descriptor shapes:
//  1. Tag or string – resolved by case-sensitive exact name match against
//     the allowed tags. Unknown names fail with InvalidTagError listing the
//     valid choices; known tags outside allowed fail with UnsupportedError.
//  2. Spec – its tag must be registered and allowed (UnsupportedError
//     otherwise); then the registration's validator runs against it
//     (ParameterError on rejection).
//  3. Anything else is treated as an escape-hatch callable and must be
//     exactly an Executor[In, Out]; any other type fails with
//     SignatureError. A matching callable bypasses shapes 1–2 entirely.
//
// allowed restricts resolution to the subset of registered tags this call
// site supports; passing none allows every registered tag.
//
// Resolve is side-effect free and idempotent: resolving the same descriptor
// twice yields Resolved values with equal tags and specs.
func (r *Registry[In, Out]) Resolve(descriptor any, allowed ...Tag) (Resolved[In, Out], error) {
	choices := r.allowedChoices(allowed)

	switch d := descriptor.(type) {
	case Tag:
		return r.resolveName(string(d), choices)
	case string:
		return r.resolveName(d, choices)
	case Spec:
		return r.resolveSpec(d, choices)
	case Executor[In, Out]:
		return Resolved[In, Out]{run: d}, nil
	case func(In, Spec) (Out, error):
		return Resolved[In, Out]{run: d}, nil
	default:
		return Resolved[In, Out]{}, &SignatureError{
			Got:  fmt.Sprintf("%T", descriptor),
			Want: executorSignature[In, Out](),
		}
	}
}

// resolveName handles descriptor shape 1 (plain names).
func (r *Registry[In, Out]) resolveName(name string, choices []Tag) (Resolved[In, Out], error) {
	reg, ok := r.regs[Tag(name)]
	if !ok {
		return Resolved[In, Out]{}, &InvalidTagError{Name: name, Allowed: choices}
	}
	if !containsTag(choices, reg.Tag) {
		return Resolved[In, Out]{}, &UnsupportedError{Tag: reg.Tag, Allowed: choices}
	}
	if reg.Validate != nil {
		if err := reg.Validate(reg.Default); err != nil {
			return Resolved[In, Out]{}, err
		}
	}

	return Resolved[In, Out]{tag: reg.Tag, spec: reg.Default, run: reg.Run}, nil
}

// resolveSpec handles descriptor shape 2 (configured Specs).
func (r *Registry[In, Out]) resolveSpec(spec Spec, choices []Tag) (Resolved[In, Out], error) {
	tag := spec.StrategyTag()
	reg, ok := r.regs[tag]
	if !ok || !containsTag(choices, tag) {
		return Resolved[In, Out]{}, &UnsupportedError{Tag: tag, Allowed: choices}
	}
	if reg.Validate != nil {
		if err := reg.Validate(spec); err != nil {
			return Resolved[In, Out]{}, err
		}
	}

	return Resolved[In, Out]{tag: tag, spec: spec, run: reg.Run}, nil
}

// allowedChoices normalizes the per-call-site allow list into a sorted
// slice: the full registered set when empty, a sorted copy otherwise.
// Tags in the allow list that are not registered can never resolve and are
// kept only so error messages reflect what the call site declared.
func (r *Registry[In, Out]) allowedChoices(allowed []Tag) []Tag {
	if len(allowed) == 0 {
		return r.tags
	}
	choices := make([]Tag, len(allowed))
	copy(choices, allowed)
	sort.Slice(choices, func(i, j int) bool { return choices[i] < choices[j] })

	return choices
}

func containsTag(tags []Tag, t Tag) bool {
	for _, have := range tags {
		if have == t {
			return true
		}
	}
	return false
}

// executorSignature renders the required escape-hatch signature for
// SignatureError messages, e.g. "func([]float64, strategy.Spec) ([]float64, error)".
func executorSignature[In, Out any]() string {
	in := reflect.TypeOf((*In)(nil)).Elem()
	out := reflect.TypeOf((*Out)(nil)).Elem()

	return fmt.Sprintf("func(%s, strategy.Spec) (%s, error)", in, out)
}
