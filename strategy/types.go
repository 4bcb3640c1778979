// Package strategy defines the types and sentinel errors for strategy
// resolution: turning a caller-supplied descriptor (a name, a configured
// Spec, or a custom callable) into exactly one validated, executable
// strategy.
//
// Descriptor shapes:
//
//	– name      : a Tag (or plain string) naming one registered strategy.
//	– Spec      : a configuration value built by a strategy constructor,
//	              carrying its tag plus strategy-specific parameters.
//	– callable  : an Executor-shaped function used as-is, bypassing the
//	              registered strategies entirely (the escape hatch).
//
// Errors (sentinel):
//
//	– ErrInvalidTag          if a name matches no registered strategy.
//	– ErrUnsupportedStrategy if a known strategy is not allowed at this call site.
//	– ErrInvalidParameters   if a Spec fails its strategy's validator.
//	– ErrInvalidSignature    if a callable descriptor has the wrong shape.
//	– ErrDuplicateTag        if two registrations share one tag.
//	– ErrNoRegistrations     if a registry is built with nothing in it.
//	– ErrNotResolved         if Execute is called on a zero Resolved value.
//
// The first four are the complete resolution taxonomy: Resolve never fails
// with anything else. Each has a structured error type that unwraps to the
// sentinel and identifies the offending input, so errors.Is works and the
// caller can render an actionable message.
package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by registry construction, Resolve and Execute.
var (
	// ErrInvalidTag indicates a strategy name that matches no registered tag.
	ErrInvalidTag = errors.New("strategy: unknown strategy name")

	// ErrUnsupportedStrategy indicates a registered strategy that the current
	// call site does not allow.
	ErrUnsupportedStrategy = errors.New("strategy: strategy not supported here")

	// ErrInvalidParameters indicates a Spec rejected by its strategy's validator.
	ErrInvalidParameters = errors.New("strategy: invalid strategy parameters")

	// ErrInvalidSignature indicates a callable descriptor whose shape does not
	// match the executor signature required by the call site.
	ErrInvalidSignature = errors.New("strategy: custom strategy has wrong signature")

	// ErrDuplicateTag indicates two registrations sharing the same tag.
	ErrDuplicateTag = errors.New("strategy: duplicate strategy tag")

	// ErrNoRegistrations indicates an attempt to build an empty registry.
	ErrNoRegistrations = errors.New("strategy: registry needs at least one registration")

	// ErrNilExecutor indicates a registration without an executor.
	ErrNilExecutor = errors.New("strategy: registration has nil executor")

	// ErrEmptyTag indicates a registration whose tag is the empty string.
	ErrEmptyTag = errors.New("strategy: registration has empty tag")

	// ErrNotResolved indicates Execute was called on the zero Resolved value,
	// i.e. before a successful Resolve.
	ErrNotResolved = errors.New("strategy: Execute called before successful Resolve")
)

// Tag identifies one registered strategy. Matching is case-sensitive and
// exact; tags are unique within a registry.
type Tag string

// Spec is a strategy-specific configuration value. Constructors in consumer
// packages (trim.Cutset, impute.Constant, …) return Specs; the registry uses
// StrategyTag to find the registration whose validator and executor apply.
type Spec interface {
	// StrategyTag reports which registered strategy this value configures.
	StrategyTag() Tag
}

// Executor runs one strategy against the call-site input. It is also the
// fixed signature an escape-hatch callable must match exactly: spec is the
// validated Spec for registered strategies and nil for plain-name
// resolutions without a default, or whatever the custom callable ignores.
type Executor[In, Out any] func(in In, spec Spec) (Out, error)

// Validator checks a Spec's parameters before the strategy may execute.
// A nil Validator accepts every Spec, including nil.
type Validator func(spec Spec) error

// Registration binds one tag to its validator and executor.
//
//	Tag      – unique identifier; required.
//	Validate – optional parameter check, run during Resolve.
//	Run      – the strategy implementation; required.
//	Default  – optional Spec substituted when the caller resolves by plain
//	           name; it passes through Validate like any caller-built Spec.
type Registration[In, Out any] struct {
	Tag      Tag
	Validate Validator
	Run      Executor[In, Out]
	Default  Spec
}

// InvalidTagError reports an unknown strategy name, listing the tags the
// call site accepts. Unwraps to ErrInvalidTag.
type InvalidTagError struct {
	Name    string
	Allowed []Tag
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("strategy: unknown strategy %q (valid choices: %s)", e.Name, joinTags(e.Allowed))
}

func (e *InvalidTagError) Unwrap() error { return ErrInvalidTag }

// UnsupportedError reports a registered strategy that this particular call
// site does not accept. Unwraps to ErrUnsupportedStrategy.
type UnsupportedError struct {
	Tag     Tag
	Allowed []Tag
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("strategy: %q is not supported here (valid choices: %s)", string(e.Tag), joinTags(e.Allowed))
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedStrategy }

// ParameterError reports a strategy-specific validation failure on one
// field of a Spec. Unwraps to ErrInvalidParameters.
type ParameterError struct {
	Tag    Tag
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("strategy: invalid %s.%s = %v: %s", string(e.Tag), e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameters }

// SignatureError reports an escape-hatch descriptor whose type does not
// match the executor signature of the call site. Unwraps to ErrInvalidSignature.
type SignatureError struct {
	Got  string // %T of the supplied descriptor
	Want string // the required executor signature
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("strategy: descriptor of type %s does not match required signature %s", e.Got, e.Want)
}

func (e *SignatureError) Unwrap() error { return ErrInvalidSignature }

// joinTags renders a tag list for error messages; tags arrive pre-sorted
// from the registry.
func joinTags(tags []Tag) string {
	if len(tags) == 0 {
		return "<none>"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
