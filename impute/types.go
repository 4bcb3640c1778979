// Package impute defines method tags, the Constant configuration Spec, and
// sentinel errors for missing-value imputation over float64 series.
//
// A missing observation is represented as NaN, the usual convention for
// numeric columns in data-analysis pipelines.
//
// Errors (sentinel):
//
//	– ErrEmptySeries if the input series has no observations at all.
//	– ErrAllMissing  if mean/median have no observed values to aggregate.
//	– ErrLeadingGap  if forward-fill starts on a missing observation.
//
// These are executor errors: they surface from Execute, after resolution
// has already succeeded, and propagate unchanged.
package impute

import (
	"errors"

	"github.com/velmark/selekt/strategy"
)

// Sentinel errors returned by the imputation executors.
var (
	// ErrEmptySeries indicates an input series of length zero.
	ErrEmptySeries = errors.New("impute: series is empty")

	// ErrAllMissing indicates a series with no observed values, so there is
	// nothing to aggregate a fill value from.
	ErrAllMissing = errors.New("impute: series has no observed values")

	// ErrLeadingGap indicates forward-fill has no earlier observation to
	// carry into the first position.
	ErrLeadingGap = errors.New("impute: series starts with a missing value")
)

// Method tags.
const (
	// Mean fills gaps with the mean of the observed values.
	Mean strategy.Tag = "mean"

	// Median fills gaps with the median of the observed values.
	Median strategy.Tag = "median"

	// ConstantTag fills gaps with a caller-supplied value; it has no
	// default, so it must be configured via Constant.
	ConstantTag strategy.Tag = "constant"

	// Forward carries the last observed value into each gap.
	Forward strategy.Tag = "forward"
)

// ConstantSpec configures the constant-fill strategy. Build it with
// Constant.
type ConstantSpec struct {
	// Value replaces every missing observation. Must be finite.
	Value float64
}

// StrategyTag reports the constant strategy's tag.
func (ConstantSpec) StrategyTag() strategy.Tag { return ConstantTag }

// Constant builds a ConstantSpec filling gaps with v. Validation happens
// at resolution time: a NaN or infinite v fails with
// strategy.ErrInvalidParameters naming the Value field.
func Constant(v float64) ConstantSpec {
	return ConstantSpec{Value: v}
}
