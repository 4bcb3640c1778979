// Package outlier defines method tags, configuration Specs, and sentinel
// errors for outlier detection over float64 series.
//
// NaN values are treated as missing: they are excluded from the statistics
// and are never reported as outliers. Impute first if gaps matter.
//
// Errors (sentinel):
//
//	– ErrNoObservations if the series has no non-NaN values to measure.
package outlier

import (
	"errors"

	"github.com/velmark/selekt/strategy"
)

// ErrNoObservations indicates a series with no observed (non-NaN) values,
// so no statistics can be computed. Surfaces from Execute, after
// resolution has succeeded.
var ErrNoObservations = errors.New("outlier: series has no observed values")

// Method tags.
const (
	// ZScoreTag flags values more than K standard deviations from the mean.
	ZScoreTag strategy.Tag = "zscore"

	// IQRTag flags values outside [Q1 − Mult·IQR, Q3 + Mult·IQR].
	IQRTag strategy.Tag = "iqr"

	// FenceTag flags values outside a fixed [Lo, Hi] interval. It has no
	// default bounds, so it must be configured via Fence.
	FenceTag strategy.Tag = "fence"
)

// ZScoreSpec configures the z-score strategy. Build it with ZScore.
type ZScoreSpec struct {
	// K is the cutoff in standard deviations. Must be positive and finite.
	K float64
}

// StrategyTag reports the z-score strategy's tag.
func (ZScoreSpec) StrategyTag() strategy.Tag { return ZScoreTag }

// ZScore builds a ZScoreSpec with cutoff k. The plain name "zscore"
// defaults to k = 3.
func ZScore(k float64) ZScoreSpec {
	return ZScoreSpec{K: k}
}

// IQRSpec configures the interquartile-range strategy. Build it with IQR.
type IQRSpec struct {
	// Mult scales the interquartile range when widening the fences. Must be
	// positive and finite.
	Mult float64
}

// StrategyTag reports the IQR strategy's tag.
func (IQRSpec) StrategyTag() strategy.Tag { return IQRTag }

// IQR builds an IQRSpec with the given multiplier. The plain name "iqr"
// defaults to the Tukey multiplier 1.5.
func IQR(mult float64) IQRSpec {
	return IQRSpec{Mult: mult}
}

// FenceSpec configures fixed absolute bounds. Build it with Fence.
type FenceSpec struct {
	// Lo is the lower bound; values below it are outliers. Must be finite
	// and strictly less than Hi.
	Lo float64

	// Hi is the upper bound; values above it are outliers.
	Hi float64
}

// StrategyTag reports the fence strategy's tag.
func (FenceSpec) StrategyTag() strategy.Tag { return FenceTag }

// Fence builds a FenceSpec with the closed interval [lo, hi]. Validation
// happens at resolution time: non-finite bounds or lo ≥ hi fail with
// strategy.ErrInvalidParameters naming the offending field.
func Fence(lo, hi float64) FenceSpec {
	return FenceSpec{Lo: lo, Hi: hi}
}
