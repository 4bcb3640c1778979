package outlier

import (
	"math"
	"sort"

	"github.com/velmark/selekt/strategy"
)

// registry holds the three detection strategies. Built once at package
// initialization and read-only thereafter.
var registry = strategy.MustNew(
	strategy.Registration[[]float64, []int]{
		Tag:      ZScoreTag,
		Validate: validateZScore,
		Run:      runZScore,
		Default:  ZScoreSpec{K: 3},
	},
	strategy.Registration[[]float64, []int]{
		Tag:      IQRTag,
		Validate: validateIQR,
		Run:      runIQR,
		Default:  IQRSpec{Mult: 1.5},
	},
	strategy.Registration[[]float64, []int]{
		Tag:      FenceTag,
		Validate: validateFence,
		Run:      runFence,
	},
)

// Detect returns the (ascending) indices of outlying values in series,
// according to the method descriptor: a tag ("zscore", "iqr", "fence"), a
// configured Spec, or a custom func([]float64, strategy.Spec) ([]int, error).
//
// "fence" requires explicit bounds, so its bare name fails with
// strategy.ErrInvalidParameters; use Fence(lo, hi).
func Detect(series []float64, method any) ([]int, error) {
	rs, err := registry.Resolve(method)
	if err != nil {
		return nil, err
	}
	return rs.Execute(series)
}

// Methods returns the registered method tags in sorted order.
func Methods() []strategy.Tag {
	return registry.Tags()
}

func validateZScore(spec strategy.Spec) error {
	zs, ok := spec.(ZScoreSpec)
	if !ok {
		return &strategy.ParameterError{Tag: ZScoreTag, Field: "K", Value: nil, Reason: "cutoff is required"}
	}
	if math.IsNaN(zs.K) || math.IsInf(zs.K, 0) || zs.K <= 0 {
		return &strategy.ParameterError{Tag: ZScoreTag, Field: "K", Value: zs.K, Reason: "must be positive and finite"}
	}
	return nil
}

func validateIQR(spec strategy.Spec) error {
	is, ok := spec.(IQRSpec)
	if !ok {
		return &strategy.ParameterError{Tag: IQRTag, Field: "Mult", Value: nil, Reason: "multiplier is required"}
	}
	if math.IsNaN(is.Mult) || math.IsInf(is.Mult, 0) || is.Mult <= 0 {
		return &strategy.ParameterError{Tag: IQRTag, Field: "Mult", Value: is.Mult, Reason: "must be positive and finite"}
	}
	return nil
}

func validateFence(spec strategy.Spec) error {
	fs, ok := spec.(FenceSpec)
	if !ok {
		return &strategy.ParameterError{Tag: FenceTag, Field: "Lo", Value: nil, Reason: "bounds are required"}
	}
	if math.IsNaN(fs.Lo) || math.IsInf(fs.Lo, 0) {
		return &strategy.ParameterError{Tag: FenceTag, Field: "Lo", Value: fs.Lo, Reason: "must be finite"}
	}
	if math.IsNaN(fs.Hi) || math.IsInf(fs.Hi, 0) {
		return &strategy.ParameterError{Tag: FenceTag, Field: "Hi", Value: fs.Hi, Reason: "must be finite"}
	}
	if fs.Lo >= fs.Hi {
		return &strategy.ParameterError{Tag: FenceTag, Field: "Lo", Value: fs.Lo, Reason: "must be below Hi"}
	}
	return nil
}

func runZScore(in []float64, spec strategy.Spec) ([]int, error) {
	observed, err := observedValues(in)
	if err != nil {
		return nil, err
	}

	m := mean(observed)
	sd := stddev(observed, m)
	if sd == 0 {
		// A flat series has no spread to deviate from.
		return nil, nil
	}

	cutoff := spec.(ZScoreSpec).K * sd
	return flag(in, func(v float64) bool { return math.Abs(v-m) > cutoff }), nil
}

func runIQR(in []float64, spec strategy.Spec) ([]int, error) {
	observed, err := observedValues(in)
	if err != nil {
		return nil, err
	}

	sorted := make([]float64, len(observed))
	copy(sorted, observed)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	spread := (q3 - q1) * spec.(IQRSpec).Mult
	lo, hi := q1-spread, q3+spread

	return flag(in, func(v float64) bool { return v < lo || v > hi }), nil
}

func runFence(in []float64, spec strategy.Spec) ([]int, error) {
	if _, err := observedValues(in); err != nil {
		return nil, err
	}

	fs := spec.(FenceSpec)
	return flag(in, func(v float64) bool { return v < fs.Lo || v > fs.Hi }), nil
}

// observedValues extracts the non-NaN values, failing when there are none.
func observedValues(in []float64) ([]float64, error) {
	observed := make([]float64, 0, len(in))
	for _, v := range in {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return nil, ErrNoObservations
	}
	return observed, nil
}

// flag collects the indices of observed values matching the predicate.
func flag(in []float64, isOutlier func(float64) bool) []int {
	var idx []int
	for i, v := range in {
		if !math.IsNaN(v) && isOutlier(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the population standard deviation around m.
func stddev(vals []float64, m float64) float64 {
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}

// quantile interpolates linearly within a sorted, non-empty slice.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo == len(sorted)-1 {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*frac
}
