package impute

import (
	"math"
	"sort"

	"github.com/velmark/selekt/strategy"
)

// registry holds the four imputation strategies. Built once at package
// initialization and read-only thereafter.
var registry = strategy.MustNew(
	strategy.Registration[[]float64, []float64]{Tag: Mean, Run: runAggregate(mean)},
	strategy.Registration[[]float64, []float64]{Tag: Median, Run: runAggregate(median)},
	strategy.Registration[[]float64, []float64]{Tag: ConstantTag, Validate: validateConstant, Run: runConstant},
	strategy.Registration[[]float64, []float64]{Tag: Forward, Run: runForward},
)

// Fill returns a copy of series with every missing observation (NaN)
// replaced according to the method descriptor: a tag ("mean", "median",
// "constant", "forward"), a Constant Spec, or a custom
// func([]float64, strategy.Spec) ([]float64, error).
//
// The input is never mutated. "constant" has no default value, so the bare
// name fails with strategy.ErrInvalidParameters; use Constant(v).
//
// Executor errors (ErrEmptySeries, ErrAllMissing, ErrLeadingGap) surface
// unchanged.
func Fill(series []float64, method any) ([]float64, error) {
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

// validateConstant requires a finite fill value; a nil spec means the
// caller resolved "constant" by bare name.
func validateConstant(spec strategy.Spec) error {
	cs, ok := spec.(ConstantSpec)
	if !ok {
		return &strategy.ParameterError{Tag: ConstantTag, Field: "Value", Value: nil, Reason: "fill value is required"}
	}
	if math.IsNaN(cs.Value) || math.IsInf(cs.Value, 0) {
		return &strategy.ParameterError{Tag: ConstantTag, Field: "Value", Value: cs.Value, Reason: "must be finite"}
	}
	return nil
}

// runAggregate builds an executor that replaces gaps with one aggregate of
// the observed values.
func runAggregate(agg func(observed []float64) float64) strategy.Executor[[]float64, []float64] {
	return func(in []float64, _ strategy.Spec) ([]float64, error) {
		if len(in) == 0 {
			return nil, ErrEmptySeries
		}

		observed := make([]float64, 0, len(in))
		for _, v := range in {
			if !math.IsNaN(v) {
				observed = append(observed, v)
			}
		}
		if len(observed) == 0 {
			return nil, ErrAllMissing
		}

		fill := agg(observed)
		out := make([]float64, len(in))
		for i, v := range in {
			if math.IsNaN(v) {
				out[i] = fill
			} else {
				out[i] = v
			}
		}

		return out, nil
	}
}

func runConstant(in []float64, spec strategy.Spec) ([]float64, error) {
	if len(in) == 0 {
		return nil, ErrEmptySeries
	}

	fill := spec.(ConstantSpec).Value
	out := make([]float64, len(in))
	for i, v := range in {
		if math.IsNaN(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}

	return out, nil
}

func runForward(in []float64, _ strategy.Spec) ([]float64, error) {
	if len(in) == 0 {
		return nil, ErrEmptySeries
	}
	if math.IsNaN(in[0]) {
		return nil, ErrLeadingGap
	}

	out := make([]float64, len(in))
	last := in[0]
	for i, v := range in {
		if math.IsNaN(v) {
			out[i] = last
		} else {
			out[i] = v
			last = v
		}
	}

	return out, nil
}

// mean of a non-empty slice.
func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median of a non-empty slice; does not mutate its argument.
func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
