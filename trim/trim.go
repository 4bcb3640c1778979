package trim

import (
	"strings"

	"github.com/velmark/selekt/strategy"
)

// registry holds the three side strategies. Built once at package
// initialization and read-only thereafter.
var registry = strategy.MustNew(
	strategy.Registration[string, string]{
		Tag:      Left,
		Validate: cutsetValidator(Left),
		Run:      runLeft,
		Default:  CutsetSpec{side: Left, Chars: DefaultCutset},
	},
	strategy.Registration[string, string]{
		Tag:      Right,
		Validate: cutsetValidator(Right),
		Run:      runRight,
		Default:  CutsetSpec{side: Right, Chars: DefaultCutset},
	},
	strategy.Registration[string, string]{
		Tag:      Both,
		Validate: cutsetValidator(Both),
		Run:      runBoth,
		Default:  CutsetSpec{side: Both, Chars: DefaultCutset},
	},
)

// Trim removes runes from s according to the side descriptor: a side tag
// ("left", "right", "both"), a Cutset Spec, or a custom
// func(string, strategy.Spec) (string, error).
//
// Plain names trim ASCII whitespace (DefaultCutset). Unknown names fail
// with strategy.ErrInvalidTag listing the three sides.
func Trim(s string, side any) (string, error) {
	rs, err := registry.Resolve(side)
	if err != nil {
		return "", err
	}
	return rs.Execute(s)
}

// TrimStart is a call site that only supports the Left side: any other
// side, however valid elsewhere, fails with strategy.ErrUnsupportedStrategy.
func TrimStart(s string, side any) (string, error) {
	rs, err := registry.Resolve(side, Left)
	if err != nil {
		return "", err
	}
	return rs.Execute(s)
}

// TrimEnd is the Right-only counterpart of TrimStart.
func TrimEnd(s string, side any) (string, error) {
	rs, err := registry.Resolve(side, Right)
	if err != nil {
		return "", err
	}
	return rs.Execute(s)
}

// Sides returns the registered side tags in sorted order.
func Sides() []strategy.Tag {
	return registry.Tags()
}

// cutsetValidator builds the per-side parameter check: the Spec must be a
// CutsetSpec with a non-empty Chars.
func cutsetValidator(tag strategy.Tag) strategy.Validator {
	return func(spec strategy.Spec) error {
		cs, ok := spec.(CutsetSpec)
		if !ok {
			return &strategy.ParameterError{Tag: tag, Field: "Chars", Value: nil, Reason: "cutset is required"}
		}
		if cs.Chars == "" {
			return &strategy.ParameterError{Tag: tag, Field: "Chars", Value: cs.Chars, Reason: "must be non-empty"}
		}
		return nil
	}
}

func runLeft(in string, spec strategy.Spec) (string, error) {
	return strings.TrimLeft(in, spec.(CutsetSpec).Chars), nil
}

func runRight(in string, spec strategy.Spec) (string, error) {
	return strings.TrimRight(in, spec.(CutsetSpec).Chars), nil
}

func runBoth(in string, spec strategy.Spec) (string, error) {
	return strings.Trim(in, spec.(CutsetSpec).Chars), nil
}
