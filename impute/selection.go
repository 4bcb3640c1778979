package impute

import (
	"github.com/velmark/selekt/config"
	"github.com/velmark/selekt/strategy"
)

// constantParams mirrors the YAML params block for the constant strategy:
//
//	strategy: constant
//	params:
//	  value: 0.5
type constantParams struct {
	Value *float64 `yaml:"value"`
}

// FromSelection turns a loaded config selection into a Fill descriptor.
// Only "constant" takes parameters; a missing value passes the bare tag
// through so resolution reports the required field.
func FromSelection(sel config.Selection) (any, error) {
	if strategy.Tag(sel.Strategy) != ConstantTag {
		return strategy.Tag(sel.Strategy), nil
	}

	var p constantParams
	if err := sel.DecodeParams(&p); err != nil {
		return nil, err
	}
	if p.Value == nil {
		return ConstantTag, nil
	}

	return Constant(*p.Value), nil
}
