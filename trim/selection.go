package trim

import (
	"github.com/velmark/selekt/config"
	"github.com/velmark/selekt/strategy"
)

// cutsetParams mirrors the YAML params block for the side strategies:
//
//	strategy: left
//	params:
//	  chars: "-_"
type cutsetParams struct {
	Chars string `yaml:"chars"`
}

// FromSelection turns a loaded config selection into a Trim descriptor:
// the bare side name when no cutset is configured, a Cutset otherwise.
// Unknown names pass through so resolution can report them with the valid
// choices.
func FromSelection(sel config.Selection) (any, error) {
	var p cutsetParams
	if err := sel.DecodeParams(&p); err != nil {
		return nil, err
	}
	if p.Chars == "" {
		return strategy.Tag(sel.Strategy), nil
	}

	return Cutset(strategy.Tag(sel.Strategy), p.Chars), nil
}
