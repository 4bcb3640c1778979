package outlier

import (
	"github.com/velmark/selekt/config"
	"github.com/velmark/selekt/strategy"
)

// detectParams mirrors the YAML params blocks of all three strategies;
// pointer fields distinguish "absent" from zero values:
//
//	strategy: fence
//	params:
//	  lo: -1.0
//	  hi: 1.0
type detectParams struct {
	K    *float64 `yaml:"k"`
	Mult *float64 `yaml:"mult"`
	Lo   *float64 `yaml:"lo"`
	Hi   *float64 `yaml:"hi"`
}

// FromSelection turns a loaded config selection into a Detect descriptor.
// Strategies without their parameters pass through as bare tags, so
// resolution applies the registered defaults (zscore, iqr) or reports the
// missing bounds (fence).
func FromSelection(sel config.Selection) (any, error) {
	var p detectParams
	if err := sel.DecodeParams(&p); err != nil {
		return nil, err
	}

	switch strategy.Tag(sel.Strategy) {
	case ZScoreTag:
		if p.K != nil {
			return ZScore(*p.K), nil
		}
	case IQRTag:
		if p.Mult != nil {
			return IQR(*p.Mult), nil
		}
	case FenceTag:
		if p.Lo != nil && p.Hi != nil {
			return Fence(*p.Lo, *p.Hi), nil
		}
	}

	return strategy.Tag(sel.Strategy), nil
}
