package generate

import (
	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
)

// WellFormedGenerator produces generator-stacked scales accepted on the
// step-size band alone, without the MOS two-size constraint.
type WellFormedGenerator struct {
	params Params
	logger logging.Logger
}

// NewWellFormedGenerator creates the generator for one run's parameters.
func NewWellFormedGenerator(params Params) *WellFormedGenerator {
	return &WellFormedGenerator{
		params: params,
		logger: logging.WithFields(logging.Fields{"generator": FamilyWellFormed}),
	}
}

// Generate stacks every configured generator size at every target note
// count and keeps stacks whose intervals all lie in the configured band,
// deduplicated by interval pattern.
func (w *WellFormedGenerator) Generate() []scale.Scale {
	seen := make(map[string]bool)
	var out []scale.Scale

	for _, gen := range w.params.MOSGenerators {
		for n := w.params.MOSMinNotes; n <= w.params.MOSMaxNotes; n++ {
			degrees, ok := stackGenerator(gen, n)
			if !ok {
				continue
			}

			s := scale.New("", degrees)
			if !scale.IntervalsInBounds(s.Intervals, w.params.MinStep, w.params.MaxStep) {
				continue
			}
			if seen[s.IntervalKey()] {
				continue
			}
			seen[s.IntervalKey()] = true

			s.Properties = map[string]float64{"generator": float64(gen)}
			out = append(out, s)
		}
	}

	w.logger.Debug("well-formed stacking finished", logging.Fields{"scales": len(out)})
	return out
}
