package generate

import (
	"sort"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/stats"
	"github.com/halewijn/edo31/theory/tuning"
)

// stackGenerator builds the cyclic stack {0, g, 2g, ...} mod 31 of n
// members, deduplicated and sorted, with the terminal octave appended.
// ok is false when the stack collapses below n distinct degrees.
func stackGenerator(g, n int) ([]int, bool) {
	seen := make(map[int]bool, n)
	for k := 0; k < n; k++ {
		seen[(k*g)%tuning.StepsPerOctave] = true
	}
	if len(seen) != n {
		return nil, false
	}

	degrees := make([]int, 0, n+1)
	for d := range seen {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	degrees = append(degrees, tuning.StepsPerOctave)
	return degrees, true
}

// MOSGenerator produces Moment-of-Symmetry scales: generator stacks whose
// interval pattern has exactly two distinct step sizes.
type MOSGenerator struct {
	params Params
	logger logging.Logger
}

// NewMOSGenerator creates the generator for one run's parameters.
func NewMOSGenerator(params Params) *MOSGenerator {
	return &MOSGenerator{
		params: params,
		logger: logging.WithFields(logging.Fields{"generator": FamilyMOS}),
	}
}

// Generate stacks every configured generator size at every target note
// count and keeps the stacks with the defining two-step-size property.
// Complementary generators produce identical degree sets, so results are
// deduplicated by interval pattern, first occurrence winning.
func (m *MOSGenerator) Generate() []scale.Scale {
	seen := make(map[string]bool)
	var out []scale.Scale

	for _, gen := range m.params.MOSGenerators {
		for n := m.params.MOSMinNotes; n <= m.params.MOSMaxNotes; n++ {
			degrees, ok := stackGenerator(gen, n)
			if !ok {
				continue
			}

			s := scale.New("", degrees)
			counts := stats.Counts(s.Intervals)
			if len(counts) != 2 {
				continue
			}
			if seen[s.IntervalKey()] {
				continue
			}
			seen[s.IntervalKey()] = true

			large, small := largeSmall(counts)
			s.Properties = map[string]float64{
				"generator":   float64(gen),
				"large_step":  float64(large),
				"small_step":  float64(small),
				"large_count": float64(counts[large]),
				"small_count": float64(counts[small]),
			}
			out = append(out, s)
		}
	}

	m.logger.Debug("mos stacking finished", logging.Fields{"scales": len(out)})
	return out
}

// largeSmall splits a two-entry interval count map into its step sizes.
func largeSmall(counts map[int]int) (large, small int) {
	for size := range counts {
		if size > large {
			large = size
		}
	}
	small = large
	for size := range counts {
		if size < small {
			small = size
		}
	}
	return large, small
}
