package generate

import (
	"fmt"
	"sort"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/tuning"
)

// seedScale is a named reference scale hybrids are built from.
type seedScale struct {
	name    string
	degrees []int
}

// hybridSeeds mixes Western, Arabic, Indian and blues references. Order is
// fixed; hybrid output order follows it.
var hybridSeeds = []seedScale{
	{"Major", []int{0, 5, 10, 13, 18, 23, 28, 31}},
	{"Natural Minor", []int{0, 5, 8, 13, 18, 21, 26, 31}},
	{"Harmonic Minor", []int{0, 5, 8, 13, 18, 21, 28, 31}},
	{"Rast", []int{0, 5, 9, 13, 18, 23, 27, 31}},
	{"Bayati", []int{0, 4, 8, 13, 18, 21, 26, 31}},
	{"Hijaz", []int{0, 3, 10, 13, 18, 21, 26, 31}},
	{"Bhairav", []int{0, 3, 10, 13, 18, 21, 28, 31}},
	{"Kafi", []int{0, 5, 8, 13, 18, 23, 26, 31}},
	{"Todi", []int{0, 3, 8, 15, 18, 21, 28, 31}},
	{"Blues Hexatonic", []int{0, 8, 13, 15, 18, 26, 31}},
}

// HybridGenerator combines pairs of reference scales by tetrachord splice
// and by degree alternation. Hybrids are named inline, so the generator
// consults the run's registry.
type HybridGenerator struct {
	params   Params
	registry *NameRegistry
	logger   logging.Logger
}

// NewHybridGenerator creates the generator for one run.
func NewHybridGenerator(params Params, registry *NameRegistry) *HybridGenerator {
	return &HybridGenerator{
		params:   params,
		registry: registry,
		logger:   logging.WithFields(logging.Fields{"generator": FamilyHybrid}),
	}
}

// Generate builds both hybrid methods for every ordered pair of distinct
// seeds, grouped by method. Candidates whose re-derived intervals leave the
// step band are silently dropped, as are duplicate interval patterns.
func (h *HybridGenerator) Generate() map[string][]scale.Scale {
	groups := map[string][]scale.Scale{}
	seen := make(map[string]bool)

	for i, a := range hybridSeeds {
		for j, b := range hybridSeeds {
			if i == j {
				continue
			}
			if s, ok := h.splice(a, b); ok && !seen[s.IntervalKey()] {
				seen[s.IntervalKey()] = true
				groups["splice"] = append(groups["splice"], s)
			}
			if s, ok := h.alternate(a, b); ok && !seen[s.IntervalKey()] {
				seen[s.IntervalKey()] = true
				groups["alternating"] = append(groups["alternating"], s)
			}
		}
	}

	h.logger.Debug("hybrid combination finished", logging.Fields{
		"splice":      len(groups["splice"]),
		"alternating": len(groups["alternating"]),
	})
	return groups
}

// splice joins the lower tetrachord of a with the upper degrees of b.
func (h *HybridGenerator) splice(a, b seedScale) (scale.Scale, bool) {
	if len(a.degrees) < 4 || len(b.degrees) < 5 {
		return scale.Scale{}, false
	}
	degrees := append([]int{}, a.degrees[:4]...)
	degrees = append(degrees, b.degrees[4:]...)

	name := fmt.Sprintf("%s-%s Splice", a.name, b.name)
	return h.assemble(name, a, b, degrees)
}

// alternate interleaves the inner degrees of a and b by position parity.
func (h *HybridGenerator) alternate(a, b seedScale) (scale.Scale, bool) {
	innerA := a.degrees[1 : len(a.degrees)-1]
	innerB := b.degrees[1 : len(b.degrees)-1]

	degrees := []int{0}
	longest := len(innerA)
	if len(innerB) > longest {
		longest = len(innerB)
	}
	for i := 0; i < longest; i++ {
		if i%2 == 0 && i < len(innerA) {
			degrees = append(degrees, innerA[i])
		} else if i%2 == 1 && i < len(innerB) {
			degrees = append(degrees, innerB[i])
		}
	}
	degrees = append(degrees, tuning.StepsPerOctave)

	name := fmt.Sprintf("%s-%s Alternating", a.name, b.name)
	return h.assemble(name, a, b, degrees)
}

// assemble sorts and deduplicates a raw degree list, re-derives intervals,
// and applies the band acceptance shared by all generators. The name is
// claimed from the registry only for accepted scales, keeping run naming
// deterministic.
func (h *HybridGenerator) assemble(name string, a, b seedScale, raw []int) (scale.Scale, bool) {
	sort.Ints(raw)
	degrees := raw[:0:0]
	for _, d := range raw {
		if len(degrees) == 0 || degrees[len(degrees)-1] != d {
			degrees = append(degrees, d)
		}
	}
	if len(degrees) < 3 || degrees[0] != 0 || degrees[len(degrees)-1] != tuning.StepsPerOctave {
		return scale.Scale{}, false
	}

	s := scale.New("", degrees)
	if !scale.IntervalsInBounds(s.Intervals, h.params.MinStep, h.params.MaxStep) {
		return scale.Scale{}, false
	}

	s.Name = h.registry.Claim(name)
	s.Description = fmt.Sprintf("Hybrid of %s and %s", a.name, b.name)
	return s, true
}
