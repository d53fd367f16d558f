package generate

import (
	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
)

// fourthsOrder cycles the scale-degree indices in circle-of-fourths order:
// fourth, seventh, third, sixth, second, fifth, tonic.
var fourthsOrder = []int{3, 6, 2, 5, 1, 4, 0}

// HeptatonicGenerator enumerates 7-note scales by repeatedly flattening one
// degree of the brightest valid scale, following the circle of fourths.
type HeptatonicGenerator struct {
	params Params
	logger logging.Logger
}

// NewHeptatonicGenerator creates the generator for one run's parameters.
func NewHeptatonicGenerator(params Params) *HeptatonicGenerator {
	return &HeptatonicGenerator{
		params: params,
		logger: logging.WithFields(logging.Fields{"generator": FamilyHeptatonic}),
	}
}

// baseIntervals is the brightest valid 7-note pattern for the configured
// step floor.
func (g *HeptatonicGenerator) baseIntervals() []int {
	if g.params.MinStep >= 3 {
		return []int{5, 5, 3, 5, 5, 5, 3}
	}
	return []int{6, 6, 5, 5, 5, 2, 2}
}

// Generate explores the flattening space and expands every unique scale
// found into its seven rotational modes. Scales come back unnamed; naming
// and categorization are a later pass.
func (g *HeptatonicGenerator) Generate() []scale.Scale {
	base := scale.FromIntervals("", g.baseIntervals())

	seen := map[string]bool{base.IntervalKey(): true}
	unique := []scale.Scale{base}

	// Each cyclic starting point chains from the previous one's last
	// successful candidate rather than resetting to the base scale.
	current := base
	for cycle := 0; cycle < len(fourthsOrder); cycle++ {
		current = g.explore(current, cycle, seen, &unique)
	}

	var all []scale.Scale
	for _, s := range unique {
		rotations := s.Modes()
		// Rotation 0 is the original; keep its alteration history.
		rotations[0].Alterations = s.Alterations
		all = append(all, rotations...)
	}

	g.logger.Debug("heptatonic exploration finished", logging.Fields{
		"unique_patterns": len(unique),
		"with_modes":      len(all),
	})
	return all
}

// explore flattens degrees in circle-of-fourths order starting at the given
// cyclic offset, collecting each new interval pattern. With
// BreakOnDuplicate set, the first invalid or already-seen candidate
// terminates this direction; otherwise exploration skips past it.
func (g *HeptatonicGenerator) explore(start scale.Scale, cycle int, seen map[string]bool, out *[]scale.Scale) scale.Scale {
	current := start
	for depth := 0; depth < g.params.MaxFlattenDepth; depth++ {
		degree := fourthsOrder[(cycle+depth)%len(fourthsOrder)]

		candidate, ok := g.flatten(current, degree)
		if !ok {
			if g.params.BreakOnDuplicate {
				break
			}
			continue
		}

		key := candidate.IntervalKey()
		if seen[key] {
			if g.params.BreakOnDuplicate {
				break
			}
			current = candidate
			continue
		}

		seen[key] = true
		*out = append(*out, candidate)
		current = candidate
	}
	return current
}

// flatten lowers one degree by a step, if legal: both neighboring intervals
// must sit above the floor before the edit, and no interval may fall below
// it afterwards. The candidate is a fresh record derived from the parent.
func (g *HeptatonicGenerator) flatten(s scale.Scale, degree int) (scale.Scale, bool) {
	if degree < 1 || degree > len(s.Degrees)-2 {
		return scale.Scale{}, false
	}
	if s.Intervals[degree-1] <= g.params.MinStep || s.Intervals[degree] <= g.params.MinStep {
		return scale.Scale{}, false
	}

	candidate := s.WithAlteration(degree, -1)
	if !scale.IntervalsInBounds(candidate.Intervals, g.params.MinStep, g.params.MaxStep) {
		return scale.Scale{}, false
	}
	return candidate, true
}
