package generate

import (
	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/tuning"
)

// The xenharmonic family deliberately leaves the common step band: neutral
// interval chains, tiled micro-patterns, and fixed exotic sets.

// xenFixed are hand-authored degree sets emphasizing neutral and exotic
// intervals.
var xenFixed = []seedScale{
	{"Neutral Diatonic", []int{0, 4, 9, 13, 18, 22, 27, 31}},
	{"Semaphore", []int{0, 5, 9, 14, 18, 23, 27, 31}},
	{"Diesis Cluster", []int{0, 1, 10, 11, 20, 21, 30, 31}},
	{"Harmonic Eight", []int{0, 7, 13, 18, 22, 25, 28, 31}},
}

// xenPattern is a short step pattern tiled until the octave is nearly
// filled.
type xenPattern struct {
	name    string
	pattern []int
}

var xenPatterns = []xenPattern{
	{"Tiled 2-3", []int{2, 3}},
	{"Tiled 3-2", []int{3, 2}},
	{"Tiled 2-2-3", []int{2, 2, 3}},
	{"Tiled 3-3-2", []int{3, 3, 2}},
	{"Tiled 4-5", []int{4, 5}},
	{"Tiled 5-4", []int{5, 4}},
}

// tileTolerance stops tiling when the next degree would land within this
// distance of the octave; the final degree is then forced to 31.
const tileTolerance = 2

// XenharmonicGenerator produces the xenharmonic family. Scales are named
// inline from their authored names, claimed through the run's registry.
type XenharmonicGenerator struct {
	registry *NameRegistry
	logger   logging.Logger
}

// NewXenharmonicGenerator creates the generator for one run.
func NewXenharmonicGenerator(registry *NameRegistry) *XenharmonicGenerator {
	return &XenharmonicGenerator{
		registry: registry,
		logger:   logging.WithFields(logging.Fields{"generator": FamilyXenharmonic}),
	}
}

// Generate returns the fixed and tiled xenharmonic groups. No step-band
// acceptance applies here; microtonal and chromatic steps are the point.
func (x *XenharmonicGenerator) Generate() map[string][]scale.Scale {
	groups := map[string][]scale.Scale{}

	for _, fixed := range xenFixed {
		s := scale.New(x.registry.Claim(fixed.name), fixed.degrees)
		s.Description = "Hand-authored xenharmonic degree set"
		groups["fixed"] = append(groups["fixed"], s)
	}

	for _, p := range xenPatterns {
		s := x.tile(p)
		groups["tiled"] = append(groups["tiled"], s)
	}

	x.logger.Debug("xenharmonic generation finished", logging.Fields{
		"fixed": len(groups["fixed"]),
		"tiled": len(groups["tiled"]),
	})
	return groups
}

// tile repeats a step pattern from 0 until the next degree would come
// within tileTolerance of the octave, then forces the final degree to 31.
func (x *XenharmonicGenerator) tile(p xenPattern) scale.Scale {
	degrees := []int{0}
	cur := 0
	for done := false; !done; {
		for _, step := range p.pattern {
			cur += step
			if cur >= tuning.StepsPerOctave-tileTolerance {
				done = true
				break
			}
			degrees = append(degrees, cur)
		}
	}
	degrees = append(degrees, tuning.StepsPerOctave)

	s := scale.New(x.registry.Claim(p.name), degrees)
	s.Description = "Repeating step pattern tiled across the octave"
	return s
}
