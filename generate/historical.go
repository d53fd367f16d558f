package generate

import (
	"fmt"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
)

// historicalTemperament is a named historical tuning expressed directly as
// a 7-note interval pattern in 31-EDO steps.
type historicalTemperament struct {
	name      string
	intervals []int
}

// 31-EDO is itself an extended quarter-comma meantone, so the meantone
// variants land exactly; the others are the closest degree sets.
var historicalTemperaments = []historicalTemperament{
	{"Quarter-comma Meantone", []int{5, 5, 3, 5, 5, 5, 3}},
	{"Sixth-comma Meantone", []int{5, 6, 3, 5, 5, 5, 2}},
	{"Werckmeister III", []int{5, 5, 3, 5, 5, 6, 2}},
	{"Kirnberger III", []int{5, 5, 3, 6, 4, 5, 3}},
	{"Pythagorean", []int{5, 6, 2, 5, 5, 6, 2}},
	{"Ptolemaic Just", []int{5, 5, 3, 5, 4, 6, 3}},
}

// HistoricalGenerator expands a fixed table of historical tunings into
// their seven rotational modes with traditional mode names attached
// positionally.
type HistoricalGenerator struct {
	registry *NameRegistry
	logger   logging.Logger
}

// NewHistoricalGenerator creates the generator for one run.
func NewHistoricalGenerator(registry *NameRegistry) *HistoricalGenerator {
	return &HistoricalGenerator{
		registry: registry,
		logger:   logging.WithFields(logging.Fields{"generator": FamilyHistorical}),
	}
}

// Generate returns the historical family grouped by temperament, each group
// holding the seven modes in rotation order.
func (h *HistoricalGenerator) Generate() map[string][]scale.Scale {
	groups := map[string][]scale.Scale{}

	for _, t := range historicalTemperaments {
		base := scale.FromIntervals("", t.intervals)
		for k, mode := range base.Modes() {
			mode.Name = h.registry.Claim(fmt.Sprintf("%s %s", t.name, ModeNames[k]))
			mode.Description = fmt.Sprintf("%s rotation of the %s degree set", ModeNames[k], t.name)
			groups[t.name] = append(groups[t.name], mode)
		}
	}

	h.logger.Debug("historical expansion finished", logging.Fields{
		"temperaments": len(historicalTemperaments),
	})
	return groups
}
