package generate

import (
	"fmt"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/scale"
)

// culturalVariant derives a new scale from a base by a small list of
// degree edits. A variant is accepted only if the recalculated intervals
// stay within the step band.
type culturalVariant struct {
	name  string
	edits []scale.Alteration
}

// culturalScale is one authored approximation of a traditional scale.
type culturalScale struct {
	name     string
	degrees  []int
	variants []culturalVariant
}

type culturalTradition struct {
	name   string
	scales []culturalScale
}

// culturalTraditions approximates maqamat, ragas, gamelan tunings and
// blues scales in 31-EDO. Neutral seconds and thirds land on 4 and 9
// steps, which is most of why 31-EDO fits the maqam repertoire.
var culturalTraditions = []culturalTradition{
	{
		name: "maqam",
		scales: []culturalScale{
			{"Maqam Rast", []int{0, 5, 9, 13, 18, 23, 27, 31}, []culturalVariant{
				{"Maqam Suznak", []scale.Alteration{{Degree: 5, Delta: -2}}},
				{"Maqam Nairuz", []scale.Alteration{{Degree: 6, Delta: -1}}},
			}},
			{"Maqam Bayati", []int{0, 4, 8, 13, 18, 21, 26, 31}, []culturalVariant{
				{"Maqam Husseini", []scale.Alteration{{Degree: 5, Delta: 1}}},
			}},
			{"Maqam Hijaz", []int{0, 3, 10, 13, 18, 21, 26, 31}, []culturalVariant{
				{"Maqam Hijaz Kar", []scale.Alteration{{Degree: 6, Delta: 2}}},
			}},
			{"Maqam Saba", []int{0, 4, 8, 11, 18, 21, 26, 31}, nil},
		},
	},
	{
		name: "raga",
		scales: []culturalScale{
			{"Raga Yaman", []int{0, 5, 10, 15, 18, 23, 28, 31}, nil},
			{"Raga Kafi", []int{0, 5, 8, 13, 18, 23, 26, 31}, []culturalVariant{
				{"Raga Bageshri", []scale.Alteration{{Degree: 2, Delta: 1}}},
			}},
			{"Raga Bhairav", []int{0, 3, 10, 13, 18, 21, 28, 31}, nil},
			{"Raga Todi", []int{0, 3, 8, 15, 18, 21, 28, 31}, nil},
		},
	},
	{
		name: "gamelan",
		scales: []culturalScale{
			{"Slendro", []int{0, 6, 12, 19, 25, 31}, []culturalVariant{
				{"Slendro Miring", []scale.Alteration{{Degree: 1, Delta: -1}}},
			}},
			{"Pelog Approximation", []int{0, 3, 8, 15, 18, 21, 26, 31}, nil},
		},
	},
	{
		name: "blues",
		scales: []culturalScale{
			{"Blues Hexatonic", []int{0, 8, 13, 15, 18, 26, 31}, []culturalVariant{
				{"Blues Raised Tritone", []scale.Alteration{{Degree: 3, Delta: 1}}},
			}},
			{"Minor Pentatonic", []int{0, 8, 13, 18, 26, 31}, nil},
		},
	},
}

// CulturalGenerator publishes the authored cultural approximations and
// their accepted variants, grouped by tradition.
type CulturalGenerator struct {
	params   Params
	registry *NameRegistry
	logger   logging.Logger
}

// NewCulturalGenerator creates the generator for one run.
func NewCulturalGenerator(params Params, registry *NameRegistry) *CulturalGenerator {
	return &CulturalGenerator{
		params:   params,
		registry: registry,
		logger:   logging.WithFields(logging.Fields{"generator": FamilyCultural}),
	}
}

// Generate returns the cultural family grouped by tradition. Base scales
// are published as authored; variants are rejected when their recalculated
// intervals leave the step band. The blues tradition keeps its wide and
// narrow steps, so its band check is intentionally looser.
func (c *CulturalGenerator) Generate() map[string][]scale.Scale {
	groups := map[string][]scale.Scale{}

	for _, tradition := range culturalTraditions {
		minStep, maxStep := c.params.MinStep, c.params.MaxStep
		if tradition.name == "blues" {
			minStep, maxStep = 2, 8
		}

		for _, base := range tradition.scales {
			s := scale.New(c.registry.Claim(base.name), base.degrees)
			s.Description = fmt.Sprintf("31-EDO approximation (%s)", tradition.name)
			groups[tradition.name] = append(groups[tradition.name], s)

			for _, variant := range base.variants {
				v := s
				v.Name = ""
				v.Alterations = nil
				for _, edit := range variant.edits {
					v = v.WithAlteration(edit.Degree, edit.Delta)
				}
				if v.Validate() != nil {
					continue
				}
				if !scale.IntervalsInBounds(v.Intervals, minStep, maxStep) {
					continue
				}
				v.Name = c.registry.Claim(variant.name)
				v.Description = fmt.Sprintf("Variant of %s (%s)", base.name, tradition.name)
				groups[tradition.name] = append(groups[tradition.name], v)
			}
		}
	}

	c.logger.Debug("cultural generation finished", logging.Fields{
		"traditions": len(culturalTraditions),
	})
	return groups
}
