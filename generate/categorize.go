package generate

import (
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/stats"
	"github.com/halewijn/edo31/theory/tuning"
)

// Categorization is separate from naming: five independent axis rule sets
// run against every published scale, and every matching tag accumulates.
// An axis may contribute zero, one, or many tags.

// axisRule tags a scale when its predicate holds.
type axisRule struct {
	tag   string
	match func(s scale.Scale, m intervalStats) bool
}

type axis struct {
	name  string
	rules []axisRule
}

func hasDegree(s scale.Scale, degree int) bool {
	for _, d := range s.Degrees {
		if d == degree {
			return true
		}
	}
	return false
}

func hasInterval(m intervalStats, size int) bool {
	return m.counts[size] > 0
}

var categoryAxes = []axis{
	{
		name: "acoustic",
		rules: []axisRule{
			{"harmonic-triad", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 10) && hasDegree(s, 18)
			}},
			{"pure-fifth", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 18)
			}},
			{"septimal", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 25) || hasInterval(m, 7)
			}},
			{"undecimal", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 9) || hasDegree(s, 22)
			}},
		},
	},
	{
		name: "cultural",
		rules: []axisRule{
			{"maqam-like", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 9) || hasDegree(s, 4)
			}},
			{"raga-like", func(s scale.Scale, m intervalStats) bool {
				return s.NoteCount() == 7 && m.max >= 6 && m.min <= 3
			}},
			{"gamelan-like", func(s scale.Scale, m intervalStats) bool {
				return s.NoteCount() == 5
			}},
			{"blues-like", func(s scale.Scale, m intervalStats) bool {
				return s.NoteCount() == 6 && (hasDegree(s, 15) || hasDegree(s, 16))
			}},
			{"western", func(s scale.Scale, m intervalStats) bool {
				for _, iv := range m.intervals {
					if iv != 3 && iv != 5 {
						return false
					}
				}
				return len(m.intervals) > 0
			}},
		},
	},
	{
		name: "perceptual",
		rules: []axisRule{
			{"consonant", func(s scale.Scale, m intervalStats) bool {
				return pitchConsonance(s) >= 6
			}},
			{"dissonant", func(s scale.Scale, m intervalStats) bool {
				return pitchConsonance(s) < 4
			}},
			{"bright", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 10) || hasDegree(s, 15)
			}},
			{"dark", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 8) && !hasDegree(s, 10)
			}},
			{"tense", func(s scale.Scale, m intervalStats) bool {
				return hasDegree(s, 15) || hasDegree(s, 16)
			}},
		},
	},
	{
		name: "mathematical",
		rules: []axisRule{
			{"mos", func(s scale.Scale, m intervalStats) bool {
				return m.distinct == 2
			}},
			{"symmetric", func(s scale.Scale, m intervalStats) bool {
				return stats.IsPalindrome(m.intervals)
			}},
			{"prime-cardinality", func(s scale.Scale, m intervalStats) bool {
				n := s.NoteCount()
				return n == 2 || n == 3 || n == 5 || n == 7
			}},
			{"near-even", func(s scale.Scale, m intervalStats) bool {
				return len(m.intervals) > 0 && m.max-m.min <= 2
			}},
		},
	},
	{
		name: "genera",
		rules: []axisRule{
			{"diatonic", func(s scale.Scale, m intervalStats) bool {
				return m.min >= 3
			}},
			{"chromatic", func(s scale.Scale, m intervalStats) bool {
				return hasInterval(m, 2) && !hasInterval(m, 1)
			}},
			{"enharmonic", func(s scale.Scale, m intervalStats) bool {
				return hasInterval(m, 1)
			}},
			{"mixed", func(s scale.Scale, m intervalStats) bool {
				return m.min <= 2 && m.max >= 6
			}},
		},
	},
}

// pitchConsonance rates the scale's pitch degrees, excluding the terminal
// octave so the unison/octave pair does not inflate the average.
func pitchConsonance(s scale.Scale) float64 {
	if len(s.Degrees) < 2 {
		return 0
	}
	return tuning.OverallConsonance(s.Degrees[:len(s.Degrees)-1]).Rating
}

// Categorize evaluates every axis rule set against a scale and returns the
// accumulated tags per axis. Axes with no matching tag are omitted.
func Categorize(s scale.Scale) map[string][]string {
	m := statsFor(s.Intervals)
	categories := make(map[string][]string)
	for _, ax := range categoryAxes {
		var tags []string
		for _, rule := range ax.rules {
			if rule.match(s, m) {
				tags = append(tags, rule.tag)
			}
		}
		if len(tags) > 0 {
			categories[ax.name] = tags
		}
	}
	return categories
}
