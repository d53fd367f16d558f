package generate

import (
	"strings"

	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/stats"
)

// diatonicMode is one of the seven traditional mode interval patterns in
// 31-EDO steps (whole tone = 5, diatonic semitone = 3).
type diatonicMode struct {
	name      string
	intervals []int
}

var diatonicModes = []diatonicMode{
	{"Ionian", []int{5, 5, 3, 5, 5, 5, 3}},
	{"Dorian", []int{5, 3, 5, 5, 5, 3, 5}},
	{"Phrygian", []int{3, 5, 5, 5, 3, 5, 5}},
	{"Lydian", []int{5, 5, 5, 3, 5, 5, 3}},
	{"Mixolydian", []int{5, 5, 3, 5, 5, 3, 5}},
	{"Aeolian", []int{5, 3, 5, 5, 3, 5, 5}},
	{"Locrian", []int{3, 5, 5, 3, 5, 5, 5}},
}

// ModeNames lists the traditional mode names positionally, for families
// that attach them to rotations directly.
var ModeNames = []string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}

// descriptorRule appends a token to a scale name when its predicate over
// the interval multiset holds. Rules run in order and at most two tokens
// are kept.
type descriptorRule struct {
	token string
	match func(m intervalStats) bool
}

// intervalStats are the multiset statistics the descriptor rules and the
// categorizer share.
type intervalStats struct {
	intervals []int
	counts    map[int]int
	distinct  int
	mean      float64
	min       int
	max       int
}

func statsFor(intervals []int) intervalStats {
	fs := stats.IntsToFloats(intervals)
	return intervalStats{
		intervals: intervals,
		counts:    stats.Counts(intervals),
		distinct:  stats.DistinctCount(intervals),
		mean:      stats.Mean(fs),
		min:       int(stats.Min(fs)),
		max:       int(stats.Max(fs)),
	}
}

var descriptorRules = []descriptorRule{
	{"Micro", func(m intervalStats) bool { return m.min <= 2 && m.min > 0 }},
	{"Septal", func(m intervalStats) bool { return m.counts[7] > 0 }},
	{"Hyper", func(m intervalStats) bool { return m.max >= 6 }},
	{"Symmetric", func(m intervalStats) bool { return stats.IsPalindrome(m.intervals) }},
	{"Binary", func(m intervalStats) bool { return m.distinct == 2 }},
	{"Uniform", func(m intervalStats) bool { return m.distinct == 1 }},
}

const maxDescriptorTokens = 2

// Namer assigns deterministic, run-unique names to generated scales. The
// base name depends only on the interval content; uniqueness comes from the
// run's registry.
type Namer struct {
	registry *NameRegistry
}

// NewNamer creates a namer backed by a run-scoped registry.
func NewNamer(registry *NameRegistry) *Namer {
	return &Namer{registry: registry}
}

// Registry exposes the namer's registry for generators that name inline.
func (n *Namer) Registry() *NameRegistry {
	return n.registry
}

// Name computes the base name for a scale's intervals and claims a unique
// variant of it from the registry.
func (n *Namer) Name(s scale.Scale) string {
	return n.registry.Claim(BaseName(s.Intervals))
}

// BaseName derives the descriptive name for an interval sequence: the exact
// diatonic mode name when one matches, otherwise up to two descriptor
// tokens prefixed to the closest mode's name, or "Modified <mode>" when no
// descriptor applies.
func BaseName(intervals []int) string {
	if mode, exact := matchMode(intervals); exact {
		return mode
	}

	closest := closestMode(intervals)
	m := statsFor(intervals)

	var tokens []string
	for _, rule := range descriptorRules {
		if len(tokens) == maxDescriptorTokens {
			break
		}
		if rule.match(m) {
			tokens = append(tokens, rule.token)
		}
	}

	if len(tokens) == 0 {
		return "Modified " + closest
	}
	return strings.Join(tokens, " ") + " " + closest
}

// matchMode checks the interval tuple against the seven diatonic patterns.
func matchMode(intervals []int) (string, bool) {
	for _, mode := range diatonicModes {
		if equalIntervals(intervals, mode.intervals) {
			return mode.name, true
		}
	}
	return "", false
}

// closestMode finds the diatonic pattern with minimum total absolute
// per-position difference. Length mismatches are compared over the shorter
// length with a fixed penalty per missing position, and ties resolve to the
// first pattern in table order.
func closestMode(intervals []int) string {
	best := diatonicModes[0].name
	bestDiff := -1
	for _, mode := range diatonicModes {
		diff := patternDifference(intervals, mode.intervals)
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			best = mode.name
		}
	}
	return best
}

const lengthMismatchPenalty = 4

func patternDifference(a, b []int) int {
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	diff := 0
	for i := 0; i < shorter; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		diff += d
	}
	longer := len(a) + len(b) - 2*shorter
	return diff + longer*lengthMismatchPenalty
}

func equalIntervals(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
