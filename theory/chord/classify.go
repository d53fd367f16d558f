package chord

import (
	"fmt"
	"strings"
)

// Chord classification works on consecutive intervals (root->3rd, 3rd->5th,
// 5th->7th, ...), not absolute notes, and deliberately uses tolerant ranges:
// 31-EDO chords rarely land on crisp 12-EDO interval values, so a spread of
// microtonal neighbors has to count as "the same" quality.

// GetChordType names the quality of a chord given its consecutive interval
// list. Unrecognized shapes fall back to a structural summary rather than a
// blank label.
func GetChordType(intervals []int) string {
	switch len(intervals) {
	case 0:
		return "unison"
	case 1:
		return dyadClass(intervals[0])
	case 2:
		return classifyTriad(intervals[0], intervals[1])
	default:
		return classifyExtended(intervals)
	}
}

// dyadClass buckets a single interval into a generic dyad label.
func dyadClass(steps int) string {
	switch {
	case steps <= 0:
		return "unison"
	case steps <= 6:
		return "second"
	case steps <= 11:
		return "third"
	case steps <= 14:
		return "fourth"
	case steps <= 16:
		return "tritone"
	case steps <= 19:
		return "fifth"
	case steps <= 24:
		return "sixth"
	case steps <= 30:
		return "seventh"
	case steps == 31:
		return "octave"
	default:
		return "compound"
	}
}

func within(x, lo, hi int) bool {
	return x >= lo && x <= hi
}

// triadRule is one ordered classification rule over the two stacked
// intervals and their sum. The first matching rule wins, so major-like must
// be tried before minor-like and both before the neutral catch.
type triadRule struct {
	name  string
	match func(a, b, sum int) bool
}

var triadRules = []triadRule{
	{"major", func(a, b, sum int) bool {
		return within(a, 10, 11) && within(b, 7, 9) && within(sum, 17, 20)
	}},
	{"minor", func(a, b, sum int) bool {
		return within(a, 7, 9) && within(b, 10, 11) && within(sum, 17, 20)
	}},
	{"diminished", func(a, b, sum int) bool {
		return within(a, 7, 9) && within(b, 7, 9) && within(sum, 14, 16)
	}},
	{"augmented", func(a, b, sum int) bool {
		return within(a, 10, 11) && within(b, 10, 11) && within(sum, 20, 22)
	}},
	{"neutral", func(a, b, sum int) bool {
		return (a == 9 || b == 9) && within(sum, 17, 20)
	}},
	{"sus2", func(a, b, sum int) bool {
		return within(a, 4, 6) && within(sum, 17, 20)
	}},
	{"sus4", func(a, b, sum int) bool {
		return within(a, 12, 14) && within(b, 4, 6) && within(sum, 17, 20)
	}},
	{"quartal", func(a, b, sum int) bool {
		return within(a, 12, 14) && within(b, 12, 14)
	}},
	{"secundal", func(a, b, sum int) bool {
		return within(a, 1, 6) && within(b, 1, 6)
	}},
}

func classifyTriad(a, b int) string {
	sum := a + b
	for _, rule := range triadRules {
		if rule.match(a, b, sum) {
			return rule.name
		}
	}
	return structuralSummary([]int{a, b})
}

// extensionToken names the interval stack above the triad by the total
// distance from the chord root. Empty means unrecognized.
func extensionToken(totalFromRoot int) string {
	switch {
	case within(totalFromRoot, 22, 24):
		return "sixth"
	case within(totalFromRoot, 25, 26):
		return "seventh"
	case within(totalFromRoot, 27, 28):
		return "major seventh"
	case within(totalFromRoot, 33, 38):
		return "add9"
	case within(totalFromRoot, 39, 45):
		return "add11"
	default:
		return ""
	}
}

// classifyExtended classifies the leading triad and then each additional
// interval on top, composing labels like "major seventh" or "minor add9".
func classifyExtended(intervals []int) string {
	base := classifyTriad(intervals[0], intervals[1])
	if strings.HasPrefix(base, "mixed") {
		return structuralSummary(intervals)
	}

	total := intervals[0] + intervals[1]
	var tokens []string
	for _, iv := range intervals[2:] {
		total += iv
		token := extensionToken(total)
		if token == "" {
			return structuralSummary(intervals)
		}
		tokens = append(tokens, token)
	}

	label := base
	for _, token := range tokens {
		label = composeLabel(label, token)
	}
	return label
}

// composeLabel merges a quality label with one extension token, handling
// the conventional special cases.
func composeLabel(base, token string) string {
	switch {
	case base == "major" && token == "major seventh":
		return "major seventh"
	case base == "major" && token == "seventh":
		return "dominant seventh"
	case base == "minor" && token == "major seventh":
		return "minor-major seventh"
	default:
		return base + " " + token
	}
}

// structuralSummary describes an unrecognized stack by the dyad classes it
// contains, e.g. "mixed (thirds, fifths)".
func structuralSummary(intervals []int) string {
	seen := make(map[string]bool)
	var classes []string
	for _, iv := range intervals {
		class := dyadClass(iv) + "s"
		if !seen[class] {
			seen[class] = true
			classes = append(classes, class)
		}
	}
	return fmt.Sprintf("mixed (%s)", strings.Join(classes, ", "))
}
