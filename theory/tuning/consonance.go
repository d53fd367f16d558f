package tuning

import (
	"github.com/halewijn/edo31/theory/stats"
)

// ConsonanceResult holds the aggregate consonance of a note set.
type ConsonanceResult struct {
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	PairCount   int     `json:"pair_count"`
}

// consonanceTable rates each of the 32 interval classes on a 0-10 scale.
// The values are calibrated by ear and by convention (unison/octave 10,
// perfect fifth 9, narrow seconds near the bottom), not computed.
var consonanceTable = map[int]float64{
	0:  10, // unison
	1:  1,  // diesis
	2:  2,
	3:  3,  // minor second region
	4:  4,  // neutral second
	5:  6,  // major second
	6:  4,  // supermajor second
	7:  5,  // subminor third
	8:  7,  // minor third
	9:  6,  // neutral third
	10: 8,  // major third
	11: 6,  // supermajor third
	12: 5,
	13: 8, // perfect fourth
	14: 5,
	15: 4, // tritone region
	16: 4,
	17: 5,
	18: 9, // perfect fifth
	19: 5,
	20: 6, // minor sixth
	21: 7,
	22: 6, // neutral sixth
	23: 7, // major sixth
	24: 6,
	25: 7, // harmonic seventh
	26: 6, // minor seventh
	27: 5,
	28: 6, // major seventh region
	29: 3,
	30: 2,
	31: 10, // octave
}

// consonanceBands maps the 0-10 rating range onto ten descriptive buckets,
// lowest band first.
var consonanceBands = []string{
	"Extremely Dissonant",
	"Very Dissonant",
	"Dissonant",
	"Moderately Dissonant",
	"Slightly Dissonant",
	"Slightly Consonant",
	"Moderately Consonant",
	"Consonant",
	"Very Consonant",
	"Extremely Consonant",
}

// RatingForInterval rates a step interval 0-10, reducing it to its interval
// class first. Unknown classes rate 0.
func RatingForInterval(steps int) float64 {
	if steps == StepsPerOctave {
		return consonanceTable[StepsPerOctave]
	}
	return consonanceTable[IntervalClass(steps)]
}

// DescribeRating buckets a 0-10 rating into one of ten descriptions.
func DescribeRating(rating float64) string {
	idx := int(rating)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(consonanceBands) {
		idx = len(consonanceBands) - 1
	}
	return consonanceBands[idx]
}

// OverallConsonance rates every unordered pair of distinct notes and
// averages the pairwise ratings. Fewer than two notes rates 0 with an
// "N/A" description.
func OverallConsonance(notes []int) ConsonanceResult {
	if len(notes) < 2 {
		return ConsonanceResult{Rating: 0, Description: "N/A"}
	}

	var ratings []float64
	for i := 0; i < len(notes); i++ {
		for j := i + 1; j < len(notes); j++ {
			diff := notes[i] - notes[j]
			if diff < 0 {
				diff = -diff
			}
			ratings = append(ratings, RatingForInterval(diff))
		}
	}

	rating := stats.Mean(ratings)
	return ConsonanceResult{
		Rating:      rating,
		Description: DescribeRating(rating),
		PairCount:   len(ratings),
	}
}
