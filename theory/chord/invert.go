package chord

import "github.com/halewijn/edo31/theory/tuning"

// Invert rotates the first k notes of a chord to the end, each raised by
// one octave. The input is never mutated; a fresh note sequence is
// returned.
func Invert(notes []int, k int) []int {
	n := len(notes)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n

	out := make([]int, 0, n)
	out = append(out, notes[k:]...)
	for _, note := range notes[:k] {
		out = append(out, note+tuning.StepsPerOctave)
	}
	return out
}

// AutoInvert picks the rotation whose resulting bass note is lowest,
// preferring the smallest rotation index on ties, and returns the inverted
// notes along with the chosen index. It is computed independently of any
// manually requested inversion.
func AutoInvert(notes []int) ([]int, int) {
	if len(notes) == 0 {
		return nil, 0
	}

	bestK := 0
	for k := 1; k < len(notes); k++ {
		if notes[k] < notes[bestK] {
			bestK = k
		}
	}
	return Invert(notes, bestK), bestK
}

// FoldToOctave maps notes above 31 back into a single displayed octave via
// ((n-1) mod 31)+1. The folding is cosmetic voicing only; classification
// keeps using the unfolded interval content.
func FoldToOctave(notes []int) []int {
	out := make([]int, len(notes))
	for i, n := range notes {
		if n > tuning.StepsPerOctave {
			out[i] = ((n - 1) % tuning.StepsPerOctave) + 1
		} else {
			out[i] = n
		}
	}
	return out
}
