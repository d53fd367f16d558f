package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Interval statistics shared by the consonance rater and the scale
// namer/categorizer, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the sample variance of a slice using gonum
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// Min returns the minimum value of a non-empty slice, 0 otherwise
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Min(data)
}

// Max returns the maximum value of a non-empty slice, 0 otherwise
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// IntsToFloats converts an integer slice for use with the float helpers
func IntsToFloats(data []int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Counts tallies occurrences of each value in an integer slice
func Counts(data []int) map[int]int {
	counts := make(map[int]int)
	for _, v := range data {
		counts[v]++
	}
	return counts
}

// DistinctCount returns the number of distinct values in an integer slice
func DistinctCount(data []int) int {
	return len(Counts(data))
}

// IsPalindrome reports whether an integer slice reads the same in both
// directions
func IsPalindrome(data []int) bool {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		if data[i] != data[j] {
			return false
		}
	}
	return true
}
