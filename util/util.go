package util

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns the keys of a map in ascending order, for
// deterministic iteration.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Sum totals an integer slice.
func Sum[A constraints.Integer](nums []A) int {
	var total int
	for _, v := range nums {
		total += int(v)
	}
	return total
}

// Min returns the smaller of two values.
func Min[A constraints.Ordered](a, b A) A {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of two values.
func Max[A constraints.Ordered](a, b A) A {
	if b > a {
		return b
	}
	return a
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}
