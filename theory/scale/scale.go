package scale

import (
	"fmt"

	"github.com/halewijn/edo31/theory/tuning"
)

// Alteration records a single degree edit applied while deriving a scale
// from its parent, as a log entry rather than a mutation.
type Alteration struct {
	Degree int `json:"degree"`
	Delta  int `json:"delta"`
}

// Scale is a published scale record. Degrees are absolute step positions
// within one octave span, strictly increasing from 0 to 31 inclusive;
// Intervals are the consecutive differences and always sum to 31.
type Scale struct {
	Name        string              `json:"name"`
	Degrees     []int               `json:"degrees"`
	Intervals   []int               `json:"intervals"`
	Alterations []Alteration        `json:"alterations,omitempty"`
	Categories  map[string][]string `json:"categories,omitempty"`
	Properties  map[string]float64  `json:"properties,omitempty"`
	Description string              `json:"description,omitempty"`
}

// New builds a scale from a degree list, deriving its intervals. The input
// slice is copied; the caller keeps ownership.
func New(name string, degrees []int) Scale {
	d := make([]int, len(degrees))
	copy(d, degrees)
	return Scale{
		Name:      name,
		Degrees:   d,
		Intervals: IntervalsFromDegrees(d),
	}
}

// FromIntervals builds a scale from an interval sequence, deriving absolute
// degrees starting at 0.
func FromIntervals(name string, intervals []int) Scale {
	return New(name, DegreesFromIntervals(intervals))
}

// IntervalsFromDegrees derives the consecutive step differences of a degree
// list.
func IntervalsFromDegrees(degrees []int) []int {
	if len(degrees) < 2 {
		return nil
	}
	intervals := make([]int, len(degrees)-1)
	for i := 0; i < len(degrees)-1; i++ {
		intervals[i] = degrees[i+1] - degrees[i]
	}
	return intervals
}

// DegreesFromIntervals accumulates an interval sequence into absolute
// degrees anchored at 0.
func DegreesFromIntervals(intervals []int) []int {
	degrees := make([]int, len(intervals)+1)
	for i, iv := range intervals {
		degrees[i+1] = degrees[i] + iv
	}
	return degrees
}

// Validate checks the structural invariants every published scale must
// satisfy: degrees anchored at 0 and 31, strictly increasing, intervals
// consistent with degrees and summing to a full octave.
func (s Scale) Validate() error {
	if len(s.Degrees) < 2 {
		return fmt.Errorf("scale %q: need at least 2 degrees, got %d", s.Name, len(s.Degrees))
	}
	if s.Degrees[0] != 0 {
		return fmt.Errorf("scale %q: first degree is %d, want 0", s.Name, s.Degrees[0])
	}
	if s.Degrees[len(s.Degrees)-1] != tuning.StepsPerOctave {
		return fmt.Errorf("scale %q: last degree is %d, want %d",
			s.Name, s.Degrees[len(s.Degrees)-1], tuning.StepsPerOctave)
	}
	for i := 1; i < len(s.Degrees); i++ {
		if s.Degrees[i] <= s.Degrees[i-1] {
			return fmt.Errorf("scale %q: degrees not strictly increasing at index %d", s.Name, i)
		}
	}
	if len(s.Intervals) != len(s.Degrees)-1 {
		return fmt.Errorf("scale %q: %d intervals for %d degrees",
			s.Name, len(s.Intervals), len(s.Degrees))
	}
	sum := 0
	for i, iv := range s.Intervals {
		if iv != s.Degrees[i+1]-s.Degrees[i] {
			return fmt.Errorf("scale %q: interval %d inconsistent with degrees", s.Name, i)
		}
		sum += iv
	}
	if sum != tuning.StepsPerOctave {
		return fmt.Errorf("scale %q: intervals sum to %d, want %d", s.Name, sum, tuning.StepsPerOctave)
	}
	return nil
}

// IntervalsInBounds reports whether every interval lies in [min, max].
func IntervalsInBounds(intervals []int, min, max int) bool {
	for _, iv := range intervals {
		if iv < min || iv > max {
			return false
		}
	}
	return true
}

// NoteCount returns the number of pitch degrees, excluding the terminal
// octave degree.
func (s Scale) NoteCount() int {
	if len(s.Degrees) == 0 {
		return 0
	}
	return len(s.Degrees) - 1
}

// IntervalKey is the canonical dedupe key for a scale: its interval tuple
// in order, not sorted, so distinct rotations stay distinct.
func (s Scale) IntervalKey() string {
	return IntervalKey(s.Intervals)
}

// IntervalKey formats an interval sequence as a canonical string key.
func IntervalKey(intervals []int) string {
	key := ""
	for i, iv := range intervals {
		if i > 0 {
			key += "-"
		}
		key += fmt.Sprintf("%d", iv)
	}
	return key
}

// Mode returns the k-th rotational mode: the interval sequence rotated left
// by k with degrees rebuilt from 0. Mode(0) is a copy of the original.
func (s Scale) Mode(k int) Scale {
	n := len(s.Intervals)
	if n == 0 {
		return s
	}
	k = ((k % n) + n) % n
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		rotated[i] = s.Intervals[(i+k)%n]
	}
	m := FromIntervals(s.Name, rotated)
	m.Properties = map[string]float64{"mode": float64(k)}
	return m
}

// Modes expands the scale into all of its rotational modes, the original
// first.
func (s Scale) Modes() []Scale {
	modes := make([]Scale, 0, len(s.Intervals))
	for k := 0; k < len(s.Intervals); k++ {
		modes = append(modes, s.Mode(k))
	}
	return modes
}

// WithAlteration returns a new scale derived by adding delta to one degree,
// with intervals rebuilt and the edit appended to the alteration log. The
// receiver is never mutated. The result may be invalid; callers are
// expected to validate and drop.
func (s Scale) WithAlteration(degreeIndex, delta int) Scale {
	degrees := make([]int, len(s.Degrees))
	copy(degrees, s.Degrees)
	if degreeIndex >= 0 && degreeIndex < len(degrees) {
		degrees[degreeIndex] += delta
	}

	alterations := make([]Alteration, len(s.Alterations), len(s.Alterations)+1)
	copy(alterations, s.Alterations)
	alterations = append(alterations, Alteration{Degree: degreeIndex, Delta: delta})

	out := New(s.Name, degrees)
	out.Alterations = alterations
	out.Description = s.Description
	return out
}
