package tuning

import "math"

// 31-EDO divides the octave into 31 equal steps of ~38.71 cents. All scale
// and chord math in the engine is expressed in these steps.
const (
	StepsPerOctave = 31
	CentsPerOctave = 1200.0
	CentsPerStep   = CentsPerOctave / StepsPerOctave

	// DefaultReferenceHz is concert A used by StepToFrequency when callers
	// have no other anchor.
	DefaultReferenceHz = 440.0
)

// StepToCents converts a step count to cents.
func StepToCents(step float64) float64 {
	return step * CentsPerStep
}

// CentsToStep converts cents to a (possibly fractional) step count.
func CentsToStep(cents float64) float64 {
	return cents / CentsPerStep
}

// StepToFrequency returns the equal-tempered frequency of a step relative to
// a reference step pinned at referenceHz.
func StepToFrequency(step, referenceStep int, referenceHz float64) float64 {
	return referenceHz * math.Pow(2, float64(step-referenceStep)*CentsPerStep/CentsPerOctave)
}

// IntervalClass reduces a step interval to its class in [0, 31). Negative
// inputs are treated as descending intervals and reduced the same way.
func IntervalClass(steps int) int {
	c := steps % StepsPerOctave
	if c < 0 {
		c += StepsPerOctave
	}
	return c
}
