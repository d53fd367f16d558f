package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewijn/edo31/theory/scale"
)

func TestCategorizeMajorScale(t *testing.T) {
	s := scale.New("Major", []int{0, 5, 10, 13, 18, 23, 28, 31})
	categories := Categorize(s)

	assert.ElementsMatch(t, []string{"harmonic-triad", "pure-fifth"}, categories["acoustic"])
	assert.Equal(t, []string{"western"}, categories["cultural"])
	assert.Contains(t, categories["perceptual"], "bright")
	assert.NotContains(t, categories["perceptual"], "dark")
	assert.NotContains(t, categories["perceptual"], "tense")
	assert.ElementsMatch(t, []string{"mos", "prime-cardinality", "near-even"}, categories["mathematical"])
	assert.Equal(t, []string{"diatonic"}, categories["genera"])
}

func TestCategorizeWideStepHeptatonic(t *testing.T) {
	s := scale.FromIntervals("", []int{6, 6, 5, 5, 5, 2, 2})
	categories := Categorize(s)

	assert.Contains(t, categories["acoustic"], "undecimal")
	assert.Contains(t, categories["cultural"], "raga-like")
	assert.NotContains(t, categories["cultural"], "western")
	assert.ElementsMatch(t, []string{"chromatic", "mixed"}, categories["genera"])
	assert.Contains(t, categories["mathematical"], "prime-cardinality")
	assert.NotContains(t, categories["mathematical"], "mos")
}

func TestCategorizePentatonicStack(t *testing.T) {
	s := scale.New("", []int{0, 6, 12, 19, 25, 31})
	require.Equal(t, []int{6, 6, 7, 6, 6}, s.Intervals)

	categories := Categorize(s)
	assert.Contains(t, categories["cultural"], "gamelan-like")
	assert.Contains(t, categories["acoustic"], "septimal")
	assert.ElementsMatch(t, []string{"mos", "symmetric", "prime-cardinality", "near-even"}, categories["mathematical"])
}

func TestCategorizeOmitsEmptyAxes(t *testing.T) {
	s := scale.New("", []int{0, 5, 10, 13, 18, 23, 28, 31})
	categories := Categorize(s)
	for name, tags := range categories {
		assert.NotEmpty(t, tags, "axis %s present but empty", name)
	}
}
