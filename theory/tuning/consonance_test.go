package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingForInterval(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(10.0, RatingForInterval(0))
	assert.Equal(10.0, RatingForInterval(31))
	assert.Equal(9.0, RatingForInterval(18))

	// Perfect fifth beats a narrow second under any sane table.
	assert.Greater(RatingForInterval(18), RatingForInterval(2))

	// Compound intervals reduce to their class.
	assert.Equal(RatingForInterval(18), RatingForInterval(18+31))
}

func TestOverallConsonanceDegenerate(t *testing.T) {
	assert := assert.New(t)

	empty := OverallConsonance(nil)
	assert.Equal(0.0, empty.Rating)
	assert.Equal("N/A", empty.Description)

	single := OverallConsonance([]int{12})
	assert.Equal(0.0, single.Rating)
	assert.Equal("N/A", single.Description)
}

func TestOverallConsonancePairs(t *testing.T) {
	assert := assert.New(t)

	// Root and fifth: one pair, rated 9.
	fifth := OverallConsonance([]int{0, 18})
	assert.Equal(1, fifth.PairCount)
	assert.InDelta(9.0, fifth.Rating, 1e-9)
	assert.Equal("Extremely Consonant", fifth.Description)

	// Major triad 0-10-18: pairs are 10, 18, 8.
	triad := OverallConsonance([]int{0, 10, 18})
	assert.Equal(3, triad.PairCount)
	assert.InDelta((8.0+9.0+7.0)/3.0, triad.Rating, 1e-9)

	// Note order must not matter.
	reversed := OverallConsonance([]int{18, 10, 0})
	assert.InDelta(triad.Rating, reversed.Rating, 1e-9)
}

func TestDescribeRatingBands(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Extremely Dissonant", DescribeRating(0.5))
	assert.Equal("Slightly Consonant", DescribeRating(5.2))
	assert.Equal("Extremely Consonant", DescribeRating(10))
}
