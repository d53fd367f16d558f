package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestJustRatioAnchors(t *testing.T) {
	cases := []struct {
		steps        int
		ratio        string
		maxDeviation float64
	}{
		{0, "1:1", 0.01},
		{10, "5:4", 1.0},   // 31-EDO major third is nearly pure
		{13, "4:3", 5.5},
		{18, "3:2", 5.5},
		{31, "2:1", 0.01},
	}

	for _, c := range cases {
		match := ClosestJustRatio(c.steps)
		assert.Equal(t, c.ratio, match.Ratio, "steps=%d", c.steps)
		assert.LessOrEqual(t, match.Deviation, c.maxDeviation, "steps=%d", c.steps)
	}
}

func TestClosestJustRatioSecondary(t *testing.T) {
	// The neutral third (9 steps, ~348.4 cents) is poorly explained by the
	// primary table but sits almost exactly on 11:9.
	match := ClosestJustRatio(9)
	require.NotNil(t, match.Secondary)
	assert.Equal(t, "11:9", match.Secondary.Ratio)
	assert.Less(t, match.Secondary.Deviation, match.Deviation)
}

func TestClosestJustRatioNoSecondaryWhenPrimaryWins(t *testing.T) {
	// The major third is already the closest entry in either table.
	match := ClosestJustRatio(10)
	assert.Nil(t, match.Secondary)
}

func TestClosestJustRatioExclusion(t *testing.T) {
	match := ClosestJustRatio(18, "3:2")
	assert.NotEqual(t, "3:2", match.Ratio)

	// Excluding the winner surfaces the next-best explanation but still
	// returns something.
	assert.NotEmpty(t, match.Ratio)
}
