package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewijn/edo31/theory/stats"
)

func TestStackGenerator(t *testing.T) {
	degrees, ok := stackGenerator(18, 7)
	require.True(t, ok)
	assert.Equal(t, []int{0, 5, 10, 15, 18, 23, 28, 31}, degrees)

	degrees, ok = stackGenerator(13, 5)
	require.True(t, ok)
	assert.Equal(t, []int{0, 8, 13, 21, 26, 31}, degrees)
}

func TestMOSGenerateTwoStepSizes(t *testing.T) {
	scales := NewMOSGenerator(DefaultParams()).Generate()
	require.NotEmpty(t, scales)

	for _, s := range scales {
		assert.NoError(t, s.Validate())
		counts := stats.Counts(s.Intervals)
		assert.Len(t, counts, 2, "intervals %v", s.Intervals)

		large := int(s.Properties["large_step"])
		small := int(s.Properties["small_step"])
		assert.Greater(t, large, small)
		assert.Equal(t, float64(counts[large]), s.Properties["large_count"])
		assert.Equal(t, float64(counts[small]), s.Properties["small_count"])
		assert.Contains(t, s.Properties, "generator")
	}
}

func TestMOSGenerateContainsLydianStack(t *testing.T) {
	scales := NewMOSGenerator(DefaultParams()).Generate()

	keys := map[string]bool{}
	for _, s := range scales {
		assert.False(t, keys[s.IntervalKey()], "duplicate pattern %s", s.IntervalKey())
		keys[s.IntervalKey()] = true
	}

	// The fifth-sized generator stacked to seven notes is the classic
	// diatonic stack.
	assert.True(t, keys["5-5-5-3-5-5-3"])
	// The neutral-third pentatonic stack has steps outside the default
	// band but still exactly two sizes.
	assert.True(t, keys["8-5-8-5-5"])
}

func TestWellFormedGenerateBand(t *testing.T) {
	params := DefaultParams()
	scales := NewWellFormedGenerator(params).Generate()
	require.NotEmpty(t, scales)

	keys := map[string]bool{}
	for _, s := range scales {
		assert.NoError(t, s.Validate())
		for _, iv := range s.Intervals {
			assert.GreaterOrEqual(t, iv, params.MinStep)
			assert.LessOrEqual(t, iv, params.MaxStep)
		}
		assert.Contains(t, s.Properties, "generator")
		assert.False(t, keys[s.IntervalKey()], "duplicate pattern %s", s.IntervalKey())
		keys[s.IntervalKey()] = true
	}

	assert.True(t, keys["5-5-5-3-5-5-3"])
	// Wide-step stacks pass the MOS family but not the band.
	assert.False(t, keys["8-5-8-5-5"])
}
