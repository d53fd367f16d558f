package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewijn/edo31/theory/scale"
)

func majorScale() scale.Scale {
	return scale.New("Major", []int{0, 5, 10, 13, 18, 23, 28, 31})
}

func TestDeriveTraditionalTriads(t *testing.T) {
	assert := assert.New(t)
	triads := DeriveTraditional(majorScale(), false)
	require.Len(t, triads, 7)

	tonic := triads[0]
	assert.Equal([]int{0, 10, 18}, tonic.Notes)
	assert.Equal([]int{10, 8}, tonic.Intervals)
	assert.Equal("major", tonic.Type)
	assert.Equal("I", tonic.DegreeRoman)
	assert.Equal("tonic", tonic.Function)

	supertonic := triads[1]
	assert.Equal([]int{5, 13, 23}, supertonic.Notes)
	assert.Equal("minor", supertonic.Type)
	assert.Equal("ii", supertonic.DegreeRoman)

	dominant := triads[4]
	assert.Equal([]int{18, 28, 36}, dominant.Notes)
	assert.Equal("major", dominant.Type)
	assert.Equal("V", dominant.DegreeRoman)
	assert.Equal("dominant", dominant.Function)

	// vii spills into the upper octave and comes out diminished.
	leading := triads[6]
	assert.Equal([]int{28, 36, 44}, leading.Notes)
	assert.Equal("diminished", leading.Type)
	assert.Equal("vii", leading.DegreeRoman)
}

func TestDeriveTraditionalSevenths(t *testing.T) {
	sevenths := DeriveTraditional(majorScale(), true)
	require.Len(t, sevenths, 7)

	assert.Equal(t, []int{0, 10, 18, 28}, sevenths[0].Notes)
	assert.Equal(t, "major seventh", sevenths[0].Type)

	assert.Equal(t, []int{18, 28, 36, 44}, sevenths[4].Notes)
	assert.Equal(t, "dominant seventh", sevenths[4].Type)
}

func TestDeriveIntervallic(t *testing.T) {
	assert := assert.New(t)
	triads := DeriveIntervallic(majorScale(), false)
	require.Len(t, triads, 7)

	// On a diatonic scale the best-fit search lands on the stacked-third
	// chords.
	assert.Equal([]int{0, 10, 18}, triads[0].Notes)
	assert.Equal("major", triads[0].Type)

	for _, c := range triads {
		assert.GreaterOrEqual(len(c.Notes), 2, "chord on degree %d", c.Degree)
		assert.Len(c.Intervals, len(c.Notes)-1)
	}
}

func TestInvert(t *testing.T) {
	assert := assert.New(t)
	notes := []int{0, 10, 18}

	first := Invert(notes, 1)
	assert.Equal([]int{10, 18, 31}, first)

	second := Invert(notes, 2)
	assert.Equal([]int{18, 31, 41}, second)

	// The input is untouched.
	assert.Equal([]int{0, 10, 18}, notes)
}

func TestInvertRoundTrip(t *testing.T) {
	notes := []int{0, 10, 18, 28}
	n := len(notes)

	for k := 0; k < n; k++ {
		back := Invert(Invert(notes, k), n-k)
		folded := FoldToOctave(back)

		// Inverting by k then n-k transposes everything up one octave, so
		// the folded pitch classes must match the original multiset.
		want := make(map[int]int)
		for _, note := range FoldToOctave(notes) {
			want[note%31]++
		}
		got := make(map[int]int)
		for _, note := range folded {
			got[note%31]++
		}
		assert.Equal(t, want, got, "k=%d", k)
	}
}

func TestAutoInvert(t *testing.T) {
	// A voicing whose lowest pitch sits mid-sequence rotates so that pitch
	// comes to the bottom.
	notes := []int{25, 2, 9}
	inverted, k := AutoInvert(notes)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{2, 9, 56}, inverted)

	// An ascending voicing is already optimal and stays at rotation 0.
	_, k = AutoInvert([]int{0, 10, 18})
	assert.Equal(t, 0, k)
}

func TestFoldToOctave(t *testing.T) {
	assert.Equal(t, []int{0, 10, 18}, FoldToOctave([]int{0, 10, 18}))
	assert.Equal(t, []int{5, 13, 31}, FoldToOctave([]int{36, 44, 31}))
}
