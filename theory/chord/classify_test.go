package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetChordTypeDyads(t *testing.T) {
	cases := []struct {
		interval int
		want     string
	}{
		{3, "second"},
		{8, "third"},
		{13, "fourth"},
		{15, "tritone"},
		{18, "fifth"},
		{22, "sixth"},
		{26, "seventh"},
		{31, "octave"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GetChordType([]int{c.interval}), "interval=%d", c.interval)
	}
}

func TestGetChordTypeTriads(t *testing.T) {
	cases := []struct {
		name      string
		intervals []int
		want      string
	}{
		{"major third then minor third", []int{10, 8}, "major"},
		{"minor third then major third", []int{8, 10}, "minor"},
		{"stacked minor thirds", []int{8, 8}, "diminished"},
		{"stacked major thirds", []int{10, 10}, "augmented"},
		{"stacked neutral thirds", []int{9, 9}, "neutral"},
		{"neutral below minor", []int{9, 8}, "neutral"},
		{"second plus fourth", []int{5, 13}, "sus2"},
		{"fourth plus second", []int{13, 5}, "sus4"},
		{"stacked fourths", []int{13, 13}, "quartal"},
		{"stacked seconds", []int{3, 4}, "secundal"},
		{"microtonal major", []int{11, 7}, "major"},
		{"unrecognized stack", []int{15, 15}, "mixed (tritones)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, GetChordType(c.intervals))
		})
	}
}

func TestGetChordTypeOrderMatters(t *testing.T) {
	// [10,9] satisfies both the major rule and the neutral catch; major is
	// checked first and must win.
	assert.Equal(t, "major", GetChordType([]int{10, 9}))
}

func TestGetChordTypeSevenths(t *testing.T) {
	cases := []struct {
		name      string
		intervals []int
		want      string
	}{
		{"dominant seventh", []int{10, 8, 8}, "dominant seventh"},
		{"major seventh", []int{10, 8, 10}, "major seventh"},
		{"minor seventh", []int{8, 10, 7}, "minor seventh"},
		{"minor-major seventh", []int{8, 10, 10}, "minor-major seventh"},
		{"major sixth", []int{10, 8, 5}, "major sixth"},
		{"major add9", []int{10, 8, 17}, "major add9"},
		{"unrecognized extension", []int{10, 8, 12}, "mixed (thirds, fourths)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, GetChordType(c.intervals))
		})
	}
}

func TestGetChordTypeDegenerate(t *testing.T) {
	assert.Equal(t, "unison", GetChordType(nil))
	assert.Equal(t, "unison", GetChordType([]int{0}))
}
