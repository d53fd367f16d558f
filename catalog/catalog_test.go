package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/chord"
	"github.com/halewijn/edo31/theory/scale"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	os.Exit(m.Run())
}

func entryFor(name string, degrees []int) Entry {
	s := scale.New(name, degrees)
	return Entry{Scale: s, Chords: chord.DeriveAll(s)}
}

func TestCatalogWriteAndLoad(t *testing.T) {
	dir := t.TempDir()

	cat := NewCatalog(map[string]int{"min_step": 2})
	cat.AddFamily(Family{
		Name: "heptatonic",
		Scales: []Entry{
			entryFor("Major", []int{0, 5, 10, 13, 18, 23, 28, 31}),
			entryFor("Natural Minor", []int{0, 5, 8, 13, 18, 21, 26, 31}),
		},
	})
	cat.AddFamily(Family{
		Name: "cultural",
		Groups: map[string][]Entry{
			"maqam": {entryFor("Rast", []int{0, 5, 9, 13, 18, 23, 27, 31})},
			"raga":  {entryFor("Yaman", []int{0, 5, 10, 15, 18, 23, 28, 31})},
		},
	})

	require.NoError(t, cat.Write(dir))

	manifest, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, cat.Manifest.RunID, manifest.RunID)
	assert.Equal(t, 4, manifest.ScaleCount)
	assert.Equal(t, map[string]int{"heptatonic": 2, "cultural": 2}, manifest.FamilyCounts)

	flat, err := LoadFamilyFlat(filepath.Join(dir, "heptatonic.json"))
	require.NoError(t, err)
	require.Len(t, flat, 2)
	assert.Equal(t, "Major", flat[0].Name)
	assert.Equal(t, []int{0, 5, 10, 13, 18, 23, 28, 31}, flat[0].Degrees)
	assert.Equal(t, []int{5, 5, 3, 5, 5, 5, 3}, flat[0].Intervals)
	assert.Len(t, flat[0].Chords.Triads, 7)

	groups, err := LoadFamilyGrouped(filepath.Join(dir, "cultural.json"))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Len(t, groups["maqam"], 1)
	assert.Equal(t, "Rast", groups["maqam"][0].Name)
	assert.Equal(t, []int{5, 4, 4, 5, 5, 4, 4}, groups["maqam"][0].Intervals)
}

func TestFamilyCount(t *testing.T) {
	flat := Family{Name: "mos", Scales: make([]Entry, 3)}
	assert.Equal(t, 3, flat.Count())

	grouped := Family{Name: "hybrid", Groups: map[string][]Entry{
		"splice":      make([]Entry, 2),
		"alternating": make([]Entry, 5),
	}}
	assert.Equal(t, 7, grouped.Count())
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	assert.Error(t, err)
}
