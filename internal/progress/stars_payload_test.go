package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkobayashi/kanjidrill/internal/payload"
)

func TestExportImportStarsRoundTrip(t *testing.T) {
	prefs := newMemPrefs()
	tr := loadTracker(t, prefs)
	tr.ToggleStar("k2")
	tr.ToggleStar("k1")

	exported := tr.ExportStars()
	assert.Equal(t, 1, exported.Version)
	assert.Equal(t, []string{"k1", "k2"}, exported.Stars)

	raw, err := json.Marshal(exported)
	require.NoError(t, err)

	other := loadTracker(t, newMemPrefs())
	require.NoError(t, other.ImportStars(raw))
	assert.Equal(t, []string{"k1", "k2"}, other.Starred())
}

func TestImportStarsReplacesWholesale(t *testing.T) {
	prefs := newMemPrefs()
	tr := loadTracker(t, prefs)
	tr.ToggleStar("old")

	require.NoError(t, tr.ImportStars([]byte(`{"version":1,"stars":["new1","new2"]}`)))
	assert.False(t, tr.IsStarred("old"))
	assert.Equal(t, []string{"new1", "new2"}, tr.Starred())

	// The replacement persisted.
	reloaded := loadTracker(t, prefs)
	assert.Equal(t, []string{"new1", "new2"}, reloaded.Starred())
}

func TestImportStarsRejectsInvalid(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	tr.ToggleStar("keep")

	cases := [][]byte{
		[]byte(`{"version":1}`),
		[]byte(`{"stars":[1,2]}`),
		[]byte(`"stars"`),
		[]byte(`{broken`),
	}
	for _, raw := range cases {
		err := tr.ImportStars(raw)
		assert.ErrorIs(t, err, payload.ErrInvalid, "payload %s", raw)
	}

	// The existing set survives every rejected import.
	assert.Equal(t, []string{"keep"}, tr.Starred())
}

func TestImportStarsEmptySet(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	tr.ToggleStar("k1")

	require.NoError(t, tr.ImportStars([]byte(`{"version":1,"stars":[]}`)))
	assert.Equal(t, 0, tr.StarredCount())
}
