package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsTemplate(t *testing.T) {
	fields := SettingsFields(Overrides{})

	require.Len(t, fields, 80)
	assert.Equal(t, Field{"version", 15}, fields[0])
	assert.Equal(t, Field{"disableV15Features", false}, fields[79])

	byKey := map[string]any{}
	for _, f := range fields {
		_, dup := byKey[f.Key]
		require.False(t, dup, "duplicate settings key %s", f.Key)
		byKey[f.Key] = f.Value
	}

	// editor defaults when nothing is overridden
	assert.Equal(t, 100, byKey["bpm"])
	assert.Equal(t, 100, byKey["zoom"])
	assert.Equal(t, "000000", byKey["trackColor"])
	assert.Equal(t, "Player", byKey["relativeTo"])
	assert.Equal(t, []float64{0, 0}, byKey["position"])
	assert.Equal(t, "", byKey["levelDesc"])
}

func TestSettingsOverrides(t *testing.T) {
	fields := SettingsFields(Overrides{
		Desc:       "Video",
		Tags:       "video",
		BPM:        60,
		Zoom:       130,
		TrackColor: "ff00ffff",
		Position:   []float64{2, -1},
		RelativeTo: "Global",
	})

	byKey := map[string]any{}
	for _, f := range fields {
		byKey[f.Key] = f.Value
	}
	assert.Equal(t, "Video", byKey["levelDesc"])
	assert.Equal(t, "video", byKey["levelTags"])
	assert.Equal(t, 60, byKey["bpm"])
	assert.Equal(t, 130, byKey["zoom"])
	assert.Equal(t, "ff00ffff", byKey["trackColor"])
	assert.Equal(t, []float64{2, -1}, byKey["position"])
	assert.Equal(t, "Global", byKey["relativeTo"])
}
