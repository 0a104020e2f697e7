package level

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLiterals(t *testing.T) {
	testCases := []struct {
		name string
		in   Action
		want string
	}{
		{
			name: "color track",
			in:   ColorTrack{Floor: 5, TrackColor: "aabbccdd"},
			want: `{ "floor": 5, "eventType": "ColorTrack", "trackColorType": "Single", "trackColor": "aabbccdd", "secondaryTrackColor": "ffffff", "trackColorAnimDuration": 2, "trackColorPulse": "None", "trackPulseLength": 10, "trackStyle": "Minimal", "trackTexture": "", "trackTextureScale": 1, "trackGlowIntensity": 100, "justThisTile": false}`,
		},
		{
			name: "position track",
			in:   PositionTrack{Floor: 3, DX: -2, DY: -0.9},
			want: `{ "floor": 3, "eventType": "PositionTrack", "positionOffset": [-2, -0.9], "relativeTo": [0, "ThisTile"], "justThisTile": false, "editorOnly": false}`,
		},
		{
			name: "move camera",
			in:   MoveCamera{Floor: 1, X: 0.5, Y: -10.45, Zoom: 100},
			want: `{ "floor": 1, "eventType": "MoveCamera", "duration": 0, "relativeTo": "Global", "position": [0.5, -10.45], "zoom": 100, "angleOffset": 0, "ease": "Linear", "dontDisable": false, "minVfxOnly": false, "eventTag": ""}`,
		},
		{
			name: "recolor track",
			in:   RecolorTrack{Tile: 4, TrackColor: "00ff00ff", AngleOffset: 36},
			want: `{ "floor": 1, "eventType": "RecolorTrack", "startTile": [4, "Start"], "endTile": [4, "Start"], "gapLength": 0, "duration": 0, "trackColorType": "Single", "trackColor": "00ff00ff", "secondaryTrackColor": "ffffff", "trackColorAnimDuration": 2, "trackColorPulse": "None", "trackPulseLength": 10, "trackStyle": "Basic", "trackGlowIntensity": 100, "angleOffset": 36, "ease": "Linear", "eventTag": ""}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Literal(tc.in))
		})
	}
}

func TestDocumentWrite(t *testing.T) {
	doc := New(3, Overrides{Desc: "PixelArt 3×1", Tags: "pixelart", TrackColor: "ff0000ff"},
		[]Action{
			ColorTrack{Floor: 2, TrackColor: "00ff00ff"},
			ColorTrack{Floor: 3, TrackColor: "0000ffff"},
		})

	out, err := doc.Bytes()
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, "{\n\t\"angleData\": [0, 0], \n\t\"settings\":\n\t{\n\t\t\"version\": 15,\n"))
	assert.Contains(t, s, "\t\t\"levelDesc\": \"PixelArt 3×1\",\n")
	assert.Contains(t, s, "\t\t\"trackColor\": \"ff0000ff\",\n")
	assert.Contains(t, s, "\t\t\"disableV15Features\": false\n\t},\n")

	actions := "\t\"actions\":\n\t[\n" +
		"\t\t" + Literal(ColorTrack{Floor: 2, TrackColor: "00ff00ff"}) + ",\n" +
		"\t\t" + Literal(ColorTrack{Floor: 3, TrackColor: "0000ffff"}) + "\n" +
		"\t],\n"
	assert.Contains(t, s, actions)

	assert.True(t, strings.HasSuffix(s, "\t],\n\t\"decorations\":\n\t[\n\t]\n}"))
	// the format has no trailing newline
	assert.False(t, strings.HasSuffix(s, "\n"))
}

func TestDocumentWriteEmptyActions(t *testing.T) {
	doc := New(1, Overrides{}, nil)

	out, err := doc.Bytes()
	require.NoError(t, err)
	s := string(out)

	// single floor means zero links
	assert.True(t, strings.HasPrefix(s, "{\n\t\"angleData\": [], \n"))
	assert.Contains(t, s, "\t\"actions\":\n\t[\n\t],\n")
}

func TestDocumentWriteDeterministic(t *testing.T) {
	doc := New(4, Overrides{Desc: "x"}, []Action{
		ColorTrack{Floor: 2, TrackColor: "11223344"},
		PositionTrack{Floor: 2, DX: -2, DY: -0.9},
		ColorTrack{Floor: 3, TrackColor: "55667788"},
	})

	a, err := doc.Bytes()
	require.NoError(t, err)
	b, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
