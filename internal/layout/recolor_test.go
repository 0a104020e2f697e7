package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/level"
)

func TestRecolorAngleSpacing(t *testing.T) {
	frames := []*frame.Frame{testFrame(2, 2), testFrame(2, 2), testFrame(2, 2)}

	// fps 10 -> d = 3*60/10 = 18
	plan, err := Recolor{}.Plan(frames, 10, 100, config.DefaultLayout())
	require.NoError(t, err)

	// floor count does not grow with frames
	assert.Equal(t, 4, plan.Floors)

	var recolors []level.RecolorTrack
	var positions []level.PositionTrack
	for _, a := range plan.Actions {
		switch a := a.(type) {
		case level.RecolorTrack:
			recolors = append(recolors, a)
		case level.PositionTrack:
			positions = append(positions, a)
		}
	}

	require.Len(t, recolors, 3*4)
	for i, r := range recolors {
		frameIdx, pixelIdx := i/4, i%4
		assert.Equal(t, pixelIdx+1, r.Tile)
		assert.InDelta(t, float64(frameIdx)*18, r.AngleOffset, 1e-9)
	}

	// row wraps on row-last floors in [2, W*H-1]; for 2x2 that is floor 2 only
	require.Len(t, positions, 1)
	assert.Equal(t, level.PositionTrack{Floor: 2, DX: -2, DY: -0.9}, positions[0])
}

func TestRecolorDocumentOrder(t *testing.T) {
	frames := []*frame.Frame{testFrame(3, 2), testFrame(3, 2)}

	plan, err := Recolor{}.Plan(frames, 5, 100, config.DefaultLayout())
	require.NoError(t, err)

	// all recolor events come first, then the position events by floor
	n := len(frames) * 6
	require.Len(t, plan.Actions, n+1)
	for i := 0; i < n; i++ {
		assert.IsType(t, level.RecolorTrack{}, plan.Actions[i])
	}
	pos, ok := plan.Actions[n].(level.PositionTrack)
	require.True(t, ok)
	// floor 3 carries the row-last pixel; floor 6 matches too but is the
	// final floor and stays bare
	assert.Equal(t, 3, pos.Floor)
}

func TestRecolorSingleColumn(t *testing.T) {
	frames := []*frame.Frame{testFrame(1, 5)}

	plan, err := Recolor{}.Plan(frames, 5, 100, config.DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, 5, plan.Floors)

	var posFloors []int
	for _, a := range plan.Actions {
		if p, ok := a.(level.PositionTrack); ok {
			posFloors = append(posFloors, p.Floor)
		}
	}
	// width 1 makes every floor row-last; the final floor is still excluded
	assert.Equal(t, []int{2, 3, 4}, posFloors)
}

func TestRecolorOverrides(t *testing.T) {
	frames := []*frame.Frame{testFrame(4, 2)}

	plan, err := Recolor{}.Plan(frames, 10, 120, config.DefaultLayout())
	require.NoError(t, err)

	o := plan.Overrides
	assert.Equal(t, "Video", o.Desc)
	assert.Equal(t, "video", o.Tags)
	assert.Equal(t, 60, o.BPM)
	assert.Equal(t, 120, o.Zoom)
	assert.Equal(t, "000000", o.TrackColor)
	assert.Equal(t, []float64{2, -1}, o.Position)
	assert.Equal(t, "Global", o.RelativeTo)
}

func TestForName(t *testing.T) {
	s, err := ForName("colortrack")
	require.NoError(t, err)
	assert.Equal(t, "colortrack", s.Name())

	s, err = ForName("recolor")
	require.NoError(t, err)
	assert.Equal(t, "recolor", s.Name())

	_, err = ForName("bogus")
	assert.Error(t, err)
}
