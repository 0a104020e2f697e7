package layout

import (
	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/hexcolor"
	"github.com/1F47E/go-adofai-art/internal/level"
)

// Recolor is the shared-track video strategy.
//
// The chain only has one frame's worth of floors. Every frame is a batch of
// RecolorTrack events anchored to floor 1, repainting each tile at an angle
// offset of frameIndex * d, where d = 3 * BPM / fps and BPM is fixed at 60.
// Floor count stays O(W*H) no matter how many frames come in.
type Recolor struct{}

func (Recolor) Name() string { return "recolor" }

func (Recolor) Plan(frames []*frame.Frame, fps float64, zoom int, lay config.Layout) (*Plan, error) {
	w, h, err := validate(frames, fps, zoom)
	if err != nil {
		return nil, err
	}
	n := len(frames)
	perFrame := w * h
	d := 3 * 60 / fps

	actions := make([]level.Action, 0, n*perFrame+h)

	// all recolors sit on floor 1, frame-major then pixel-major; the stable
	// sort keeps that order, and it is what encodes playback time
	for k, f := range frames {
		offset := float64(k) * d
		for p := 0; p < perFrame; p++ {
			actions = append(actions, level.RecolorTrack{
				Tile:        p + 1,
				TrackColor:  hexcolor.Encode(f.At(p)),
				AngleOffset: offset,
			})
		}
	}

	// row wraps on the floors whose pixel ends a row; the final floor
	// stays bare
	for t := 2; t <= perFrame-1; t++ {
		if (t-1)%w == w-1 {
			actions = append(actions, level.PositionTrack{
				Floor: t,
				DX:    float64(-w),
				DY:    -lay.RowOffset,
			})
		}
	}
	sortActions(actions)

	return &Plan{
		Floors:  perFrame,
		Actions: actions,
		Overrides: level.Overrides{
			Desc:       "Video",
			Tags:       "video",
			BPM:        60,
			Zoom:       zoom,
			TrackColor: "000000",
			Position:   []float64{float64(w) / 2, -float64(h) / 2},
			RelativeTo: "Global",
		},
	}, nil
}
