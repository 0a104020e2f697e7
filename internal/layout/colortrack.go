package layout

import (
	"fmt"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/hexcolor"
	"github.com/1F47E/go-adofai-art/internal/level"
)

// ColorTrack is the one-floor-per-pixel video strategy.
//
// The chain has two regions. Floors 1..N are directors, one per frame: each
// carries a MoveCamera that centers the view on its frame's raster. Floors
// N+1 onward carry the pixels of all frames, frame-major then row-major.
// PositionTrack events bridge the director region into the first frame,
// jump between frames, and wrap rows inside a frame. One empty floor is
// appended so the last pixel's outgoing link has somewhere to go.
type ColorTrack struct{}

func (ColorTrack) Name() string { return "colortrack" }

func (ColorTrack) Plan(frames []*frame.Frame, fps float64, zoom int, lay config.Layout) (*Plan, error) {
	w, h, err := validate(frames, fps, zoom)
	if err != nil {
		return nil, err
	}
	n := len(frames)
	perFrame := w * h
	floors := n + n*perFrame + 1

	actions := make([]level.Action, 0, n+n*perFrame+n*h)

	// director region
	for k := 0; k < n; k++ {
		frameY := lay.FrameStartY - float64(k)*(float64(h)*lay.FloorHeight+lay.FrameGap)
		actions = append(actions, level.MoveCamera{
			Floor: k + 1,
			X:     float64(w) / 2,
			Y:     frameY - float64(h)*lay.FloorHeight/2,
			Zoom:  zoom,
		})
	}

	// pixel region
	floor := n + 1
	for k, f := range frames {
		for p := 0; p < perFrame; p++ {
			actions = append(actions, level.ColorTrack{
				Floor:      floor,
				TrackColor: hexcolor.Encode(f.At(p)),
			})
			switch {
			case k == 0 && p == 0:
				// bridge out of the director region
				actions = append(actions, level.PositionTrack{
					Floor: floor,
					DX:    float64(-(n + 1)),
					DY:    lay.FrameStartY,
				})
			case p == 0:
				// first pixel of a later frame: row wrap plus frame gap
				actions = append(actions, level.PositionTrack{
					Floor: floor,
					DX:    float64(-w),
					DY:    -(lay.RowOffset + lay.FrameGap),
				})
			case p%w == 0:
				actions = append(actions, level.PositionTrack{
					Floor: floor,
					DX:    float64(-w),
					DY:    -lay.RowOffset,
				})
			}
			floor++
		}
	}
	sortActions(actions)

	return &Plan{
		Floors:  floors,
		Actions: actions,
		Overrides: level.Overrides{
			Desc:       fmt.Sprintf("Video %d×%d %sFPS %dframes", w, h, trimFloat(fps), n),
			Tags:       "video",
			BPM:        int(fps * 60),
			Zoom:       zoom,
			TrackColor: "000000",
		},
	}, nil
}
