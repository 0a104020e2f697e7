package layout

import (
	"fmt"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/hexcolor"
	"github.com/1F47E/go-adofai-art/internal/level"
)

// PixelArt lays out a single image as one floor per pixel.
//
// Floor i carries pixel i-1, starting from floor 2: the first pixel's color
// never becomes an event, it goes into settings.trackColor instead, which is
// what colors floor 1's track by default. Floors whose own pixel sits in the
// last column get a PositionTrack that folds the chain to the next row. The
// last floor is skipped there, it has no next row to fold into.
func PixelArt(f *frame.Frame, yOffset float64, lay config.Layout) (*Plan, error) {
	if yOffset <= 0 {
		return nil, fmt.Errorf("y offset must be positive, got %v", yOffset)
	}
	total := f.Pixels()
	if total < 1 {
		return nil, fmt.Errorf("image has no pixels")
	}

	actions := make([]level.Action, 0, total+f.Height)
	for i := 2; i <= total; i++ {
		pixel := i - 1
		actions = append(actions, level.ColorTrack{
			Floor:      i,
			TrackColor: hexcolor.Encode(f.At(pixel)),
		})
		if pixel%f.Width == f.Width-1 && i < total {
			actions = append(actions, level.PositionTrack{
				Floor: i,
				DX:    float64(-f.Width),
				DY:    -yOffset,
			})
		}
	}
	sortActions(actions)

	return &Plan{
		Floors:  total,
		Actions: actions,
		Overrides: level.Overrides{
			Desc:       fmt.Sprintf("PixelArt %d×%d", f.Width, f.Height),
			Tags:       "pixelart",
			TrackColor: hexcolor.Encode(f.At(0)),
		},
	}, nil
}
