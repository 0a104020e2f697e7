// Package layout is the tile-chain engine. It folds rectangular pixel grids
// into the level's 1-D floor chain and emits the event records that make the
// game render them back as a raster.
package layout

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/level"
)

// Plan is the engine's output: how many floors the level needs, the ordered
// action list, and the settings the generator wants overridden.
type Plan struct {
	Floors    int
	Actions   []level.Action
	Overrides level.Overrides
}

// Strategy turns a frame sequence into a plan. Two implementations exist:
// ColorTrack (one floor per frame pixel plus a director region) and Recolor
// (one floor per pixel position, frames as timed recolor events).
type Strategy interface {
	Name() string
	Plan(frames []*frame.Frame, fps float64, zoom int, lay config.Layout) (*Plan, error)
}

// ForName selects a strategy by its CLI name.
func ForName(name string) (Strategy, error) {
	switch name {
	case "colortrack":
		return ColorTrack{}, nil
	case "recolor":
		return Recolor{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// Actions are grouped by ascending floor. The sort is stable so events on
// the same floor keep their emission order.
func sortActions(actions []level.Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].FloorIndex() < actions[j].FloorIndex()
	})
}

func validate(frames []*frame.Frame, fps float64, zoom int) (w, h int, err error) {
	if len(frames) == 0 {
		return 0, 0, fmt.Errorf("no frames to lay out")
	}
	if fps <= 0 {
		return 0, 0, fmt.Errorf("fps must be positive, got %v", fps)
	}
	if zoom <= 0 {
		return 0, 0, fmt.Errorf("zoom must be positive, got %d", zoom)
	}
	w, h = frames[0].Width, frames[0].Height
	if w*h < 1 {
		return 0, 0, fmt.Errorf("frames have no pixels")
	}
	for i, f := range frames[1:] {
		if f.Width != w || f.Height != h {
			return 0, 0, fmt.Errorf("frame %d: size %dx%d does not match first frame %dx%d",
				i+2, f.Width, f.Height, w, h)
		}
	}
	return w, h, nil
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
