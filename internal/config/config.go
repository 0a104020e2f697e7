package config

// NOTE: pixels map to floors left to right, top to bottom
const (
	// geometry of one floor tile in the game engine, do not change
	FloorWidth  = 1.0
	FloorHeight = 0.9

	// vertical distance between raster rows of one frame
	RowOffset = 0.9

	// vertical distance between stacked frames in colortrack mode
	FrameGap = 10.0

	// where the first frame starts relative to the director region
	FrameStartY = -10.0

	DefaultFPS       = 5.0
	DefaultZoom      = 100
	DefaultYOffset   = 0.9
	DefaultGroupSize = 1000

	LevelExt = ".adofai"
)

// Layout carries the fixed chain-folding constants. The engine takes it as
// a value, never reads package state mid-job.
type Layout struct {
	RowOffset   float64
	FrameGap    float64
	FrameStartY float64
	FloorWidth  float64
	FloorHeight float64
}

func DefaultLayout() Layout {
	return Layout{
		RowOffset:   RowOffset,
		FrameGap:    FrameGap,
		FrameStartY: FrameStartY,
		FloorWidth:  FloorWidth,
		FloorHeight: FloorHeight,
	}
}
