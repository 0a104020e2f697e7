package level

import (
	"strconv"
)

// Action is one event record anchored to a floor. Actions are serialized in
// document order, grouped by ascending floor index.
type Action interface {
	FloorIndex() int
	appendLiteral(b []byte) []byte
}

// ColorTrack sets the color of one floor's own track segment.
type ColorTrack struct {
	Floor      int
	TrackColor string
}

func (a ColorTrack) FloorIndex() int { return a.Floor }

func (a ColorTrack) appendLiteral(b []byte) []byte {
	b = append(b, `{ "floor": `...)
	b = strconv.AppendInt(b, int64(a.Floor), 10)
	b = append(b, `, "eventType": "ColorTrack", "trackColorType": "Single", "trackColor": "`...)
	b = append(b, a.TrackColor...)
	b = append(b, `", "secondaryTrackColor": "ffffff", "trackColorAnimDuration": 2, "trackColorPulse": "None", "trackPulseLength": 10, "trackStyle": "Minimal", "trackTexture": "", "trackTextureScale": 1, "trackGlowIntensity": 100, "justThisTile": false}`...)
	return b
}

// PositionTrack shifts this floor relative to its chain position. The layout
// engine uses it to fold the 1-D chain back into a raster.
type PositionTrack struct {
	Floor int
	DX    float64
	DY    float64
}

func (a PositionTrack) FloorIndex() int { return a.Floor }

func (a PositionTrack) appendLiteral(b []byte) []byte {
	b = append(b, `{ "floor": `...)
	b = strconv.AppendInt(b, int64(a.Floor), 10)
	b = append(b, `, "eventType": "PositionTrack", "positionOffset": [`...)
	b = append(b, formatFloat(a.DX)...)
	b = append(b, `, `...)
	b = append(b, formatFloat(a.DY)...)
	b = append(b, `], "relativeTo": [0, "ThisTile"], "justThisTile": false, "editorOnly": false}`...)
	return b
}

// MoveCamera centers the camera on a frame when its director floor is hit.
type MoveCamera struct {
	Floor int
	X     float64
	Y     float64
	Zoom  int
}

func (a MoveCamera) FloorIndex() int { return a.Floor }

func (a MoveCamera) appendLiteral(b []byte) []byte {
	b = append(b, `{ "floor": `...)
	b = strconv.AppendInt(b, int64(a.Floor), 10)
	b = append(b, `, "eventType": "MoveCamera", "duration": 0, "relativeTo": "Global", "position": [`...)
	b = append(b, formatFloat(a.X)...)
	b = append(b, `, `...)
	b = append(b, formatFloat(a.Y)...)
	b = append(b, `], "zoom": `...)
	b = strconv.AppendInt(b, int64(a.Zoom), 10)
	b = append(b, `, "angleOffset": 0, "ease": "Linear", "dontDisable": false, "minVfxOnly": false, "eventTag": ""}`...)
	return b
}

// RecolorTrack repaints one tile's span from floor 1, scheduled by angle
// offset instead of chain adjacency. All recolor events share floor 1.
type RecolorTrack struct {
	Tile        int
	TrackColor  string
	AngleOffset float64
}

func (a RecolorTrack) FloorIndex() int { return 1 }

func (a RecolorTrack) appendLiteral(b []byte) []byte {
	tile := strconv.Itoa(a.Tile)
	b = append(b, `{ "floor": 1, "eventType": "RecolorTrack", "startTile": [`...)
	b = append(b, tile...)
	b = append(b, `, "Start"], "endTile": [`...)
	b = append(b, tile...)
	b = append(b, `, "Start"], "gapLength": 0, "duration": 0, "trackColorType": "Single", "trackColor": "`...)
	b = append(b, a.TrackColor...)
	b = append(b, `", "secondaryTrackColor": "ffffff", "trackColorAnimDuration": 2, "trackColorPulse": "None", "trackPulseLength": 10, "trackStyle": "Basic", "trackGlowIntensity": 100, "angleOffset": `...)
	b = append(b, formatFloat(a.AngleOffset)...)
	b = append(b, `, "ease": "Linear", "eventTag": ""}`...)
	return b
}

// Literal renders one action as its document line body (no indent, no comma).
func Literal(a Action) string {
	return string(a.appendLiteral(nil))
}
