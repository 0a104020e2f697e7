package level

// Field is one named settings entry. Order matters in the output, so the
// template is a slice, not a map.
type Field struct {
	Key   string
	Value any
}

// Overrides are the few settings a generator actually varies. Zero values
// fall back to the editor defaults.
type Overrides struct {
	Desc       string
	Tags       string
	BPM        int       // 0 -> 100
	Zoom       int       // 0 -> 100
	TrackColor string    // "" -> "000000"
	Position   []float64 // nil -> [0, 0]
	RelativeTo string    // "" -> "Player"
}

// SettingsFields returns the full ordered settings template with overrides
// applied. The field list and defaults match what the game editor writes
// for a version 15 level.
func SettingsFields(o Overrides) []Field {
	bpm := o.BPM
	if bpm == 0 {
		bpm = 100
	}
	zoom := o.Zoom
	if zoom == 0 {
		zoom = 100
	}
	trackColor := o.TrackColor
	if trackColor == "" {
		trackColor = "000000"
	}
	position := o.Position
	if position == nil {
		position = []float64{0, 0}
	}
	relativeTo := o.RelativeTo
	if relativeTo == "" {
		relativeTo = "Player"
	}

	return []Field{
		{"version", 15},
		{"artist", ""},
		{"specialArtistType", "None"},
		{"artistPermission", ""},
		{"song", ""},
		{"author", ""},
		{"separateCountdownTime", true},
		{"previewImage", ""},
		{"previewIcon", ""},
		{"previewIconColor", "003f52"},
		{"previewSongStart", 0},
		{"previewSongDuration", 10},
		{"seizureWarning", false},
		{"levelDesc", o.Desc},
		{"levelTags", o.Tags},
		{"artistLinks", ""},
		{"speedTrialAim", 0},
		{"difficulty", 1},
		{"requiredMods", []any{}},
		{"songFilename", ""},
		{"bpm", bpm},
		{"volume", 100},
		{"offset", 0},
		{"pitch", 100},
		{"hitsound", "Kick"},
		{"hitsoundVolume", 100},
		{"countdownTicks", 4},
		{"tileShape", "Short"},
		{"trackColorType", "Single"},
		{"trackColor", trackColor},
		{"secondaryTrackColor", "ffffff"},
		{"trackColorAnimDuration", 2},
		{"trackColorPulse", "None"},
		{"trackPulseLength", 10},
		{"trackStyle", "Minimal"},
		{"trackTexture", ""},
		{"trackTextureScale", 1},
		{"trackGlowIntensity", 100},
		{"trackAnimation", "None"},
		{"beatsAhead", 3},
		{"trackDisappearAnimation", "None"},
		{"beatsBehind", 4},
		{"backgroundColor", "000000"},
		{"showDefaultBGIfNoImage", true},
		{"showDefaultBGTile", true},
		{"defaultBGTileColor", "101121"},
		{"defaultBGShapeType", "Default"},
		{"defaultBGShapeColor", "ffffff"},
		{"bgImage", ""},
		{"bgImageColor", "ffffff"},
		{"parallax", []int{100, 100}},
		{"bgDisplayMode", "FitToScreen"},
		{"imageSmoothing", true},
		{"lockRot", false},
		{"loopBG", false},
		{"scalingRatio", 100},
		{"relativeTo", relativeTo},
		{"position", position},
		{"rotation", 0},
		{"zoom", zoom},
		{"pulseOnFloor", true},
		{"startCamLowVFX", false},
		{"bgVideo", ""},
		{"loopVideo", false},
		{"vidOffset", 0},
		{"floorIconOutlines", false},
		{"stickToFloors", true},
		{"planetEase", "Linear"},
		{"planetEaseParts", 1},
		{"planetEasePartBehavior", "Mirror"},
		{"customClass", ""},
		{"defaultTextColor", "ffffff"},
		{"defaultTextShadowColor", "00000050"},
		{"congratsText", ""},
		{"perfectText", ""},
		{"legacyFlash", false},
		{"legacyCamRelativeTo", false},
		{"legacySpriteTiles", false},
		{"legacyTween", false},
		{"disableV15Features", false},
	}
}
