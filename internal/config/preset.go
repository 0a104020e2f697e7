package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset holds user defaults loaded from a YAML file. Zero fields fall back
// to the package defaults.
type Preset struct {
	FPS       float64 `yaml:"fps"`
	Zoom      int     `yaml:"zoom"`
	YOffset   float64 `yaml:"y_offset"`
	GroupSize int     `yaml:"group_size"`
}

func DefaultPreset() Preset {
	return Preset{
		FPS:       DefaultFPS,
		Zoom:      DefaultZoom,
		YOffset:   DefaultYOffset,
		GroupSize: DefaultGroupSize,
	}
}

func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	if p.FPS <= 0 {
		p.FPS = DefaultFPS
	}
	if p.Zoom <= 0 {
		p.Zoom = DefaultZoom
	}
	if p.YOffset <= 0 {
		p.YOffset = DefaultYOffset
	}
	if p.GroupSize <= 0 {
		p.GroupSize = DefaultGroupSize
	}
	return p, nil
}
