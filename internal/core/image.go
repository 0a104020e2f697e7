package core

import (
	"fmt"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/layout"
	"github.com/1F47E/go-adofai-art/internal/level"
	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/storage"
	"github.com/1F47E/go-adofai-art/internal/tui"
)

// Image converts one image into a pixel-art level, one floor per pixel.
func (c *Core) Image(path, out string, yOffset float64) error {
	log := logger.Log.WithField("scope", "core image")

	c.eventsCh <- tui.NewEventSpin("Reading image...")
	f, err := frame.Load(path)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	log.Debugf("image %s: %dx%d = %d pixels", path, f.Width, f.Height, f.Pixels())

	plan, err := layout.PixelArt(f, yOffset, config.DefaultLayout())
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	out = storage.ResolveOutput(out, path, config.LevelExt)
	c.eventsCh <- tui.NewEventSpin("Writing level...")
	doc := level.New(plan.Floors, plan.Overrides, plan.Actions)
	if err := storage.WriteLevel(out, doc.Write); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	log.Infof("Level saved: %s (%d floors, %d events)", out, plan.Floors, len(plan.Actions))
	c.eventsCh <- tui.NewEventText(fmt.Sprintf("Level saved: %s", out))
	return nil
}
