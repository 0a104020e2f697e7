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

// Video converts a folder of same-sized frames into one level using the
// given strategy.
func (c *Core) Video(dir, out string, fps float64, zoom int, strat layout.Strategy) error {
	log := logger.Log.WithField("scope", "core video")

	files, err := storage.ListFrames(dir)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	log.Debugf("found %d frames in %s", len(files), dir)

	c.eventsCh <- tui.NewEventSpin(fmt.Sprintf("Reading %d frames...", len(files)))
	frames, err := frame.LoadSequence(files, func(done, total int) {
		c.eventsCh <- tui.NewEventBar("Reading frames...", float64(done)/float64(total))
	})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	c.eventsCh <- tui.NewEventSpin(fmt.Sprintf("Laying out %s chain...", strat.Name()))
	plan, err := strat.Plan(frames, fps, zoom, config.DefaultLayout())
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	log.Debugf("plan: %d floors, %d events", plan.Floors, len(plan.Actions))

	out = storage.ResolveOutput(out, dir, config.LevelExt)
	c.eventsCh <- tui.NewEventSpin("Writing level...")
	doc := level.New(plan.Floors, plan.Overrides, plan.Actions)
	if err := storage.WriteLevel(out, doc.Write); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	log.Infof("Level saved: %s (%d floors, %d events)", out, plan.Floors, len(plan.Actions))
	c.eventsCh <- tui.NewEventText(fmt.Sprintf("Level saved: %s", out))
	return nil
}
