package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/storage"
	"github.com/1F47E/go-adofai-art/internal/tui"
	"github.com/1F47E/go-adofai-art/internal/video"
)

// Extract pulls frames out of a video with ffmpeg and groups them into
// part1/part2/... folders of groupSize frames each.
func (c *Core) Extract(videoPath, outDir, format string, groupSize int) error {
	log := logger.Log.WithField("scope", "core extract")

	if outDir == "" {
		outDir = strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("write: creating %s: %w", outDir, err)
	}

	// ffmpeg dumps a flat numbered sequence first, grouping comes after
	tmpDir, err := os.MkdirTemp(outDir, ".frames-")
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	c.eventsCh <- tui.NewEventSpin("Extracting frames...")
	done := make(chan bool)
	go c.scanFramesDir(tmpDir, done)

	if err := video.ExtractFrames(c.ctx, videoPath, tmpDir, format); err != nil {
		close(done)
		return fmt.Errorf("decode: %w", err)
	}
	close(done)

	n, err := storage.GroupFrames(tmpDir, outDir, groupSize)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	log.Infof("Extracted %d frames into %s", n, outDir)
	c.eventsCh <- tui.NewEventText(fmt.Sprintf("Extracted %d frames into %s", n, outDir))
	return nil
}

// ffmpeg gives no progress on stdout we can trust, so report how many
// frame files have shown up so far
func (c *Core) scanFramesDir(dir string, done <-chan bool) {
	log := logger.Log.WithField("scope", "core scanFramesDir")

	ticker := time.NewTicker(time.Second / 10)
	defer ticker.Stop()

	prevCount := 0
	for {
		select {
		case <-ticker.C:
			files, err := os.ReadDir(dir)
			if err != nil {
				log.Warn("scanning dir error:", err)
				continue
			}
			if l := len(files); l > prevCount {
				prevCount = l
				c.eventsCh <- tui.NewEventSpin(fmt.Sprintf("Extracting frames... %d", l))
			}
		case <-done:
			return
		}
	}
}
