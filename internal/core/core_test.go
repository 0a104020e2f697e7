package core

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1F47E/go-adofai-art/internal/layout"
	"github.com/1F47E/go-adofai-art/internal/tui"
)

func newTestCore() *Core {
	// events are drained into a buffer large enough for small jobs
	return NewCore(context.Background(), make(chan tui.Event, 256))
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.SetNRGBA(i%w, i/w, color.NRGBA{R: uint8(i * 20), G: uint8(i * 7), B: uint8(i), A: 255})
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageGeneratesLevel(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "art.png")
	writeTestPNG(t, in, 2, 2)

	c := newTestCore()
	require.NoError(t, c.Image(in, "", 0.9))

	out := filepath.Join(dir, "art.adofai")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"eventType": "ColorTrack"`)
	assert.Contains(t, string(data), `"eventType": "PositionTrack"`)

	// same input, byte-identical output
	require.NoError(t, c.Image(in, "", 0.9))
	again, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestImageBadInput(t *testing.T) {
	c := newTestCore()
	err := c.Image(filepath.Join(t.TempDir(), "missing.png"), "", 0.9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestVideoGeneratesLevel(t *testing.T) {
	dir := t.TempDir()
	framesDir := filepath.Join(dir, "clip")
	writeTestPNG(t, filepath.Join(framesDir, "1.png"), 2, 2)
	writeTestPNG(t, filepath.Join(framesDir, "2.png"), 2, 2)

	c := newTestCore()
	out := filepath.Join(dir, "clip.adofai")
	require.NoError(t, c.Video(framesDir, out, 10, 100, layout.Recolor{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"eventType": "RecolorTrack"`)
	assert.Contains(t, string(data), `"bpm": 60`)
}

func TestVideoMismatchedFrames(t *testing.T) {
	dir := t.TempDir()
	framesDir := filepath.Join(dir, "clip")
	writeTestPNG(t, filepath.Join(framesDir, "1.png"), 2, 2)
	writeTestPNG(t, filepath.Join(framesDir, "2.png"), 3, 2)

	c := newTestCore()
	err := c.Video(framesDir, filepath.Join(dir, "out.adofai"), 10, 100, layout.ColorTrack{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
	// nothing half-written
	_, statErr := os.Stat(filepath.Join(dir, "out.adofai"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBatchGeneratesLevelPerPart(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "part1", "1.png"), 2, 2)
	writeTestPNG(t, filepath.Join(dir, "part1", "2.png"), 2, 2)
	writeTestPNG(t, filepath.Join(dir, "part2", "1.png"), 2, 2)

	c := newTestCore()
	outDir := filepath.Join(dir, "levels")
	require.NoError(t, c.Batch(dir, outDir, 5, 100, layout.ColorTrack{}))

	for _, name := range []string{"part1.adofai", "part2.adofai"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestBatchFailsOnBrokenPart(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "part1", "1.png"), 2, 2)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "part2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "part2", "1.png"), []byte("junk"), 0o644))

	c := newTestCore()
	err := c.Batch(dir, filepath.Join(dir, "levels"), 5, 100, layout.ColorTrack{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part2")
}
