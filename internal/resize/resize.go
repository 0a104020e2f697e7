// Package resize batch-scales extracted frame groups before level
// generation, so a 1080p dump can become something the game can draw.
package resize

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/storage"
)

const jpegQuality = 95

type Mode string

const (
	ModeWidth   Mode = "width"   // fixed width, keep aspect
	ModeHeight  Mode = "height"  // fixed height, keep aspect
	ModeFixed   Mode = "fixed"   // exact size
	ModePercent Mode = "percent" // scale both axes
)

type Options struct {
	Mode    Mode
	Width   int
	Height  int
	Percent int
	Flat    bool // treat input as one folder of images, no part* discovery
	Workers int  // 0 -> NumCPU
}

// Batch resizes every frame under inDir into the same part layout under
// outDir. The whole run fails on the first broken image.
func Batch(ctx context.Context, inDir, outDir string, opts Options) (int, error) {
	log := logger.Log.WithField("scope", "resize")

	parts, err := collect(inDir, opts.Flat)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range parts {
		total += len(p.Files)
	}
	log.Debugf("resizing %d frames in %d groups", total, len(parts))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Resizing... "),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]/[reset]",
			SaucerHead:    "[green]/[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, part := range parts {
		dstDir := filepath.Join(outDir, part.Name)
		if err := os.MkdirAll(dstDir, os.ModePerm); err != nil {
			return 0, fmt.Errorf("creating %s: %w", dstDir, err)
		}
		for _, file := range part.Files {
			file := file
			dst := filepath.Join(dstDir, filepath.Base(file))
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := one(file, dst, opts); err != nil {
					return err
				}
				_ = bar.Add(1)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	_ = bar.Finish()
	return total, nil
}

func collect(inDir string, flat bool) ([]storage.Part, error) {
	if flat {
		files, err := storage.ListFrames(inDir)
		if err != nil {
			return nil, err
		}
		return []storage.Part{{Name: ".", Files: files}}, nil
	}
	return storage.ListParts(inDir)
}

func one(src, dst string, opts Options) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", src, err)
	}

	b := img.Bounds()
	w, h, err := target(b.Dx(), b.Dy(), opts)
	if err != nil {
		return err
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(dst)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(out, scaled, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(out, scaled)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", dst, err)
	}
	return nil
}

func target(w, h int, opts Options) (int, int, error) {
	switch opts.Mode {
	case ModeWidth:
		if opts.Width < 1 {
			return 0, 0, fmt.Errorf("width must be positive")
		}
		return opts.Width, max(1, h*opts.Width/w), nil
	case ModeHeight:
		if opts.Height < 1 {
			return 0, 0, fmt.Errorf("height must be positive")
		}
		return max(1, w*opts.Height/h), opts.Height, nil
	case ModeFixed:
		if opts.Width < 1 || opts.Height < 1 {
			return 0, 0, fmt.Errorf("fixed size must be positive")
		}
		return opts.Width, opts.Height, nil
	case ModePercent:
		if opts.Percent < 1 {
			return 0, 0, fmt.Errorf("percent must be positive")
		}
		return max(1, w*opts.Percent/100), max(1, h*opts.Percent/100), nil
	}
	return 0, 0, fmt.Errorf("unknown resize mode %q", opts.Mode)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
