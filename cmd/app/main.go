package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/core"
	"github.com/1F47E/go-adofai-art/internal/layout"
	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/resize"
	"github.com/1F47E/go-adofai-art/internal/tui"
)

var app = cli.NewApp()
var log = logger.Log

var (
	ctx      context.Context
	eventsCh = make(chan tui.Event, 16)
	c        *core.Core
)

func init() {
	app.Name = "adofai-art"
	app.Usage = "Convert images and videos into ADOFAI pixel-art levels"
	app.UsageText = "adofai-art [command] path"
	app.HideHelp = true
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "preset, p",
			Usage: "YAML preset with default fps/zoom/y-offset/group-size",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:    "image",
			Aliases: []string{"i"},
			Usage:   "Convert a single image to a pixel-art level",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o", Usage: "output .adofai path"},
				cli.Float64Flag{Name: "y-offset, y", Usage: "row spacing", Value: config.DefaultYOffset},
			},
			Action: func(cc *cli.Context) error {
				path, err := getPath(cc)
				if err != nil {
					return err
				}
				preset, err := getPreset(cc)
				if err != nil {
					return err
				}
				yOffset := preset.YOffset
				if cc.IsSet("y-offset") {
					yOffset = cc.Float64("y-offset")
				}
				return c.Image(path, cc.String("out"), yOffset)
			},
		},
		{
			Name:    "video",
			Aliases: []string{"v"},
			Usage:   "Convert a folder of frames to a video level",
			Flags:   videoFlags(),
			Action: func(cc *cli.Context) error {
				dir, err := getPath(cc)
				if err != nil {
					return err
				}
				fps, zoom, strat, err := videoArgs(cc)
				if err != nil {
					return err
				}
				return c.Video(dir, cc.String("out"), fps, zoom, strat)
			},
		},
		{
			Name:    "batch",
			Aliases: []string{"b"},
			Usage:   "Convert grouped frames (part1, part2, ...) to one level per part",
			Flags:   videoFlags(),
			Action: func(cc *cli.Context) error {
				dir, err := getPath(cc)
				if err != nil {
					return err
				}
				fps, zoom, strat, err := videoArgs(cc)
				if err != nil {
					return err
				}
				return c.Batch(dir, cc.String("out"), fps, zoom, strat)
			},
		},
		{
			Name:    "extract",
			Aliases: []string{"x"},
			Usage:   "Extract video frames into grouped part folders (needs ffmpeg)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o", Usage: "output directory (default: video name)"},
				cli.StringFlag{Name: "format, f", Usage: "frame format, png or jpg", Value: "png"},
				cli.IntFlag{Name: "group, g", Usage: "frames per part folder", Value: config.DefaultGroupSize},
			},
			Action: func(cc *cli.Context) error {
				path, err := getPath(cc)
				if err != nil {
					return err
				}
				format := cc.String("format")
				if format != "png" && format != "jpg" {
					return fmt.Errorf("unsupported frame format %q, want png or jpg", format)
				}
				preset, err := getPreset(cc)
				if err != nil {
					return err
				}
				group := preset.GroupSize
				if cc.IsSet("group") {
					group = cc.Int("group")
				}
				if group < 1 {
					return fmt.Errorf("group size must be positive, got %d", group)
				}
				return c.Extract(path, cc.String("out"), format, group)
			},
		},
		{
			Name:    "resize",
			Aliases: []string{"r"},
			Usage:   "Batch resize frame groups",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o", Usage: "output directory (default: <input>_resized)"},
				cli.IntFlag{Name: "width, w", Usage: "target width, keep aspect"},
				cli.IntFlag{Name: "height", Usage: "target height, keep aspect"},
				cli.StringFlag{Name: "fixed", Usage: "exact size WxH, e.g. 64x36"},
				cli.IntFlag{Name: "percent", Usage: "scale percentage"},
				cli.BoolFlag{Name: "flat", Usage: "input is a flat folder, not part groups"},
			},
			Action: func(cc *cli.Context) error {
				dir, err := getPath(cc)
				if err != nil {
					return err
				}
				opts, err := resizeOpts(cc)
				if err != nil {
					return err
				}
				out := cc.String("out")
				if out == "" {
					out = strings.TrimRight(dir, "/") + "_resized"
				}
				n, err := resize.Batch(ctx, dir, out, opts)
				if err != nil {
					return err
				}
				log.Infof("Resized %d frames into %s", n, out)
				return nil
			},
		},
	}
}

func videoFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "out, o", Usage: "output path"},
		cli.Float64Flag{Name: "fps", Usage: "playback frame rate", Value: config.DefaultFPS},
		cli.IntFlag{Name: "zoom", Usage: "camera zoom percentage", Value: config.DefaultZoom},
		cli.BoolFlag{Name: "v2", Usage: "use the shared-track recolor strategy"},
	}
}

func videoArgs(cc *cli.Context) (float64, int, layout.Strategy, error) {
	preset, err := getPreset(cc)
	if err != nil {
		return 0, 0, nil, err
	}
	fps := preset.FPS
	if cc.IsSet("fps") {
		fps = cc.Float64("fps")
	}
	zoom := preset.Zoom
	if cc.IsSet("zoom") {
		zoom = cc.Int("zoom")
	}
	if fps <= 0 {
		return 0, 0, nil, fmt.Errorf("fps must be positive, got %v", fps)
	}
	if zoom <= 0 {
		return 0, 0, nil, fmt.Errorf("zoom must be positive, got %d", zoom)
	}
	var strat layout.Strategy = layout.ColorTrack{}
	if cc.Bool("v2") {
		strat = layout.Recolor{}
	}
	return fps, zoom, strat, nil
}

func resizeOpts(cc *cli.Context) (resize.Options, error) {
	opts := resize.Options{Flat: cc.Bool("flat")}
	switch {
	case cc.IsSet("width"):
		opts.Mode = resize.ModeWidth
		opts.Width = cc.Int("width")
	case cc.IsSet("height"):
		opts.Mode = resize.ModeHeight
		opts.Height = cc.Int("height")
	case cc.IsSet("fixed"):
		opts.Mode = resize.ModeFixed
		if _, err := fmt.Sscanf(cc.String("fixed"), "%dx%d", &opts.Width, &opts.Height); err != nil {
			return opts, fmt.Errorf("bad --fixed value %q, want WxH", cc.String("fixed"))
		}
	case cc.IsSet("percent"):
		opts.Mode = resize.ModePercent
		opts.Percent = cc.Int("percent")
	default:
		return opts, fmt.Errorf("pick a resize mode: --width, --height, --fixed or --percent")
	}
	return opts, nil
}

func getPath(cc *cli.Context) (string, error) {
	p := cc.Args().Get(0)
	if p == "" {
		return "", fmt.Errorf("path is required")
	}
	return p, nil
}

func getPreset(cc *cli.Context) (config.Preset, error) {
	return config.LoadPreset(cc.GlobalString("preset"))
}

func main() {
	var cancel context.CancelFunc
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	t := tui.New(eventsCh, ctx)
	go t.Run()

	c = core.NewCore(ctx, eventsCh)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
