//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"fxray/app"
	"fxray/hal"
	"fxray/rt/fixed"
	"fxray/rt/scenes"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		headless bool
		term     bool
		hz       int
		ticks    uint64
		width    int
		height   int
		scale    int
		fov      float64
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Draw into the terminal instead of a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&width, "width", hal.DefaultWidth, "Framebuffer width.")
	flag.IntVar(&height, "height", hal.DefaultHeight, "Framebuffer height.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: "+strings.Join(scenes.Names(), ", ")+".")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Render goroutines (1 = serial with a frame-wide dither carry).")
	flag.IntVar(&cfg.Options.MaxBounce, "bounces", cfg.Options.MaxBounce, "Maximum bounces per primary ray.")
	flag.Float64Var(&fov, "fov", cfg.Options.FOVDeg.Float64(), "Vertical field of view in degrees.")
	flag.BoolVar(&cfg.Options.FaceNormals, "faces", false, "Shade slabs with the normal of the struck face.")
	flag.BoolVar(&cfg.Overlay, "overlay", cfg.Overlay, "Draw the status bar.")
	flag.IntVar(&cfg.Band, "band", cfg.Band, "Rows per partial present (0 = whole frames only).")
	flag.Parse()

	cfg.Options.FOVDeg = fixed.FromFloat(fov)
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Width: width, Height: height, Hz: hz, Ticks: ticks})
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TermConfig{Width: width, Height: height, Hz: hz})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Width: width, Height: height, Scale: scale})
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
