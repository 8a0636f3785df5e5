package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"fractalglass/asset"
	"fractalglass/cli"
	"fractalglass/effect"
	"fractalglass/misc"
)

// RunHeadless renders opts.Frames frames on the cpu with the pointer
// sweeping across the image and writes them to opts.OutputDir.
func RunHeadless(ctx context.Context, opts cli.Options) error {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return err
	}

	stage := effect.NewCPUStage(opts.ClearColor)

	ctrl, err := effect.New(opts.Effect, stage, float64(opts.Width), float64(opts.Height))
	if err != nil {
		return err
	}

	img, err := asset.Load(ctx, opts.ImagePath).Wait(ctx)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.ImagePath, err)
	}
	if err := ctrl.ImageReady(img); err != nil {
		return err
	}

	rec := &effect.Recorder{
		Controller: ctrl,
		Stage:      stage,
		Frames:     opts.Frames,
		Sink: func(tick int, frame *image.NRGBA) error {
			return asset.WritePNG(filepath.Join(opts.OutputDir, fmt.Sprintf("frame-%04d.png", tick)), frame)
		},
	}

	sched := effect.FixedRate{
		Interval: time.Duration(float64(time.Second) / opts.FPS),
		Frames:   opts.Frames,
	}

	misc.InfoLogger.Printf("rendering %d frames (%dx%d) to %s", opts.Frames, opts.Width, opts.Height, opts.OutputDir)

	timer := misc.NewProfTimer("headless render")
	defer timer.Report()

	return rec.Run(ctx, sched)
}
