package effect

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

func TestRecorderSweepsPointer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EasingFactor = 1

	stage := NewCPUStage(color.Black)
	c, err := New(cfg, stage, 16, 8)
	if err != nil {
		t.Fatal(err)
	}

	f := newFakeFuture()
	f.complete(testImage(4, 4), nil)
	c.Watch(f)

	var ticks []int
	r := &Recorder{
		Controller: c,
		Stage:      stage,
		Frames:     4,
		Sink: func(tick int, frame *image.NRGBA) error {
			if frame.Bounds() != image.Rect(0, 0, 16, 8) {
				t.Errorf("frame bounds = %v", frame.Bounds())
			}
			ticks = append(ticks, tick)
			return nil
		},
	}

	if err := r.Run(context.Background(), FixedRate{Interval: time.Millisecond, Frames: 4}); err != nil {
		t.Fatal(err)
	}

	if len(ticks) != 4 || ticks[0] != 0 || ticks[3] != 3 {
		t.Errorf("ticks = %v", ticks)
	}
	if got := c.Pointer().Current; got.X() != 1 || got.Y() != 0.5 {
		t.Errorf("pointer ended at %v", got)
	}
}

func TestRecorderSkipsBlankFrames(t *testing.T) {
	stage := NewCPUStage(color.Black)
	c, err := New(DefaultConfig(), stage, 16, 8)
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	r := &Recorder{
		Controller: c,
		Stage:      stage,
		Frames:     3,
		Sink: func(int, *image.NRGBA) error {
			calls++
			return nil
		},
	}

	if err := r.Run(context.Background(), FixedRate{Interval: time.Millisecond, Frames: 3}); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("sink called %d times without an image", calls)
	}
}

func TestRecorderSinkError(t *testing.T) {
	stage := NewCPUStage(color.Black)
	c, err := New(DefaultConfig(), stage, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ImageReady(testImage(4, 4)); err != nil {
		t.Fatal(err)
	}

	errDiskFull := errors.New("disk full")
	r := &Recorder{
		Controller: c,
		Stage:      stage,
		Frames:     10,
		Sink: func(tick int, _ *image.NRGBA) error {
			if tick == 1 {
				return errDiskFull
			}
			return nil
		},
	}

	err = r.Run(context.Background(), FixedRate{Interval: time.Millisecond, Frames: 10})
	if !errors.Is(err, errDiskFull) {
		t.Errorf("err = %v, want %v", err, errDiskFull)
	}
}
