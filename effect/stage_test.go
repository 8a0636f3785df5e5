package effect

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"fractalglass/shading"
)

func TestFixedRateRunsFrames(t *testing.T) {
	ticks := 0
	err := FixedRate{Interval: time.Millisecond, Frames: 5}.Run(context.Background(), TickFunc(func() { ticks++ }))
	if err != nil {
		t.Fatal(err)
	}
	if ticks != 5 {
		t.Errorf("ticks = %d", ticks)
	}
}

func TestFixedRateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ticks := 0
	err := FixedRate{Interval: time.Millisecond}.Run(ctx, TickFunc(func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	}))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if ticks < 3 {
		t.Errorf("ticks = %d", ticks)
	}
}

func TestFixedRateBadInterval(t *testing.T) {
	err := FixedRate{}.Run(context.Background(), TickFunc(func() {}))
	if !errors.Is(err, ErrBadInterval) {
		t.Errorf("err = %v", err)
	}
}

func TestCPUStageBlank(t *testing.T) {
	clear := color.NRGBA{10, 20, 30, 255}
	s := NewCPUStage(clear)
	s.Configure(4, 3)
	s.Blank()

	frame := s.Frame()
	if frame.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", frame.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := frame.NRGBAAt(x, y); got != clear {
				t.Fatalf("pixel (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestCPUStageDegenerateSurface(t *testing.T) {
	s := NewCPUStage(color.Black)
	s.Configure(0, 10)
	s.Bind(testImage(2, 2))

	s.Blank()
	s.Draw(shading.Params{})

	if s.Frame() != nil || s.Drawn() != 0 {
		t.Errorf("frame = %v, drawn = %d", s.Frame(), s.Drawn())
	}
}

func TestCPUStageReusesFrame(t *testing.T) {
	s := NewCPUStage(color.Black)
	s.Configure(8, 8)
	first := s.Frame()

	s.Configure(8, 8)
	if s.Frame() != first {
		t.Error("same size should keep the frame")
	}

	s.Configure(9, 8)
	if s.Frame() == first {
		t.Error("new size should allocate a new frame")
	}
}

func TestCPUStageDraw(t *testing.T) {
	s := NewCPUStage(color.Black)
	s.Configure(6, 4)

	s.Draw(shading.Params{})
	if s.Drawn() != 0 {
		t.Fatal("draw without a bound image should be skipped")
	}

	s.Bind(testImage(3, 2))
	s.Draw(shading.Params{
		Resolution:      mgl64.Vec2{6, 4},
		ImageSize:       mgl64.Vec2{3, 2},
		Pointer:         mgl64.Vec2{0.5, 0.5},
		StripeFrequency: 35,
		EdgePadding:     0.1,
	})

	if s.Drawn() != 1 {
		t.Fatalf("drawn = %d", s.Drawn())
	}
	white := color.NRGBA{255, 255, 255, 255}
	if got := s.Frame().NRGBAAt(3, 2); got != white {
		t.Errorf("pixel = %v", got)
	}
}
