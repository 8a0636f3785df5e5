package effect

import (
	"context"
	"errors"
	"image"
	"time"

	"fractalglass/shading"
)

// Stage is the graphics backend that runs the fragment program.
type Stage interface {
	// Configure resizes the render surface.
	Configure(width, height int)
	// Bind makes img the sampled source image.
	Bind(img image.Image)
	// Draw renders one full viewport frame with p.
	Draw(p shading.Params)
	// Blank renders a frame without the source image.
	Blank()
}

// ImageFuture delivers the decoded source image exactly once.
// Result is only valid after Done is closed.
type ImageFuture interface {
	Done() <-chan struct{}
	Result() (image.Image, error)
}

type Ticker interface {
	Tick()
}

type TickFunc func()

func (f TickFunc) Tick() { f() }

// Scheduler calls Tick once per frame until ctx is done or it runs out
// of frames.
type Scheduler interface {
	Run(ctx context.Context, t Ticker) error
}

var ErrBadInterval = errors.New("frame interval must be positive")

// FixedRate ticks on a timer. It is the scheduler used when there is no
// display to sync with.
type FixedRate struct {
	Interval time.Duration
	// Frames stops the run after that many ticks. 0 runs until ctx is done.
	Frames int
}

func (s FixedRate) Run(ctx context.Context, t Ticker) error {
	if s.Interval <= 0 {
		return ErrBadInterval
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for n := 0; s.Frames <= 0 || n < s.Frames; n++ {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
			t.Tick()
		}
	}

	return nil
}
