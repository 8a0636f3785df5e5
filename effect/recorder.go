package effect

import (
	"context"
	"image"
)

// Recorder runs a controller on a CPUStage without a window. The pointer
// sweeps once from the left edge to the right edge at mid height over
// Frames ticks, and every frame drawn with the source image goes to Sink.
type Recorder struct {
	Controller *Controller
	Stage      *CPUStage
	Frames     int
	Sink       func(tick int, frame *image.NRGBA) error
}

func (r *Recorder) Run(ctx context.Context, sched Scheduler) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	tick := 0
	err := sched.Run(ctx, TickFunc(func() {
		vp := r.Controller.Viewport()

		progress := 0.5
		if r.Frames > 1 {
			progress = min(float64(tick)/float64(r.Frames-1), 1)
		}
		r.Controller.PointerMove(progress*vp.Width, vp.Height/2)

		drawn := r.Stage.Drawn()
		r.Controller.Tick()

		if r.Stage.Drawn() != drawn && r.Sink != nil {
			if err := r.Sink(tick, r.Stage.Frame()); err != nil {
				cancel(err)
			}
		}
		tick++
	}))
	if err != nil {
		return err
	}

	return context.Cause(ctx)
}
