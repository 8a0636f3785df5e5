package effect

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"fractalglass/misc"
	"fractalglass/shading"
)

var (
	ErrNoStage      = errors.New("controller needs a stage")
	ErrEmptyImage   = errors.New("source image has no pixels")
	ErrAlreadyReady = errors.New("source image is already bound")
)

type State int

const (
	StateUninitialized State = iota
	StateWaitingForImage
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWaitingForImage:
		return "waiting for image"
	case StateReady:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PointerState is in normalized coordinates, (0, 0) bottom left.
// Target follows the pointer, Current eases toward it every tick.
type PointerState struct {
	Current mgl64.Vec2
	Target  mgl64.Vec2
}

type Size struct {
	Width, Height float64
}

// Degenerate reports whether the size has no area, a minimized window for example.
func (s Size) Degenerate() bool {
	return !(s.Width > 0 && s.Height > 0)
}

func (s Size) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{s.Width, s.Height}
}

// Controller owns the effect state and pushes a fresh set of shader
// parameters into its Stage every tick.
//
// It is not safe for concurrent use. Events and ticks must come from the
// same goroutine, which is how both schedulers in this module call it.
type Controller struct {
	cfg   Config
	stage Stage
	state State

	pointer   PointerState
	viewport  Size
	imageSize Size
	image     image.Image

	pending ImageFuture

	frames     uint64
	degenerate bool
}

func New(cfg Config, stage Stage, width, height float64) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrNoStage
	}

	c := &Controller{
		cfg:   cfg,
		stage: stage,
		pointer: PointerState{
			Current: mgl64.Vec2{0.5, 0.5},
			Target:  mgl64.Vec2{0.5, 0.5},
		},
	}

	c.Resize(width, height)
	c.state = StateWaitingForImage

	return c, nil
}

func (c *Controller) State() State          { return c.state }
func (c *Controller) Config() Config        { return c.cfg }
func (c *Controller) Pointer() PointerState { return c.pointer }
func (c *Controller) Viewport() Size        { return c.viewport }
func (c *Controller) ImageSize() Size       { return c.imageSize }
func (c *Controller) Frames() uint64        { return c.frames }

// Image returns the bound source image, nil until Ready.
func (c *Controller) Image() image.Image { return c.image }

// Params projects the current state into shader parameters. ok is false
// when a frame could not be drawn with them.
func (c *Controller) Params() (p shading.Params, ok bool) {
	return c.project(), c.drawable()
}

func (c *Controller) drawable() bool {
	return c.state == StateReady && !c.viewport.Degenerate()
}

func (c *Controller) project() shading.Params {
	return shading.Params{
		Resolution: c.viewport.Vec2(),
		ImageSize:  c.imageSize.Vec2(),
		Pointer:    c.pointer.Current,

		ParallaxStrength:     c.cfg.ParallaxStrength,
		DistortionMultiplier: c.cfg.DistortionMultiplier,
		StripeFrequency:      c.cfg.StripeFrequency,
		EdgePadding:          c.cfg.EdgePadding,

		GlassStrength:   c.cfg.GlassStrength,
		GlassSmoothness: c.cfg.GlassSmoothness,
	}
}

// Tick advances one frame.
func (c *Controller) Tick() {
	c.poll()

	c.frames++

	t := c.cfg.EasingFactor
	cur, target := c.pointer.Current, c.pointer.Target
	c.pointer.Current = mgl64.Vec2{
		shading.Lerp(cur.X(), target.X(), t),
		shading.Lerp(cur.Y(), target.Y(), t),
	}

	if c.state != StateReady {
		c.stage.Blank()
		return
	}

	if c.viewport.Degenerate() {
		if !c.degenerate {
			misc.WarnLogger.Printf("viewport is %vx%v, skipping draws", c.viewport.Width, c.viewport.Height)
			c.degenerate = true
		}
		return
	}
	c.degenerate = false

	c.stage.Draw(c.project())
}

// PointerMove takes a pointer position in viewport pixels, y growing
// downward.
func (c *Controller) PointerMove(x, y float64) {
	if c.viewport.Degenerate() || !isFinite(x) || !isFinite(y) {
		return
	}

	c.pointer.Target = mgl64.Vec2{
		x / c.viewport.Width,
		1 - y/c.viewport.Height,
	}
}

// Resize takes effect on the next tick. Easing is not reset.
func (c *Controller) Resize(width, height float64) {
	c.viewport = Size{
		Width:  max(width, 0),
		Height: max(height, 0),
	}

	c.stage.Configure(int(math.Round(c.viewport.Width)), int(math.Round(c.viewport.Height)))
}

// ImageReady binds img and moves the controller to StateReady.
func (c *Controller) ImageReady(img image.Image) error {
	if c.state == StateReady {
		return ErrAlreadyReady
	}

	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}

	b := img.Bounds()
	c.imageSize = Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	c.image = img
	c.stage.Bind(img)
	c.state = StateReady

	misc.InfoLogger.Printf("source image ready (%dx%d)", b.Dx(), b.Dy())

	return nil
}

// ImageFailed records a source image that will never arrive.
// The controller keeps drawing blank frames.
func (c *Controller) ImageFailed(err error) {
	misc.ErrLogger.Printf("source image failed, staying blank: %v", err)
}

// Watch hands the controller a pending source image. It is drained at
// the start of every tick, or right away if it already completed.
func (c *Controller) Watch(f ImageFuture) {
	c.pending = f
	c.poll()
}

func (c *Controller) poll() {
	if c.pending == nil {
		return
	}

	select {
	case <-c.pending.Done():
	default:
		return
	}

	img, err := c.pending.Result()
	c.pending = nil

	if err != nil {
		c.ImageFailed(err)
		return
	}

	if err := c.ImageReady(img); err != nil {
		c.ImageFailed(err)
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
