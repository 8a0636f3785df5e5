package effect

import (
	"context"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"fractalglass/misc"
	"fractalglass/shading"
)

// CPUStage renders frames in software with shading.Render.
type CPUStage struct {
	clear color.NRGBA
	frame *image.NRGBA
	tex   *shading.Texture

	drawn uint64
}

func NewCPUStage(clear color.Color) *CPUStage {
	return &CPUStage{clear: misc.ColorToNRGBA(clear)}
}

func (s *CPUStage) Configure(width, height int) {
	if width <= 0 || height <= 0 {
		s.frame = nil
		return
	}

	if s.frame != nil && s.frame.Bounds().Dx() == width && s.frame.Bounds().Dy() == height {
		return
	}

	s.frame = image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (s *CPUStage) Bind(img image.Image) {
	s.tex = shading.NewTexture(img)
}

func (s *CPUStage) Draw(p shading.Params) {
	if s.frame == nil || s.tex == nil {
		return
	}

	// Render only fails on a canceled context
	_ = shading.Render(context.Background(), s.frame, s.tex, p)
	s.drawn++
}

func (s *CPUStage) Blank() {
	if s.frame == nil {
		return
	}

	xdraw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(s.clear), image.Point{}, xdraw.Src)
}

// Frame is the last rendered frame. It is reused by the next one.
func (s *CPUStage) Frame() *image.NRGBA { return s.frame }

// Drawn counts frames rendered with the source image.
func (s *CPUStage) Drawn() uint64 { return s.drawn }
