package main

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"fractalglass/misc"
	"fractalglass/shading"
)

// KageStage runs the glass shader on the GPU. The controller calls
// Configure, Bind, Draw and Blank from Update, and App.Draw renders
// whatever the last tick asked for.
type KageStage struct {
	shader *eb.Shader
	clear  color.NRGBA

	source    *eb.Image
	sourceImg image.Image
	// cpu copy of the source for screenshots, made on first use
	tex *shading.Texture

	width, height int

	params shading.Params
	ready  bool
}

func NewKageStage(shader *eb.Shader, clear color.Color) *KageStage {
	return &KageStage{
		shader: shader,
		clear:  misc.ColorToNRGBA(clear),
	}
}

// SetShader swaps in a recompiled shader.
func (s *KageStage) SetShader(shader *eb.Shader) {
	if s.shader != nil {
		s.shader.Deallocate()
	}
	s.shader = shader
}

func (s *KageStage) Configure(width, height int) {
	s.width = width
	s.height = height
}

func (s *KageStage) Bind(img image.Image) {
	if s.source != nil {
		s.source.Deallocate()
	}
	s.source = eb.NewImageFromImage(img)
	s.sourceImg = img
	s.tex = nil
}

func (s *KageStage) Draw(p shading.Params) {
	s.params = p
	s.ready = true
}

func (s *KageStage) Blank() {
	s.ready = false
}

func (s *KageStage) Texture() *shading.Texture {
	if s.tex == nil && s.sourceImg != nil {
		s.tex = shading.NewTexture(s.sourceImg)
	}
	return s.tex
}

// Render draws the last requested frame to dst.
func (s *KageStage) Render(dst *eb.Image) {
	if !s.ready || s.shader == nil || s.source == nil {
		dst.Fill(s.clear)
		return
	}

	srcW := s.source.Bounds().Dx()
	srcH := s.source.Bounds().Dy()

	dstW := float64(dst.Bounds().Dx())
	dstH := float64(dst.Bounds().Dy())

	op := &eb.DrawRectShaderOptions{}

	op.Images[0] = s.source
	op.Uniforms = shading.Uniforms(s.params)

	// the rect has to match the source size, so stretch it over dst
	op.GeoM.Scale(dstW/float64(srcW), dstH/float64(srcH))

	dst.DrawRectShader(srcW, srcH, s.shader, op)
}
