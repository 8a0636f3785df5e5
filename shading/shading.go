// Package shading is the CPU side of the fractal glass effect.
//
// Every function here has a twin in assets/glass_shader.go and the two
// must stay in sync. UV coordinates are normalized with y growing upward.
package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Octaves is the number of stripe frequencies summed by FractalGlass.
	Octaves = 5

	// StripeAmplitude is the displacement of the base octave.
	StripeAmplitude = 0.02
)

// Params is the uniform set handed to the fragment program for one frame.
// The uniform tag names the Kage variable each field feeds.
type Params struct {
	Resolution mgl64.Vec2 `uniform:"Resolution" json:"resolution"`
	ImageSize  mgl64.Vec2 `uniform:"ImageSize" json:"imageSize"`
	Pointer    mgl64.Vec2 `uniform:"Mouse" json:"pointer"`

	ParallaxStrength     float64 `uniform:"ParallaxStrength" json:"parallaxStrength"`
	DistortionMultiplier float64 `uniform:"DistortionMultiplier" json:"distortionMultiplier"`
	StripeFrequency      float64 `uniform:"StripeFrequency" json:"stripeFrequency"`
	EdgePadding          float64 `uniform:"EdgePadding" json:"edgePadding"`

	// not read by the shader yet
	GlassStrength   float64 `uniform:"GlassStrength" json:"glassStrength"`
	GlassSmoothness float64 `uniform:"GlassSmoothness" json:"glassSmoothness"`
}

// CoverMap rescales one axis of uv so the image fills the viewport
// without being stretched, like CSS background-size: cover.
// Both sizes must be positive.
func CoverMap(uv, viewport, image mgl64.Vec2) mgl64.Vec2 {
	screenRatio := viewport.X() / viewport.Y()
	imageRatio := image.X() / image.Y()

	if screenRatio > imageRatio {
		scale := screenRatio / imageRatio
		uv[1] = uv[1]*scale - (scale-1)/2
	} else {
		scale := imageRatio / screenRatio
		uv[0] = uv[0]*scale - (scale-1)/2
	}

	return uv
}

func StripeDisplacement(x, frequency float64) float64 {
	return math.Sin(x*frequency*math.Pi) * StripeAmplitude
}

// FractalGlass sums Octaves stripe patterns at rising frequency and
// halving weight, normalized by the total weight.
func FractalGlass(x, frequency float64) float64 {
	total := 0.0
	totalWeight := 0.0
	weight := 1.0

	for i := 1; i <= Octaves; i++ {
		freq := float64(i) * frequency
		total += StripeDisplacement(x*freq, frequency) * weight
		totalWeight += weight
		weight *= 0.5
	}

	return total / totalWeight
}

// EdgeFactor is 0 at x == 0 and x == 1 and ramps to 1 over padding
// on both sides.
func EdgeFactor(x, padding float64) float64 {
	return SmoothStep(0, padding, x) * SmoothStep(0, padding, 1-x)
}

// Distort maps a surface coordinate to the coordinate sampled from the
// source image.
func Distort(uv mgl64.Vec2, p Params) mgl64.Vec2 {
	uv = CoverMap(uv, p.Resolution, p.ImageSize)

	e := EdgeFactor(uv.X(), p.EdgePadding)

	uv[0] += FractalGlass(uv.X(), p.StripeFrequency) * p.DistortionMultiplier * e
	uv[0] += (p.Pointer.X() - 0.5) * p.ParallaxStrength * e

	return uv
}
