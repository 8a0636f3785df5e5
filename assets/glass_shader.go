//go:build ignore

//kage:unit pixels

package main

const Pi = 3.14159265

// Keep in sync with package shading.
const Octaves = 5
const StripeAmplitude = 0.02

var Resolution vec2
var ImageSize vec2
var Mouse vec2

var ParallaxStrength float
var DistortionMultiplier float
var StripeFrequency float
var EdgePadding float

// unused for now
var GlassStrength float
var GlassSmoothness float

func coverMap(uv vec2) vec2 {
	screenRatio := Resolution.x / Resolution.y
	imageRatio := ImageSize.x / ImageSize.y

	if screenRatio > imageRatio {
		scale := screenRatio / imageRatio
		uv.y = uv.y*scale - (scale-1)/2
	} else {
		scale := imageRatio / screenRatio
		uv.x = uv.x*scale - (scale-1)/2
	}

	return uv
}

func stripeDisplacement(x float, frequency float) float {
	return sin(x*frequency*Pi) * StripeAmplitude
}

func fractalGlass(x float) float {
	total := 0.0
	totalWeight := 0.0
	weight := 1.0

	for i := 1; i <= Octaves; i++ {
		freq := float(i) * StripeFrequency
		total += stripeDisplacement(x*freq, StripeFrequency) * weight
		totalWeight += weight
		weight *= 0.5
	}

	return total / totalWeight
}

func edgeFactor(x float) float {
	return smoothstep(0, EdgePadding, x) * smoothstep(0, EdgePadding, 1-x)
}

func distort(uv vec2) vec2 {
	uv = coverMap(uv)

	e := edgeFactor(uv.x)

	uv.x += fractalGlass(uv.x) * DistortionMultiplier * e
	uv.x += (Mouse.x - 0.5) * ParallaxStrength * e

	return uv
}

// bilinear fetch with clamp to edge, uv y grows upward
func sample(uv vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()

	p := vec2(uv.x, 1-uv.y)*size - 0.5
	p0 := floor(p)
	f := p - p0

	lo := origin + 0.5
	hi := origin + size - 0.5
	base := origin + p0 + 0.5

	c00 := imageSrc0UnsafeAt(clamp(base, lo, hi))
	c10 := imageSrc0UnsafeAt(clamp(base+vec2(1, 0), lo, hi))
	c01 := imageSrc0UnsafeAt(clamp(base+vec2(0, 1), lo, hi))
	c11 := imageSrc0UnsafeAt(clamp(base+vec2(1, 1), lo, hi))

	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (dstPos.xy - imageDstOrigin()) / imageDstSize()
	uv.y = 1 - uv.y

	return sample(distort(uv))
}
