package shading

import (
	"golang.org/x/exp/constraints"
)

// Lerp moves a toward b by t. Repeated with a fixed b and 0 < t < 1 it
// converges on b. Written as a weighted sum so that t == 1 returns b and
// t == 0 returns a exactly.
func Lerp[F constraints.Float](a, b, t F) F {
	return (1-t)*a + t*b
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// SmoothStep is GLSL's smoothstep. edge0 must be smaller than edge1.
func SmoothStep[F constraints.Float](edge0, edge1, x F) F {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
