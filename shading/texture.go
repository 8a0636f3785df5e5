package shading

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"
)

// Texture is a CPU copy of the source image, sampled with linear
// filtering and clamp to edge addressing.
type Texture struct {
	pix    *image.NRGBA
	width  int
	height int
}

func NewTexture(img image.Image) *Texture {
	b := img.Bounds()

	pix, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		pix = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(pix, pix.Bounds(), img, b.Min, xdraw.Src)
	}

	return &Texture{
		pix:    pix,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

func (t *Texture) Size() mgl64.Vec2 {
	return mgl64.Vec2{float64(t.width), float64(t.height)}
}

func (t *Texture) Image() *image.NRGBA {
	return t.pix
}

func (t *Texture) texel(x, y int) [4]float64 {
	x = Clamp(x, 0, t.width-1)
	y = Clamp(y, 0, t.height-1)

	i := t.pix.PixOffset(x, y)
	s := t.pix.Pix[i : i+4 : i+4]
	return [4]float64{float64(s[0]), float64(s[1]), float64(s[2]), float64(s[3])}
}

// At samples the texture at uv. (0, 0) is the bottom left corner.
func (t *Texture) At(uv mgl64.Vec2) color.NRGBA {
	if t.width <= 0 || t.height <= 0 {
		return color.NRGBA{}
	}

	px := uv.X()*float64(t.width) - 0.5
	py := (1-uv.Y())*float64(t.height) - 0.5

	x0 := math.Floor(px)
	y0 := math.Floor(py)
	fx := px - x0
	fy := py - y0

	ix, iy := int(x0), int(y0)

	c00 := t.texel(ix, iy)
	c10 := t.texel(ix+1, iy)
	c01 := t.texel(ix, iy+1)
	c11 := t.texel(ix+1, iy+1)

	var out [4]uint8
	for i := range out {
		top := Lerp(c00[i], c10[i], fx)
		bottom := Lerp(c01[i], c11[i], fx)
		out[i] = uint8(Clamp(math.Round(Lerp(top, bottom, fy)), 0, 255))
	}

	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// Shade is the whole fragment program: distort uv, then sample.
func Shade(uv mgl64.Vec2, p Params, tex *Texture) color.NRGBA {
	return tex.At(Distort(uv, p))
}
