package shading

import (
	"context"
	"image"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const renderChunkSize = 50

// Render runs Shade for every pixel center of dst.
// Columns are split into chunks rendered on their own goroutine.
func Render(ctx context.Context, dst *image.NRGBA, tex *Texture, p Params) error {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return ctx.Err()
	}

	fw, fh := float64(width), float64(height)

	var wg sync.WaitGroup

	for chunkMin := 0; chunkMin < width; chunkMin += renderChunkSize {
		chunkMax := min(chunkMin+renderChunkSize, width)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := chunkMin; x < chunkMax; x++ {
				if ctx.Err() != nil {
					return
				}

				u := (float64(x) + 0.5) / fw
				for y := 0; y < height; y++ {
					uv := mgl64.Vec2{u, 1 - (float64(y)+0.5)/fh}
					dst.SetNRGBA(bounds.Min.X+x, bounds.Min.Y+y, Shade(uv, p, tex))
				}
			}
		}()
	}

	wg.Wait()

	return ctx.Err()
}
