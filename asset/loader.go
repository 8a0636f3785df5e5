// Package asset loads the source image off the frame loop.
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrEmptyImage = errors.New("image has no pixels")

// Future is a single image load. Done is closed exactly once, after
// which Result never changes.
type Future struct {
	done chan struct{}
	img  *image.NRGBA
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(img *image.NRGBA, err error) {
	f.img, f.err = img, err
	close(f.done)
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) Result() (image.Image, error) {
	<-f.done
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

// Wait blocks until the load finishes or ctx is done.
func (f *Future) Wait(ctx context.Context) (*image.NRGBA, error) {
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}
}

// Resolved wraps an image that is already in memory.
func Resolved(img image.Image) *Future {
	f := newFuture()
	if img == nil {
		f.resolve(nil, ErrEmptyImage)
		return f
	}
	f.resolve(ToNRGBA(img), nil)
	return f
}

// Load reads and decodes the file at path on its own goroutine.
func Load(ctx context.Context, path string) *Future {
	f := newFuture()

	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			f.resolve(nil, err)
			return
		}

		if err := ctx.Err(); err != nil {
			f.resolve(nil, err)
			return
		}

		img, err := Decode(bytes.NewReader(data))
		if err != nil {
			f.resolve(nil, fmt.Errorf("%s: %w", path, err))
			return
		}

		f.resolve(img, nil)
	}()

	return f
}

// LoadBytes is Load for embedded or already read data.
func LoadBytes(data []byte) *Future {
	f := newFuture()

	go func() {
		f.resolve(Decode(bytes.NewReader(data)))
	}()

	return f
}

// Decode reads a png, jpeg, gif or webp image.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: %w", format, ErrEmptyImage)
	}

	return ToNRGBA(img), nil
}

// ToNRGBA copies img into an NRGBA image with its origin at (0, 0).
// NRGBA images already at the origin are returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()

	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nrgba
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
