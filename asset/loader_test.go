package asset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func waitDone(t *testing.T, f *Future) {
	t.Helper()

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("future never completed")
	}
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t, 8, 5)))
	if err != nil {
		t.Fatal(err)
	}

	if img.Bounds() != image.Rect(0, 0, 8, 5) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glass.png")
	if err := os.WriteFile(path, encodePNG(t, 3, 2), 0644); err != nil {
		t.Fatal(err)
	}

	f := Load(context.Background(), path)
	waitDone(t, f)

	img, err := f.Result()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	f := Load(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	waitDone(t, f)

	img, err := f.Result()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v", err)
	}
	if img != nil {
		t.Errorf("img = %v", img)
	}
}

func TestLoadBytes(t *testing.T) {
	img, err := LoadBytes(encodePNG(t, 4, 4)).Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFuture().Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestResolved(t *testing.T) {
	src := image.NewGray(image.Rect(2, 2, 6, 5))
	f := Resolved(src)

	select {
	case <-f.Done():
	default:
		t.Fatal("Resolved future should already be done")
	}

	img, err := f.Result()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if _, err := Resolved(nil).Result(); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("err = %v", err)
	}
}

func TestToNRGBAKeepsOriginImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if ToNRGBA(src) != src {
		t.Error("expected the same image back")
	}
}
