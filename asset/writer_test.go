package asset

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{10, 20, 30, 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	got, err := Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v", got.Bounds())
	}
	if c := got.NRGBAAt(2, 1); c != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", c)
	}
}

func TestWritePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := WritePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected an error")
	}
}
