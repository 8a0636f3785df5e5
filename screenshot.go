package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"fractalglass/asset"
	"fractalglass/misc"
	"fractalglass/shading"
)

var ErrNothingToCapture = errors.New("nothing to capture")

// TakeScreenshot renders p on the cpu at full viewport size and saves
// it as pic-<time>.png in dirPath. It returns the file name.
func TakeScreenshot(ctx context.Context, dirPath string, tex *shading.Texture, p shading.Params) (string, error) {
	if tex == nil {
		return "", ErrNothingToCapture
	}

	width, height := int(p.Resolution.X()), int(p.Resolution.Y())
	if width <= 0 || height <= 0 {
		return "", ErrNothingToCapture
	}

	timer := misc.NewProfTimer("screenshot render")
	defer timer.Report()

	frame := image.NewNRGBA(image.Rect(0, 0, width, height))
	if err := shading.Render(ctx, frame, tex, p); err != nil {
		return "", err
	}

	return SavePNG(dirPath, frame)
}

// SavePNG writes img as pic-<time>.png without overwriting an existing
// file.
func SavePNG(dirPath string, img image.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		exists, err := misc.CheckFileExists(filepath.Join(dirPath, filename))
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}

	if err := asset.WritePNG(filepath.Join(dirPath, filename), img); err != nil {
		return "", err
	}

	return filename, nil
}
