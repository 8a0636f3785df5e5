package asset

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(file)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return w.Flush()
}
