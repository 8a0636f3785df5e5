package main

import (
	_ "embed"
	"fmt"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/glass_shader.go
var glassShaderSource []byte

// LoadGlassShader compiles the glass shader. An empty path uses the
// source embedded in the binary, anything else is read from disk so
// edits show up without rebuilding.
func LoadGlassShader(path string) (*eb.Shader, error) {
	src := glassShaderSource

	if path != "" {
		var err error
		src, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	shader, err := eb.NewShader(src)
	if err != nil {
		if path == "" {
			path = "embedded glass shader"
		}
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}

	return shader, nil
}
