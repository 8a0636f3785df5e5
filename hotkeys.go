package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadShaderKey eb.Key = eb.KeyF5

	ShowDebugConsoleKey = eb.KeyF1

	ScreenshotKey   eb.Key = eb.KeyP
	CopyUniformsKey eb.Key = eb.KeyC
)
