package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TheInputManager turns ebiten's polled input into the events the
// controller wants. Everything is in layout pixels.
var TheInputManager struct {
	// below fields are updated by UpdateInput
	// only public for convinience
	// don't write in to it

	CursorX, CursorY float64
	CursorMoved      bool

	LayoutWidth, LayoutHeight float64
	Resized                   bool

	// set by Layout, picked up by the next UpdateInput
	pendingWidth, pendingHeight float64
	cursorSeen                  bool
}

// SetLayoutSize records the size ebiten reported in Layout.
func SetLayoutSize(width, height float64) {
	im := &TheInputManager

	im.pendingWidth = width
	im.pendingHeight = height
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update layout size
	// =============================
	im.Resized = im.pendingWidth != im.LayoutWidth || im.pendingHeight != im.LayoutHeight
	im.LayoutWidth = im.pendingWidth
	im.LayoutHeight = im.pendingHeight

	// =============================
	// update cursor
	// =============================
	x, y := eb.CursorPosition()
	fx, fy := float64(x), float64(y)

	// the first position is wherever the cursor happens to be, not a move
	im.CursorMoved = im.cursorSeen && (fx != im.CursorX || fy != im.CursorY)
	im.CursorX = fx
	im.CursorY = fy
	im.cursorSeen = true
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}
