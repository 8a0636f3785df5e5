package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

// glyph size of the ebitenutil debug font
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	lineCount := 0
	longestLine := 0

	for _, msgs := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range msgs {
			if lineCount > 0 {
				dm.builder.WriteString("\n")
			}
			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			longestLine = max(longestLine, len(msg.Key)+2+len(msg.Value))
			lineCount++
		}
	}

	if lineCount == 0 {
		return
	}

	const hozMargin = 5
	const vertMargin = 5

	boxW := float32(longestLine*debugGlyphWidth + hozMargin*2)
	boxH := float32(lineCount*debugGlyphHeight + vertMargin*2)

	bounds := dst.Bounds()
	x := float32(bounds.Max.X) - boxW
	y := float32(bounds.Max.Y) - boxH

	// draw background
	vector.DrawFilledRect(dst, x, y, boxW, boxH, color.NRGBA{255, 255, 255, 255}, false)
	vector.DrawFilledRect(dst, x+2, y+2, boxW-4, boxH-4, color.NRGBA{0, 0, 0, 255}, false)

	ebu.DebugPrintAt(dst, dm.builder.String(), int(x)+hozMargin, int(y)+vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
