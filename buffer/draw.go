package buffer

import (
	"github.com/iw2rmb/quire/ui"
)

// Filler is drawn on rows past the end of the document.
const Filler = "~"

var _ ui.Drawable = (*Buffer)(nil)

// Draw renders the visible part of the buffer into ctx.Bounds. Rows past the
// end of the document show Filler, and their first column is marked with
// ui.Blue. Highlighting is applied last. Hidden buffers draw nothing.
//
// Text is sliced by bytes, one byte per cell. Lines with multi-byte
// characters are cut at the wrong place; the highlighter measures display
// columns instead, so colors can drift on such lines.
func (b *Buffer) Draw(ctx *ui.Context) {
	v, ok := b.view.(Visible)
	if !ok {
		return
	}
	vp := v.Viewport
	origin := ctx.Bounds.Min
	width := ctx.Bounds.Width()

	for row := range min(vp.Height(), ctx.Bounds.Height()) {
		line := Filler
		if y := vp.MinY() + row; y < b.storage.LineCount() {
			line = b.storage.Line(y)
		}
		if vp.MinX() >= len(line) {
			continue
		}
		text := line[vp.MinX():min(vp.MaxX(), len(line), vp.MinX()+width)]
		ctx.Screen.Write(origin.Add(ui.Coordinates{Y: row}), text)
	}

	for row := max(b.storage.LineCount()-vp.MinY(), 0); row < ctx.Bounds.Height(); row++ {
		at := origin.Add(ui.Coordinates{Y: row})
		ctx.Screen.ApplyColor(ui.NewBounds(at, at.Add(ui.Coordinates{X: 1, Y: 1})), ui.Blue)
	}

	if h, ok := b.syntax.(Highlighted); ok {
		h.Highlighter.Highlight(b.storage.SliceFrom, vp, boundedSink{screen: ctx.Screen, bounds: ctx.Bounds})
	}
}

// boundedSink places viewport-local rectangles inside bounds, discarding
// whatever falls outside.
type boundedSink struct {
	screen *ui.Screen
	bounds ui.Bounds
}

func (s boundedSink) ApplyColor(b ui.Bounds, color ui.Color) {
	b = b.Translate(s.bounds.Min)
	b.Min.X, b.Min.Y = max(b.Min.X, s.bounds.Min.X), max(b.Min.Y, s.bounds.Min.Y)
	b.Max.X, b.Max.Y = min(b.Max.X, s.bounds.Max.X), min(b.Max.Y, s.bounds.Max.Y)
	if b.IsEmpty() {
		return
	}
	s.screen.ApplyColor(b, color)
}
