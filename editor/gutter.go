package editor

import (
	"fmt"

	"github.com/iw2rmb/quire/ui"
)

// gutterWidth returns the width of the line-number gutter for the current
// buffer, or 0 when line numbers are off.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNumbers {
		return 0
	}
	return LineNumberWidth(m.buffers.Current().LineCount())
}

// LineNumberWidth returns the line-number gutter width for lineCount: the
// digits plus one separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprint(lineCount))
}

// drawGutter writes right-aligned line numbers for the visible rows.
func (m Model) drawGutter(screen *ui.Screen) {
	b := m.buffers.Current()
	vp, ok := b.Viewport()
	if !ok {
		return
	}
	digits := gutterDigits(b.LineCount())

	for row := range min(vp.Height(), screen.Size().Height) {
		y := vp.MinY() + row
		if y >= b.LineCount() {
			return
		}
		at := ui.Coordinates{Y: row}
		screen.Write(at, fmt.Sprintf("%*d", digits, y+1))

		color := m.cfg.Style.LineNumber
		if y == b.Cursor().Y() {
			color = m.cfg.Style.LineNumberActive
		}
		screen.ApplyColor(ui.NewBounds(at, ui.Coordinates{X: digits, Y: row + 1}), color)
	}
}
