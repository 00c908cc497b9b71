package buffer

import "github.com/iw2rmb/quire/units"

// Scrolloff is the number of lines kept between the cursor and the top or
// bottom edge of the viewport, except at the ends of the document.
const Scrolloff = 5

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
)

// Move moves the cursor one step in dir. Moving past the first or last line,
// before column 0 or past the end of the line does nothing.
func (b *Buffer) Move(dir MoveDir) {
	switch dir {
	case DirLeft:
		b.MoveLeft()
	case DirRight:
		b.MoveRight()
	case DirUp:
		b.MoveUp()
	case DirDown:
		b.MoveDown()
	}
}

func (b *Buffer) MoveUp() {
	if b.atFirstLine() {
		return
	}
	b.MoveOffset(units.Offset{DY: -1})
}

func (b *Buffer) MoveDown() {
	if b.atLastLine() {
		return
	}
	b.MoveOffset(units.Offset{DY: 1})
}

func (b *Buffer) MoveLeft() {
	if b.cursor.x == 0 {
		return
	}
	b.MoveOffset(units.Offset{DX: -1})
}

func (b *Buffer) MoveRight() {
	if b.cursor.x >= b.currentLineLen() {
		return
	}
	b.MoveOffset(units.Offset{DX: 1})
}

// MoveOffset moves the cursor horizontally, then vertically, snapping to the
// new line, and finally scrolls the viewport to keep the cursor in view.
// Offsets reaching outside the document stop at its edges.
func (b *Buffer) MoveOffset(off units.Offset) {
	if dx := clamp(b.cursor.x+off.DX, 0, b.currentLineLen()) - b.cursor.x; dx != 0 {
		b.cursor.MoveX(dx)
	}
	if dy := clamp(b.cursor.y+off.DY, 0, b.storage.LineCount()-1) - b.cursor.y; dy != 0 {
		b.cursor.MoveY(dy)
		b.cursor.Snap(b.currentLineLen())
	}
	b.followCursor()
}

// followCursor shifts a visible viewport so the cursor stays inside it with
// Scrolloff lines of padding. Only the origin moves.
func (b *Buffer) followCursor() {
	v, ok := b.view.(Visible)
	if !ok {
		return
	}
	vp := v.Viewport

	y := b.cursor.y
	switch {
	case y > Scrolloff && y > vp.MaxY()-Scrolloff:
		maxY := min(y+Scrolloff, b.storage.LineCount())
		vp.Origin.Y = max(maxY-vp.Height(), 0)
	case y < vp.MinY()+Scrolloff:
		vp.Origin.Y = max(y-Scrolloff, 0)
	}

	x := b.cursor.x
	switch {
	case x >= vp.MaxX():
		vp.Origin.X = x + 1 - vp.Width()
	case x < vp.MinX():
		vp.Origin.X = x
	}

	b.view = Visible{Viewport: vp}
}

func (b *Buffer) atFirstLine() bool { return b.cursor.y == 0 }

func (b *Buffer) atLastLine() bool { return b.cursor.y == b.storage.LineCount()-1 }

// currentLineLen returns the length of the cursor's line in bytes, which is
// its width in columns for ASCII text.
func (b *Buffer) currentLineLen() int {
	return len(b.storage.Line(b.cursor.y))
}
