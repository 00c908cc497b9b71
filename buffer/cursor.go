package buffer

import "github.com/iw2rmb/quire/units"

// Cursor is the insertion point of a buffer.
type Cursor struct {
	x, y int

	// desiredCol is the column the cursor returns to when vertical motion
	// reaches a line long enough. See Snap.
	desiredCol int
}

// CursorAt returns a cursor at column x of row y.
func CursorAt(x, y int) Cursor {
	return Cursor{x: x, y: y, desiredCol: x}
}

func (c Cursor) X() int { return c.x }
func (c Cursor) Y() int { return c.y }

// Position returns the cursor location in document space.
func (c Cursor) Position() units.Position {
	return units.Position{X: c.x, Y: c.y}
}

// DesiredColumn returns the sticky column.
func (c Cursor) DesiredColumn() int { return c.desiredCol }

// MoveX moves the cursor horizontally. An explicit horizontal move always
// resets the sticky column.
func (c *Cursor) MoveX(delta int) {
	c.x += delta
	c.desiredCol = c.x
}

// MoveY moves the cursor vertically without touching the sticky column.
// Callers snap against the new line afterwards.
func (c *Cursor) MoveY(delta int) {
	c.y += delta
}

// Snap fits the cursor into a line of lineLen columns.
//
// Moving through short lines pulls the cursor left, but the sticky column is
// kept, so a later line that is long enough puts the cursor back at it.
func (c *Cursor) Snap(lineLen int) {
	if c.desiredCol != c.x {
		c.x = min(c.desiredCol, lineLen)
	} else if c.x > lineLen {
		c.x = lineLen
	}
}

// moveTo places the cursor after an edit.
func (c *Cursor) moveTo(pos units.BytePosition) {
	*c = CursorAt(pos.Col, pos.Row)
}
