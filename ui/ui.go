// Package ui defines the screen abstraction that widgets draw to.
//
// Screen coordinates start at (0, 0) in the top left corner. Y is the row and
// X the column, both counted in cells.
package ui

import "fmt"

// Coordinates locate a cell on the screen.
type Coordinates struct {
	X int
	Y int
}

// Add returns c translated by other.
func (c Coordinates) Add(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Bounds is a rectangle on the screen. Min is inside the rectangle and Max is
// one past it on both axes.
type Bounds struct {
	Min Coordinates
	Max Coordinates
}

// NewBounds returns the bounds spanning min up to, but not including, max.
func NewBounds(min, max Coordinates) Bounds {
	return Bounds{Min: min, Max: max}
}

// BoundsFromSize returns bounds of the given size anchored at the origin.
func BoundsFromSize(size Size) Bounds {
	return Bounds{Max: Coordinates{X: size.Width, Y: size.Height}}
}

func (b Bounds) Width() int  { return b.Max.X - b.Min.X }
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y }

// Size returns the width and height of b.
func (b Bounds) Size() Size { return Size{Width: b.Width(), Height: b.Height()} }

// IsEmpty reports whether b covers no cells.
func (b Bounds) IsEmpty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Translate returns b moved by offset.
func (b Bounds) Translate(offset Coordinates) Bounds {
	return Bounds{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[(%d,%d)..(%d,%d)]", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// Context is passed to a Drawable when it is rendered.
type Context struct {
	// Bounds is the area the widget may draw within. Drawing outside of it is
	// a bug in the widget.
	Bounds Bounds

	Screen *Screen
}

// Drawable is implemented by anything that can draw itself to a screen.
type Drawable interface {
	Draw(ctx *Context)
}
