package units

import "fmt"

// Position is a location in buffer space used for cursor and viewport
// arithmetic. Y is the row, X the column.
type Position struct {
	X int
	Y int
}

// Offset is a translation within buffer space.
type Offset struct {
	DX int
	DY int
}

// Size is a width and height in buffer space.
type Size struct {
	Width  int
	Height int
}

// Span is a rectangular area of text in buffer space.
//
// A Span is endpoint-exclusive: MinX/MinY are inside the area, MaxX/MaxY are
// one past it.
type Span struct {
	Origin Position
	Size   Size
}

// NewSpan returns the span with origin (x, y) and the given size.
// It panics if width or height is not positive.
func NewSpan(x, y, width, height int) Span {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("units: span must have a positive size, got %dx%d", width, height))
	}
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("units: span origin must not be negative, got (%d,%d)", x, y))
	}
	return Span{Origin: Position{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

func (s Span) MinX() int   { return s.Origin.X }
func (s Span) MinY() int   { return s.Origin.Y }
func (s Span) MaxX() int   { return s.Origin.X + s.Size.Width }
func (s Span) MaxY() int   { return s.Origin.Y + s.Size.Height }
func (s Span) Width() int  { return s.Size.Width }
func (s Span) Height() int { return s.Size.Height }

// Contains reports whether p lies inside s.
func (s Span) Contains(p Position) bool {
	return p.X >= s.MinX() && p.X < s.MaxX() && p.Y >= s.MinY() && p.Y < s.MaxY()
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", s.Origin.X, s.Origin.Y, s.Size.Width, s.Size.Height)
}
