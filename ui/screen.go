package ui

import (
	"fmt"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is a single character on the screen.
type Cell struct {
	Rune rune

	// Color is the foreground color, nil when the cell is uncolored.
	Color *Color
}

// Blank is the cell a Screen is filled with.
var Blank = Cell{Rune: ' '}

// Screen is an in-memory grid of cells. It knows nothing about terminals;
// Render turns it into a string for a host to print.
type Screen struct {
	size  Size
	cells []Cell
}

// NewScreen returns a screen of the given size filled with blank cells.
func NewScreen(size Size) *Screen {
	s := &Screen{size: size, cells: make([]Cell, size.Width*size.Height)}
	s.Clear()
	return s
}

func (s *Screen) Size() Size { return s.size }

// Bounds returns the bounds covering the whole screen.
func (s *Screen) Bounds() Bounds { return BoundsFromSize(s.size) }

// Clear resets every cell to Blank.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Blank
	}
}

// Cell returns the cell at row and col.
// It panics if either is out of bounds.
func (s *Screen) Cell(row, col int) Cell {
	return s.cells[s.index(row, col)]
}

// Set replaces the cell at row and col.
// It panics if either is out of bounds.
func (s *Screen) Set(row, col int, cell Cell) {
	s.cells[s.index(row, col)] = cell
}

// Rows iterates over the rows of the screen from top to bottom. The yielded
// slices alias the screen and must not be retained.
func (s *Screen) Rows() iter.Seq[[]Cell] {
	return func(yield func([]Cell) bool) {
		for row := range s.size.Height {
			start := row * s.size.Width
			if !yield(s.cells[start : start+s.size.Width]) {
				return
			}
		}
	}
}

// Write puts text on the screen starting at at, one rune per cell. Text that
// runs past the right edge is truncated. Colors are left untouched.
func (s *Screen) Write(at Coordinates, text string) {
	x := at.X
	for _, r := range text {
		if x >= s.size.Width {
			return
		}
		s.cells[s.index(at.Y, x)].Rune = r
		x++
	}
}

// ApplyColor sets the foreground color of every cell within bounds.
func (s *Screen) ApplyColor(bounds Bounds, color Color) {
	c := color
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s.cells[s.index(y, x)].Color = &c
		}
	}
}

// String returns the runes on the screen, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.size.Height)
	first := true
	for row := range s.Rows() {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// Render styles the screen with r. Consecutive cells sharing a color are
// rendered as one run. The cell under cursor is shown in reverse video; pass
// coordinates outside the screen to hide it.
func (s *Screen) Render(r *lipgloss.Renderer, cursor Coordinates) string {
	var sb strings.Builder
	y := 0
	for row := range s.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for start := 0; start < len(row); {
			end := start + 1
			atCursor := cursor == Coordinates{X: start, Y: y}
			if !atCursor {
				for end < len(row) && sameColor(row[start].Color, row[end].Color) &&
					cursor != (Coordinates{X: end, Y: y}) {
					end++
				}
			}

			style := r.NewStyle()
			if c := row[start].Color; c != nil {
				style = style.Foreground(c.Lipgloss())
			}
			if atCursor {
				style = style.Reverse(true)
			}
			sb.WriteString(style.Render(runes(row[start:end])))
			start = end
		}
		y++
	}
	return sb.String()
}

func (s *Screen) index(row, col int) int {
	if row < 0 || row >= s.size.Height {
		panic(fmt.Sprintf("there are %d rows but the row is %d", s.size.Height, row))
	}
	if col < 0 || col >= s.size.Width {
		panic(fmt.Sprintf("there are %d columns but the column is %d", s.size.Width, col))
	}
	return row*s.size.Width + col
}

func sameColor(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func runes(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
