package ui

import (
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_String(t *testing.T) {
	assert.Equal(t, "#abcdef", NewColor(0xab, 0xcd, 0xef).String())
	assert.Equal(t, "#000000", NewColor(0, 0, 0).String())
	assert.Equal(t, lipgloss.Color("#0000ff"), Blue.Lipgloss())
}

func TestScreen_Indexing(t *testing.T) {
	s := NewScreen(Size{Width: 3, Height: 3})
	s.Set(0, 0, Cell{Rune: 'a'})
	s.Set(2, 2, Cell{Rune: 'z'})

	assert.Equal(t, 'a', s.cells[0].Rune)
	assert.Equal(t, 'z', s.cells[8].Rune)
	assert.Equal(t, Blank, s.Cell(1, 1))
}

func TestScreen_IndexOutOfBounds(t *testing.T) {
	s := NewScreen(Size{Width: 3, Height: 10})
	require.PanicsWithValue(t, "there are 10 rows but the row is 11", func() { s.Cell(11, 0) })
	require.PanicsWithValue(t, "there are 3 columns but the column is 3", func() { s.Cell(0, 3) })
}

func TestScreen_Rows(t *testing.T) {
	s := NewScreen(Size{Width: 3, Height: 2})
	s.Set(0, 0, Cell{Rune: 'a'})

	var rows [][]Cell
	for row := range s.Rows() {
		rows = append(rows, slices.Clone(row))
	}
	assert.Equal(t, [][]Cell{
		{{Rune: 'a'}, Blank, Blank},
		{Blank, Blank, Blank},
	}, rows)
}

func TestScreen_WriteTruncates(t *testing.T) {
	s := NewScreen(Size{Width: 2, Height: 1})
	s.Write(Coordinates{}, "hello, world")
	assert.Equal(t, "he", s.String())

	s = NewScreen(Size{Width: 4, Height: 1})
	s.Write(Coordinates{X: 3}, "xyz")
	assert.Equal(t, "   x", s.String())
}

func TestScreen_ApplyColorIsEndpointExclusive(t *testing.T) {
	s := NewScreen(Size{Width: 5, Height: 5})
	s.ApplyColor(NewBounds(Coordinates{X: 1, Y: 1}, Coordinates{X: 2, Y: 2}), Blue)

	assert.Nil(t, s.Cell(0, 0).Color)
	require.NotNil(t, s.Cell(1, 1).Color)
	assert.Equal(t, Blue, *s.Cell(1, 1).Color)
	assert.Nil(t, s.Cell(1, 2).Color)
	assert.Nil(t, s.Cell(2, 1).Color)
}

func TestScreen_ApplyColorEmptyBounds(t *testing.T) {
	s := NewScreen(Size{Width: 2, Height: 2})
	s.ApplyColor(NewBounds(Coordinates{X: 1, Y: 0}, Coordinates{X: 1, Y: 2}), Blue)
	for row := range s.Rows() {
		for _, cell := range row {
			assert.Nil(t, cell.Color)
		}
	}
}

func TestScreen_Clear(t *testing.T) {
	s := NewScreen(Size{Width: 2, Height: 1})
	s.Write(Coordinates{}, "ab")
	s.ApplyColor(s.Bounds(), Blue)
	s.Clear()
	assert.Equal(t, Blank, s.Cell(0, 0))
	assert.Equal(t, Blank, s.Cell(0, 1))
}

func TestScreen_Render(t *testing.T) {
	s := NewScreen(Size{Width: 4, Height: 2})
	s.Write(Coordinates{}, "abcd")
	s.Write(Coordinates{Y: 1}, "~")
	s.ApplyColor(NewBounds(Coordinates{X: 0, Y: 1}, Coordinates{X: 1, Y: 2}), Blue)

	t.Run("plain", func(t *testing.T) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)

		assert.Equal(t, "abcd\n~   ", s.Render(r, Coordinates{X: -1, Y: -1}))
	})

	t.Run("true color", func(t *testing.T) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.TrueColor)

		out := s.Render(r, Coordinates{X: 1, Y: 0})
		assert.Equal(t, "abcd\n~   ", ansi.Strip(out))
		assert.True(t, strings.Contains(out, "38;2;0;0;255"), "marker color is emitted: %q", out)
		assert.True(t, strings.Contains(out, "\x1b[7m"), "cursor is reversed: %q", out)
	})
}
