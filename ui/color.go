package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Blue marks the unused left column below the end of a document.
var Blue = NewColor(0x00, 0x00, 0xff)

func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String formats c as a lowercase hex triplet, e.g. "#5f87d7".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lipgloss converts c for use in a lipgloss style.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.String())
}
