package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quire/ui"
)

// Style controls the editor's rendering.
type Style struct {
	// Status styles the bottom line. It should not set a width or padding.
	Status        lipgloss.Style
	StatusMessage lipgloss.Style

	LineNumber       ui.Color
	LineNumberActive ui.Color
}

func DefaultStyle() Style {
	return Style{
		Status:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		StatusMessage:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		LineNumber:       ui.NewColor(0x58, 0x58, 0x58),
		LineNumberActive: ui.NewColor(0xbc, 0xbc, 0xbc),
	}
}
