package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/units"
)

// wheelLines is how far one wheel step moves the cursor.
const wheelLines = 3

// updateMouse places the cursor on left clicks in the text area. The wheel
// moves the cursor, and the viewport follows it; there is no scrolling
// independent of the cursor.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	b := m.buffers.Current()
	vp, ok := b.Viewport()
	if !ok || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		b.MoveOffset(units.Offset{DY: -wheelLines})
	case tea.MouseButtonWheelDown:
		b.MoveOffset(units.Offset{DY: wheelLines})
	case tea.MouseButtonLeft:
		x := msg.X - m.gutterWidth()
		if x < 0 || x >= vp.Width() || msg.Y < 0 || msg.Y >= vp.Height() {
			return m, nil
		}
		b.SetCursor(vp.MinX()+x, vp.MinY()+msg.Y)
	}
	return m, nil
}
