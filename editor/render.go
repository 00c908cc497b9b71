package editor

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quire/ui"
)

const scratchName = "[scratch]"

func (m Model) View() string {
	if m.screen == nil {
		return m.statusLine()
	}

	m.screen.Clear()
	gutter := m.gutterWidth()
	if gutter > 0 {
		m.drawGutter(m.screen)
	}

	b := m.buffers.Current()
	bounds := ui.NewBounds(ui.Coordinates{X: gutter}, ui.Coordinates{X: m.width, Y: m.screen.Size().Height})
	b.Draw(&ui.Context{Bounds: bounds, Screen: m.screen})

	cursor := ui.Coordinates{X: -1, Y: -1}
	if _, ok := b.Viewport(); ok {
		p := b.CursorPosition()
		cursor = ui.Coordinates{X: p.X + gutter, Y: p.Y}
	}
	return m.screen.Render(m.renderer, cursor) + "\n" + m.statusLine()
}

// statusLine shows the current document and cursor on the left and either a
// message or the key help on the right, fitted to the window width.
func (m Model) statusLine() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	b := m.buffers.Current()
	name := scratchName
	if p := b.Path(); p != "" {
		name = filepath.Base(p)
	}
	left := fmt.Sprintf(" %s  %d/%d", name, m.buffers.Index()+1, m.buffers.Len())
	if s, ok := b.Syntax(); ok {
		left += "  " + s.String()
	}
	left += fmt.Sprintf("  %d:%d ", b.Cursor().Y()+1, b.Cursor().X()+1)

	right := m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
	if m.status != "" {
		right = m.cfg.Style.StatusMessage.Render(m.status)
	}

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left
	if gap > 0 {
		line += fmt.Sprintf("%*s", gap, "") + right
	}
	line = ansi.Truncate(line, m.width, "…")
	if pad := m.width - ansi.StringWidth(line); pad > 0 {
		line += fmt.Sprintf("%*s", pad, "")
	}
	return m.cfg.Style.Status.Render(line)
}
