package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/internal/logging"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	b := m.buffers.Current()

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(b, string(msg.Runes))
		m.layout()
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Left):
		b.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		b.Move(buffer.DirRight)
	case key.Matches(msg, km.Up):
		b.Move(buffer.DirUp)
	case key.Matches(msg, km.Down):
		b.Move(buffer.DirDown)

	case key.Matches(msg, km.Backspace):
		if e, ok := b.Delete(); ok {
			m.changed(b, e)
		}
	case key.Matches(msg, km.Enter):
		m.changed(b, b.Insert('\n'))
	case key.Matches(msg, km.Paste):
		m.pasteClipboard(b)

	case key.Matches(msg, km.NextBuffer):
		m.buffers.Next()
	case key.Matches(msg, km.PrevBuffer):
		m.buffers.Prev()
	case key.Matches(msg, km.CloseBuffer):
		if err := m.buffers.Close(); err != nil {
			m.status = err.Error()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(b, string(msg.Runes))
		}
	}

	m.layout()
	return m, nil
}

func (m Model) pasteClipboard(b *buffer.Buffer) {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		logging.Default().Debug("clipboard read failed", logging.FieldError, err)
		return
	}
	m.insert(b, s)
}

// insert adds text from outside the editor at the cursor.
func (m Model) insert(b *buffer.Buffer, s string) {
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return
	}
	m.changed(b, b.InsertText(s))
}
