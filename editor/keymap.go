package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	// Backspace deletes one byte; see the package documentation for its
	// ASCII-only limitation.
	Backspace key.Binding
	Enter     key.Binding
	Paste     key.Binding

	NextBuffer, PrevBuffer key.Binding
	CloseBuffer            key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		NextBuffer:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next buffer")),
		PrevBuffer:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous buffer")),
		CloseBuffer: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close buffer")),

		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NextBuffer, k.CloseBuffer}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backspace, k.Enter, k.Paste},
		{k.NextBuffer, k.PrevBuffer, k.CloseBuffer, k.Quit},
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Quit.Keys()) == 0
}
