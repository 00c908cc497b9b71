package editor

import (
	"github.com/charmbracelet/lipgloss"
	"go.lsp.dev/protocol"

	"github.com/iw2rmb/quire/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Buffers to edit. Nil starts with a single empty buffer.
	Buffers *buffer.Buffers

	KeyMap KeyMap
	Style  Style

	// Renderer styles the screen. Nil uses lipgloss.DefaultRenderer.
	Renderer *lipgloss.Renderer

	ShowLineNumbers bool

	// Clipboard is read by the paste binding. Nil disables pasting from it;
	// bracketed paste from the terminal still works.
	Clipboard Clipboard

	// OnOpen is called by New for every buffer backed by a document with a
	// known language.
	OnOpen func(*protocol.DidOpenTextDocumentParams)

	// OnChange is called after every edit to a buffer backed by a document.
	OnChange func(*protocol.DidChangeTextDocumentParams)
}
