package buffer

import (
	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/syntax"
	"github.com/iw2rmb/quire/units"
)

// SyntaxState is the language state of a buffer: NoSyntax, PlainSyntax or
// Highlighted.
type SyntaxState interface {
	syntaxState()
}

// NoSyntax means the language of the buffer is unknown or plain text.
type NoSyntax struct{}

// PlainSyntax means the language is known but nothing highlights it.
type PlainSyntax struct {
	Syntax syntax.Syntax
}

// Highlighted means the language is known and a highlighter tracks every edit.
type Highlighted struct {
	Syntax      syntax.Syntax
	Highlighter *highlight.Highlighter
}

func (NoSyntax) syntaxState()    {}
func (PlainSyntax) syntaxState() {}
func (Highlighted) syntaxState() {}

// ViewState is the visibility of a buffer: Hidden or Visible.
type ViewState interface {
	viewState()
}

// Hidden buffers have no viewport and draw nothing.
type Hidden struct{}

// Visible buffers show the part of the document inside Viewport.
type Visible struct {
	Viewport units.Span
}

func (Hidden) viewState()  {}
func (Visible) viewState() {}
