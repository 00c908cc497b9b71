package buffer

import (
	"fmt"
	"path/filepath"

	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/storage"
	"github.com/iw2rmb/quire/syntax"
	"github.com/iw2rmb/quire/units"
)

// Options configures buffers opened from documents.
type Options struct {
	// Theme colors highlighted buffers. Nil uses highlight.DefaultTheme.
	Theme *highlight.Theme

	// NoHighlight keeps buffers with a known syntax in the PlainSyntax state.
	NoHighlight bool
}

func (o Options) theme() *highlight.Theme {
	if o.NoHighlight {
		return nil
	}
	if o.Theme == nil {
		return highlight.DefaultTheme()
	}
	return o.Theme
}

// Buffer is an in-memory view of a document.
type Buffer struct {
	// path is absolute, or empty for a buffer not backed by a file.
	path    string
	storage *storage.Storage

	// version increases by one with every applied edit.
	version int32

	// cursor is in document space; the viewport origin turns it into a screen
	// position.
	cursor Cursor

	syntax SyntaxState
	view   ViewState
}

// New returns an empty, hidden buffer with no path.
func New() *Buffer {
	return newBuffer("", storage.New())
}

// FromString returns a hidden buffer holding text.
func FromString(text string) *Buffer {
	return newBuffer("", storage.FromString(text))
}

func newBuffer(path string, st *storage.Storage) *Buffer {
	return &Buffer{
		path:    path,
		storage: st,
		syntax:  NoSyntax{},
		view:    Hidden{},
	}
}

// Open returns a hidden buffer for the document at path holding lines. The
// syntax is identified from the path. It panics if path is not absolute.
func Open(path string, lines []string, opt Options) *Buffer {
	if !filepath.IsAbs(path) {
		panic(fmt.Sprintf("buffer: path must be absolute, got %q", path))
	}

	log := logging.Default()
	log.Info("creating buffer", logging.FieldPath, path, logging.FieldLines, len(lines))

	b := newBuffer(path, storage.FromLines(lines))

	var first []byte
	if len(lines) > 0 {
		first = []byte(lines[0])
	}
	if s, ok := syntax.Identify(path, first); ok {
		log.Info("syntax identified", logging.FieldPath, path, logging.FieldSyntax, s)
		b.SetSyntax(s, opt.theme())
	}
	return b
}

// Path returns the absolute path of the document, or "" if there is none.
func (b *Buffer) Path() string { return b.path }

func (b *Buffer) Version() int32 { return b.version }

func (b *Buffer) Cursor() Cursor { return b.cursor }

// SetCursor places the cursor at column x of row y, clamped to the document.
// The viewport follows.
func (b *Buffer) SetCursor(x, y int) {
	y = clamp(y, 0, b.storage.LineCount()-1)
	x = clamp(x, 0, len(b.storage.Line(y)))
	b.cursor = CursorAt(x, y)
	b.followCursor()
}

// Text returns the document with every line terminated by '\n'.
func (b *Buffer) Text() string { return b.storage.String() }

func (b *Buffer) LineCount() int { return b.storage.LineCount() }

// Line returns the text of row without its newline.
func (b *Buffer) Line(row int) string { return b.storage.Line(row) }

// SyntaxState returns the language state of the buffer.
func (b *Buffer) SyntaxState() SyntaxState { return b.syntax }

// Syntax returns the language of the buffer, if known.
func (b *Buffer) Syntax() (syntax.Syntax, bool) {
	switch s := b.syntax.(type) {
	case PlainSyntax:
		return s.Syntax, true
	case Highlighted:
		return s.Syntax, true
	default:
		return 0, false
	}
}

// SetSyntax sets the language of the buffer. With a theme the buffer is
// highlighted; a nil theme, or a highlighter that cannot be built, leaves the
// syntax known but unhighlighted.
func (b *Buffer) SetSyntax(s syntax.Syntax, theme *highlight.Theme) {
	if theme == nil {
		b.syntax = PlainSyntax{Syntax: s}
		return
	}

	h, err := highlight.New(s, theme)
	if err != nil {
		logging.Default().Warn("highlighting disabled",
			logging.FieldPath, b.path, logging.FieldSyntax, s, logging.FieldError, err)
		b.syntax = PlainSyntax{Syntax: s}
		return
	}
	b.syntax = Highlighted{Syntax: s, Highlighter: h}
}

// ClearSyntax forgets the language of the buffer.
func (b *Buffer) ClearSyntax() { b.syntax = NoSyntax{} }

// View returns the visibility of the buffer.
func (b *Buffer) View() ViewState { return b.view }

// Viewport returns the visible span. ok is false for a hidden buffer.
func (b *Buffer) Viewport() (units.Span, bool) {
	v, ok := b.view.(Visible)
	return v.Viewport, ok
}

// SetViewport makes the buffer visible through span.
func (b *Buffer) SetViewport(span units.Span) {
	if span.Width() <= 0 || span.Height() <= 0 {
		panic(fmt.Sprintf("buffer: viewport must have a positive size, got %v", span))
	}
	b.view = Visible{Viewport: span}
}

// Resize changes the size of the viewport, keeping its origin where possible,
// and scrolls to keep the cursor in view. A hidden buffer becomes visible at
// the top left of the document.
func (b *Buffer) Resize(size units.Size) {
	origin := units.Position{}
	if v, ok := b.view.(Visible); ok {
		origin = v.Viewport.Origin
	}
	b.SetViewport(units.NewSpan(origin.X, origin.Y, size.Width, size.Height))
	b.followCursor()
}

// Hide removes the viewport.
func (b *Buffer) Hide() { b.view = Hidden{} }

// CursorPosition returns the cursor position relative to the viewport.
// It panics if the buffer is hidden.
func (b *Buffer) CursorPosition() units.Position {
	v, ok := b.view.(Visible)
	if !ok {
		panic("buffer: cursor position requested for a hidden buffer")
	}
	return units.Position{
		X: b.cursor.x - v.Viewport.MinX(),
		Y: b.cursor.y - v.Viewport.MinY(),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
