package buffer

import (
	"go.lsp.dev/protocol"

	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/units"
)

// Edit describes one change applied to a buffer. Edits are produced by the
// buffer's edit operations.
type Edit struct {
	// Range is the replaced byte range in the text before the edit.
	Range units.ByteRange

	// CharRange is Range in characters.
	CharRange units.CharRange

	NewText string
}

// NewEnd returns the byte index just past the inserted text.
func (e Edit) NewEnd() units.ByteIndex {
	return e.Range.Start + units.ByteIndex(len(e.NewText))
}

// ChangeEvent converts e to a language server change notification.
//
// Characters are counted in code points, while the protocol counts UTF-16
// code units. The two disagree for text outside the Basic Multilingual Plane.
func (e Edit) ChangeEvent() protocol.TextDocumentContentChangeEvent {
	return protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: lspPosition(e.CharRange.Start),
			End:   lspPosition(e.CharRange.End),
		},
		Text: e.NewText,
	}
}

func lspPosition(p units.CharPosition) protocol.Position {
	return protocol.Position{Line: uint32(p.Row), Character: uint32(p.Col)}
}

// byteAtCursor returns the byte index of the cursor.
func (b *Buffer) byteAtCursor() units.ByteIndex {
	n := 0
	for row := range b.cursor.y {
		n += len(b.storage.Line(row)) + 1
	}
	return units.ByteIndex(n + b.cursor.x)
}

// Insert inserts r at the cursor and moves the cursor past it.
func (b *Buffer) Insert(r rune) Edit {
	return b.InsertText(string(r))
}

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(text string) Edit {
	at := b.byteAtCursor()
	e := b.edit(units.ByteRange{Start: at, End: at}, text)
	b.cursor.moveTo(b.storage.PositionOfByte(e.NewEnd()))
	b.followCursor()
	return e
}

// Delete removes the byte before the cursor. It reports false, leaving the
// buffer untouched, when the cursor is at the start of the document.
//
// Exactly one byte is removed, which is one character only for ASCII text.
// Deleting after a multi-byte character is not supported.
func (b *Buffer) Delete() (Edit, bool) {
	end := b.byteAtCursor()
	if end == 0 {
		return Edit{}, false
	}

	start := end - 1
	e := b.edit(units.ByteRange{Start: start, End: end}, "")
	b.cursor.moveTo(b.storage.PositionOfByte(start))
	b.followCursor()
	return e, true
}

// edit replaces r with newText, bumps the version and tells the highlighter.
func (b *Buffer) edit(r units.ByteRange, newText string) Edit {
	start := b.storage.PositionOfByte(r.Start)
	oldEnd := b.storage.PositionOfByte(r.End)
	chars := units.CharRange{
		Start: b.storage.ByteToCharPosition(r.Start),
		End:   b.storage.ByteToCharPosition(r.End),
	}

	b.storage.ReplaceRange(r, newText)
	b.version++

	e := Edit{Range: r, CharRange: chars, NewText: newText}
	newEnd := b.storage.PositionOfByte(e.NewEnd())

	if h, ok := b.syntax.(Highlighted); ok {
		h.Highlighter.OnEdit(highlight.InputEdit{
			StartByte:      r.Start,
			OldEndByte:     r.End,
			NewEndByte:     e.NewEnd(),
			StartPosition:  start,
			OldEndPosition: oldEnd,
			NewEndPosition: newEnd,
		})
	}
	return e
}
