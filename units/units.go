// Package units defines the coordinate spaces used by the editing core.
//
// Text positions are ambiguous unless the unit is explicit: a column can count
// bytes, codepoints, or terminal cells. Each space gets its own named type so
// that mixing them fails to compile. Conversions between ByteIndex,
// BytePosition and CharPosition go through storage.Storage only.
package units

import "fmt"

// ByteIndex is a 1-D byte offset into the document, lines joined by '\n'.
type ByteIndex int

// ByteRange is a half-open range of byte offsets: [Start, End).
type ByteRange struct {
	Start ByteIndex
	End   ByteIndex
}

// Len returns the number of bytes covered by r.
func (r ByteRange) Len() int { return int(r.End - r.Start) }

// IsEmpty reports whether r covers no bytes.
func (r ByteRange) IsEmpty() bool { return r.Start == r.End }

func (r ByteRange) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// BytePosition is a byte within a row. Row is the line number, Col the byte
// offset within the line.
type BytePosition struct {
	Row int
	Col int
}

func (p BytePosition) String() string { return fmt.Sprintf("(%d:%db)", p.Row, p.Col) }

// CharPosition is a codepoint within a row. Row is the line number, Col the
// number of codepoints preceding the position on that line.
type CharPosition struct {
	Row int
	Col int
}

func (p CharPosition) String() string { return fmt.Sprintf("(%d:%dc)", p.Row, p.Col) }

// CharRange is a half-open range of character positions.
type CharRange struct {
	Start CharPosition
	End   CharPosition
}
