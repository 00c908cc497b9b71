// Package storage implements the line-oriented text store behind a buffer.
//
// A Storage holds at least one line. Lines never contain '\n'; a newline is
// implied after every line, the last one included, so the byte length of a
// document is the sum of len(line)+1 over its lines.
package storage

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/quire/internal/grapheme"
	"github.com/iw2rmb/quire/units"
)

// Storage is the contents of a buffer.
type Storage struct {
	lines []string
}

// New returns a Storage with a single empty line.
func New() *Storage {
	return &Storage{lines: []string{""}}
}

// FromLines returns a Storage holding lines. An empty slice yields a single
// empty line. Lines must not contain '\n'.
func FromLines(lines []string) *Storage {
	if len(lines) == 0 {
		return New()
	}
	return &Storage{lines: append([]string(nil), lines...)}
}

// FromString splits text into lines. A trailing newline does not start an
// extra line and "\r\n" endings are treated as "\n".
func FromString(text string) *Storage {
	return FromLines(splitLines(text))
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// LineCount returns the number of lines.
func (s *Storage) LineCount() int { return len(s.lines) }

// Len returns the total byte length, including the implied newlines.
func (s *Storage) Len() int {
	n := 0
	for _, line := range s.lines {
		n += len(line) + 1
	}
	return n
}

// Line returns the text of row, without its newline.
func (s *Storage) Line(row int) string { return s.lines[row] }

// LineWidth returns the width of row in terminal cells.
func (s *Storage) LineWidth(row int) int {
	return grapheme.Width(s.lines[row])
}

// Lines iterates over the lines in order. The sequence can be ranged over
// more than once.
func (s *Storage) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range s.lines {
			if !yield(line) {
				return
			}
		}
	}
}

// SliceFrom returns text starting at pos. The slice may have any length: it
// is the rest of the line, "\n" when pos is at the end of its line, or empty
// once pos.Row is past the last line.
func (s *Storage) SliceFrom(pos units.BytePosition) []byte {
	if pos.Row == len(s.lines) {
		return nil
	}
	line := s.lines[pos.Row]
	if pos.Col == len(line) {
		return []byte{'\n'}
	}
	return []byte(line[pos.Col:])
}

// Slice returns the text between two positions on the same row.
func (s *Storage) Slice(start, end units.BytePosition) string {
	if start.Row != end.Row {
		panic(fmt.Sprintf("storage: cannot slice across rows: %v..%v", start, end))
	}
	return s.lines[start.Row][start.Col:end.Col]
}

// Text returns the bytes covered by r, newlines included.
func (s *Storage) Text(r units.ByteRange) string {
	var sb strings.Builder
	sb.Grow(r.Len())
	offset := 0
	for _, line := range s.lines {
		lineStart, lineEnd := offset, offset+len(line)+1
		offset = lineEnd
		if lineEnd <= int(r.Start) {
			continue
		}
		if lineStart >= int(r.End) {
			break
		}
		from := max(int(r.Start)-lineStart, 0)
		to := min(int(r.End)-lineStart, len(line)+1)
		if to > len(line) {
			sb.WriteString(line[from:])
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(line[from:to])
	}
	return sb.String()
}

// String returns the document with every line terminated by '\n'.
func (s *Storage) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for _, line := range s.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PositionOfByte returns the row and column of a byte index.
// It panics if b is not less than Len.
func (s *Storage) PositionOfByte(b units.ByteIndex) units.BytePosition {
	if n := s.Len(); b < 0 || int(b) >= n {
		panic(fmt.Sprintf("storage: byte index %d out of range (len %d)", b, n))
	}

	remaining := int(b)
	for row, line := range s.lines {
		if remaining <= len(line) {
			return units.BytePosition{Row: row, Col: remaining}
		}
		remaining -= len(line) + 1
	}
	panic("unreachable")
}

// ByteToCharPosition returns the character position of a byte index. The byte
// must lie on a character boundary; the newline at the end of a line counts as
// one character.
func (s *Storage) ByteToCharPosition(b units.ByteIndex) units.CharPosition {
	pos := s.PositionOfByte(b)
	line := s.lines[pos.Row]

	if pos.Col < len(line) && !utf8.RuneStart(line[pos.Col]) {
		panic(fmt.Sprintf("storage: byte index %d is not on a character boundary", b))
	}
	return units.CharPosition{Row: pos.Row, Col: utf8.RuneCountInString(line[:pos.Col])}
}

// ReplaceRange replaces the bytes in r with replacement, like splicing the
// document joined by '\n'. The range must not include the newline after the
// last line.
func (s *Storage) ReplaceRange(r units.ByteRange, replacement string) {
	if r.End < r.Start {
		panic(fmt.Sprintf("storage: inverted range %v", r))
	}
	if n := s.Len(); r.Start < 0 || int(r.End) >= n {
		panic(fmt.Sprintf("storage: range %v out of bounds (len %d)", r, n))
	}

	// Find the line containing the start of the range and the offset into it.
	row := 0
	offset := int(r.Start)
	for offset > len(s.lines[row]) {
		offset -= len(s.lines[row]) + 1
		row++
	}

	// Delete the range, joining lines whenever a newline is consumed.
	toConsume := r.Len()
	for toConsume > 0 {
		line := s.lines[row]
		n := min(len(line)-offset, toConsume)
		s.lines[row] = line[:offset] + line[offset+n:]
		toConsume -= n

		if toConsume > 0 {
			s.lines[row] += s.lines[row+1]
			s.lines = append(s.lines[:row+1], s.lines[row+2:]...)
			toConsume--
		}
	}

	if !strings.Contains(replacement, "\n") {
		line := s.lines[row]
		s.lines[row] = line[:offset] + replacement + line[offset:]
		return
	}

	// Split the line at the insertion point. The first inserted line joins the
	// head, the last joins the tail and the rest stand alone in between.
	head, tail := s.lines[row][:offset], s.lines[row][offset:]
	parts := strings.Split(replacement, "\n")

	inserted := make([]string, 0, len(parts))
	inserted = append(inserted, head+parts[0])
	inserted = append(inserted, parts[1:len(parts)-1]...)
	inserted = append(inserted, parts[len(parts)-1]+tail)

	out := make([]string, 0, len(s.lines)+len(inserted)-1)
	out = append(out, s.lines[:row]...)
	out = append(out, inserted...)
	out = append(out, s.lines[row+1:]...)
	s.lines = out
}
