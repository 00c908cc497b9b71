package storage

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/iw2rmb/quire/units"
)

func TestFromLines_EmptyIsOneLine(t *testing.T) {
	s := FromLines(nil)
	assert.Equal(t, 1, s.LineCount())
	assert.Equal(t, "", s.Line(0))
	assert.Equal(t, New().String(), s.String())
}

func TestFromString_LineCount(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "a", want: []string{"a"}},
		{text: "a\n", want: []string{"a"}},
		{text: "\na\n", want: []string{"", "a"}},
		{text: "hello\n\n", want: []string{"hello", ""}},
		{text: "a\r\nb", want: []string{"a", "b"}},
		{text: "a\nb\nc", want: []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		s := FromString(tc.text)
		assert.Equal(t, tc.want, slices.Collect(s.Lines()), "FromString(%q)", tc.text)
		assert.Equal(t, max(len(tc.want), 1), s.LineCount())
	}
}

func TestLines_Restartable(t *testing.T) {
	s := FromString("a\nb\nc")
	first := slices.Collect(s.Lines())
	second := slices.Collect(s.Lines())
	assert.Equal(t, first, second)

	var got []string
	for line := range s.Lines() {
		got = append(got, line)
		if line == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestLen_IncludesImpliedNewlines(t *testing.T) {
	assert.Equal(t, 1, New().Len())
	assert.Equal(t, 6, FromString("ab\ncd").Len())
}

func TestLineWidth(t *testing.T) {
	s := FromString(strings.Join([]string{
		"aeioucsz",
		"áéíóúčšž",
		"台北1234",
		"ＱＲＳ12",
		"ｱｲｳ12345",
	}, "\n"))

	for row := range s.LineCount() {
		assert.Equal(t, 8, s.LineWidth(row), "row %d", row)
	}
	assert.Greater(t, len(s.Line(2)), s.LineWidth(2), "width is not byte length")
}

func TestSliceFrom(t *testing.T) {
	s := FromString("abc\n\nd")

	assert.Equal(t, "abc", string(s.SliceFrom(units.BytePosition{Row: 0, Col: 0})))
	assert.Equal(t, "c", string(s.SliceFrom(units.BytePosition{Row: 0, Col: 2})))
	assert.Equal(t, "\n", string(s.SliceFrom(units.BytePosition{Row: 0, Col: 3})))
	assert.Equal(t, "\n", string(s.SliceFrom(units.BytePosition{Row: 1, Col: 0})))
	assert.Equal(t, "d", string(s.SliceFrom(units.BytePosition{Row: 2, Col: 0})))
	assert.Empty(t, s.SliceFrom(units.BytePosition{Row: 3, Col: 0}))
}

func TestSliceFrom_PullsWholeDocument(t *testing.T) {
	s := FromString("fn main() {\n\n    1\n}")

	var sb strings.Builder
	pos := units.BytePosition{}
	for {
		chunk := s.SliceFrom(pos)
		if len(chunk) == 0 {
			break
		}
		sb.Write(chunk)
		if chunk[len(chunk)-1] == '\n' {
			pos = units.BytePosition{Row: pos.Row + 1}
		} else {
			pos.Col += len(chunk)
		}
	}
	assert.Equal(t, s.String(), sb.String())
}

func TestSlice_SameRowOnly(t *testing.T) {
	s := FromString("hello\nworld")
	assert.Equal(t, "ell", s.Slice(units.BytePosition{Row: 0, Col: 1}, units.BytePosition{Row: 0, Col: 4}))
	require.Panics(t, func() {
		s.Slice(units.BytePosition{Row: 0, Col: 1}, units.BytePosition{Row: 1, Col: 1})
	})
}

func TestText_AcrossRows(t *testing.T) {
	s := FromString("ab\ncd\nef")
	assert.Equal(t, "b\ncd\ne", s.Text(units.ByteRange{Start: 1, End: 7}))
	assert.Equal(t, "", s.Text(units.ByteRange{Start: 4, End: 4}))
	assert.Equal(t, s.String(), s.Text(units.ByteRange{Start: 0, End: units.ByteIndex(s.Len())}))
}

func TestPositionOfByte(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, units.BytePosition{}, New().PositionOfByte(0))
	})
	t.Run("after empty line", func(t *testing.T) {
		s := FromString("\na\n")
		assert.Equal(t, units.BytePosition{Row: 1, Col: 0}, s.PositionOfByte(1))
	})
	t.Run("beginning of line", func(t *testing.T) {
		s := FromString("a\nb\nc")
		assert.Equal(t, units.BytePosition{Row: 1, Col: 0}, s.PositionOfByte(2))
	})
	t.Run("end of line", func(t *testing.T) {
		s := FromString("ab\nc")
		assert.Equal(t, units.BytePosition{Row: 0, Col: 2}, s.PositionOfByte(2))
	})
	t.Run("out of range", func(t *testing.T) {
		s := FromString("ab")
		require.PanicsWithValue(t, "storage: byte index 3 out of range (len 3)", func() {
			s.PositionOfByte(3)
		})
	})
}

func TestByteToCharPosition(t *testing.T) {
	s := FromString("aé台b\nx")

	assert.Equal(t, units.CharPosition{Row: 0, Col: 0}, s.ByteToCharPosition(0))
	assert.Equal(t, units.CharPosition{Row: 0, Col: 2}, s.ByteToCharPosition(3))
	assert.Equal(t, units.CharPosition{Row: 0, Col: 3}, s.ByteToCharPosition(6))
	assert.Equal(t, units.CharPosition{Row: 0, Col: 4}, s.ByteToCharPosition(7), "end of line")
	assert.Equal(t, units.CharPosition{Row: 1, Col: 0}, s.ByteToCharPosition(8))

	require.Panics(t, func() { s.ByteToCharPosition(2) }, "inside é")
	require.Panics(t, func() { s.ByteToCharPosition(4) }, "inside 台")
}

func TestReplaceRange(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		r           units.ByteRange
		replacement string
		want        string
	}{
		{
			name: "deletion",
			text: "Goodbye, cruel world!",
			r:    units.ByteRange{Start: 8, End: 14},
			want: "Goodbye, world!\n",
		},
		{
			name:        "middle",
			text:        "a b c\none three\n",
			r:           units.ByteRange{Start: 10, End: 10},
			replacement: "two ",
			want:        "a b c\none two three\n",
		},
		{
			name: "delete newline",
			text: "this is not \none line",
			r:    units.ByteRange{Start: 8, End: 13},
			want: "this is one line\n",
		},
		{
			name:        "replacement contains newlines",
			text:        "ae",
			r:           units.ByteRange{Start: 1, End: 1},
			replacement: "b\nc\nd",
			want:        "ab\nc\nde\n",
		},
		{
			name:        "at end of line",
			text:        "a\n",
			r:           units.ByteRange{Start: 1, End: 1},
			replacement: "b",
			want:        "ab\n",
		},
		{
			name:        "replacement ends with newline",
			text:        "xy",
			r:           units.ByteRange{Start: 1, End: 1},
			replacement: "a\nb\n",
			want:        "xa\nb\ny\n",
		},
		{
			name:        "lone newline splits line",
			text:        "ab",
			r:           units.ByteRange{Start: 1, End: 1},
			replacement: "\n",
			want:        "a\nb\n",
		},
		{
			name:        "replace across several lines",
			text:        "one\ntwo\nthree\nfour",
			r:           units.ByteRange{Start: 2, End: 11},
			replacement: "X\nY",
			want:        "onX\nYee\nfour\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := FromString(tc.text)
			s.ReplaceRange(tc.r, tc.replacement)
			assert.Equal(t, tc.want, s.String())
		})
	}
}

func TestReplaceRange_FinalNewlineIsOutOfBounds(t *testing.T) {
	s := FromString("ab")
	require.Panics(t, func() { s.ReplaceRange(units.ByteRange{Start: 1, End: 3}, "") })
}

func TestReplaceRange_MatchesStringSplice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,8}`), 0, 6).Draw(t, "lines")
		s := FromLines(lines)
		whole := s.String()

		// The final newline is implied and cannot be removed.
		last := len(whole) - 1
		start := rapid.IntRange(0, last).Draw(t, "start")
		end := rapid.IntRange(start, last).Draw(t, "end")
		replacement := rapid.StringMatching(`[xyz\n]{0,6}`).Draw(t, "replacement")

		s.ReplaceRange(units.ByteRange{Start: units.ByteIndex(start), End: units.ByteIndex(end)}, replacement)

		want := whole[:start] + replacement + whole[end:]
		if got := s.String(); got != want {
			t.Fatalf("splice mismatch:\n got: %q\nwant: %q", got, want)
		}
		if got, want := s.Len(), len(whole)+len(replacement)-(end-start); got != want {
			t.Fatalf("len=%d, want %d", got, want)
		}
		readBack := s.Text(units.ByteRange{Start: units.ByteIndex(start), End: units.ByteIndex(start + len(replacement))})
		if readBack != replacement {
			t.Fatalf("read back %q, want %q", readBack, replacement)
		}
		for line := range s.Lines() {
			if strings.Contains(line, "\n") {
				t.Fatalf("line %q contains a newline", line)
			}
		}
	})
}
