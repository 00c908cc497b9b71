package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_EndpointExclusive(t *testing.T) {
	s := NewSpan(1, 2, 3, 4)

	assert.Equal(t, 1, s.MinX())
	assert.Equal(t, 2, s.MinY())
	assert.Equal(t, 4, s.MaxX())
	assert.Equal(t, 6, s.MaxY())

	assert.True(t, s.Contains(Position{X: 1, Y: 2}))
	assert.True(t, s.Contains(Position{X: 3, Y: 5}))
	assert.False(t, s.Contains(Position{X: 4, Y: 5}), "max x is exclusive")
	assert.False(t, s.Contains(Position{X: 3, Y: 6}), "max y is exclusive")
}

func TestNewSpan_RejectsEmptyOrNegative(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h int
	}{
		{name: "zero width", w: 0, h: 1},
		{name: "zero height", w: 1, h: 0},
		{name: "negative origin", x: -1, w: 1, h: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { NewSpan(tc.x, tc.y, tc.w, tc.h) })
		})
	}
}

func TestByteRange_Len(t *testing.T) {
	r := ByteRange{Start: 3, End: 8}
	assert.Equal(t, 5, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, ByteRange{Start: 2, End: 2}.IsEmpty())
	assert.Equal(t, "3..8", r.String())
}
