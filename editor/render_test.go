package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iw2rmb/quire/buffer"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := range 120 {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Buffers:         buffer.NewBuffers(buffer.FromString(sb.String())),
		ShowLineNumbers: true,
	}).SetSize(10, 121)

	lines := viewLines(m)
	for i := range 120 {
		if want := fmt.Sprintf("%3d x", i+1); lines[i] != want {
			t.Fatalf("row %d: got %q, want %q", i, lines[i], want)
		}
	}
}
