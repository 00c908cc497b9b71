package buffer

import (
	"errors"
	"fmt"
	"iter"

	"github.com/iw2rmb/quire/internal/loader"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/ui"
	"github.com/iw2rmb/quire/units"
)

// ErrLastBuffer is returned when closing the only open buffer.
var ErrLastBuffer = errors.New("cannot close the last buffer")

// Buffers holds every open buffer and which one is current. There is always
// at least one buffer, and only the current one is visible.
type Buffers struct {
	buffers []*Buffer
	current int
}

// NewBuffers returns a collection holding only b.
func NewBuffers(b *Buffer) *Buffers {
	return &Buffers{buffers: []*Buffer{b}}
}

// FromDocuments opens a buffer per document, in order. Without documents a
// single empty buffer is created. The first buffer becomes current and is
// shown through a viewport the size of bounds.
func FromDocuments(docs []loader.Document, bounds ui.Bounds, opt Options) *Buffers {
	bs := &Buffers{}
	for _, doc := range docs {
		bs.buffers = append(bs.buffers, Open(doc.Path, doc.Lines, opt))
	}
	if len(bs.buffers) == 0 {
		bs.buffers = append(bs.buffers, New())
	}

	if !bounds.IsEmpty() {
		bs.Current().SetViewport(units.NewSpan(0, 0, bounds.Width(), bounds.Height()))
	}
	vp, _ := bs.Current().Viewport()
	logging.Default().Info("active buffer viewport", logging.FieldViewport, vp)
	return bs
}

// Current returns the active buffer.
func (bs *Buffers) Current() *Buffer { return bs.buffers[bs.current] }

// Index returns the position of the active buffer.
func (bs *Buffers) Index() int { return bs.current }

func (bs *Buffers) Len() int { return len(bs.buffers) }

// All iterates over the buffers in order.
func (bs *Buffers) All() iter.Seq2[int, *Buffer] {
	return func(yield func(int, *Buffer) bool) {
		for i, b := range bs.buffers {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Add appends b without changing the current buffer.
func (bs *Buffers) Add(b *Buffer) {
	b.Hide()
	bs.buffers = append(bs.buffers, b)
}

// SetCurrent makes the buffer at index i current. It takes over the viewport
// size of the previously current buffer.
func (bs *Buffers) SetCurrent(i int) error {
	if i < 0 || i >= len(bs.buffers) {
		return fmt.Errorf("buffer index %d out of range [0, %d)", i, len(bs.buffers))
	}
	if i == bs.current {
		return nil
	}
	prev := bs.Current()
	bs.current = i
	bs.handOver(prev)
	return nil
}

// Next makes the following buffer current, wrapping around.
func (bs *Buffers) Next() {
	_ = bs.SetCurrent((bs.current + 1) % len(bs.buffers))
}

// Prev makes the preceding buffer current, wrapping around.
func (bs *Buffers) Prev() {
	_ = bs.SetCurrent((bs.current + len(bs.buffers) - 1) % len(bs.buffers))
}

// Close removes the current buffer. The buffer after it, or the new last
// buffer, becomes current.
func (bs *Buffers) Close() error {
	if len(bs.buffers) == 1 {
		return ErrLastBuffer
	}
	closed := bs.Current()
	bs.buffers = append(bs.buffers[:bs.current], bs.buffers[bs.current+1:]...)
	bs.current = min(bs.current, len(bs.buffers)-1)
	bs.handOver(closed)
	return nil
}

// handOver shows the current buffer at the size prev was shown at.
func (bs *Buffers) handOver(prev *Buffer) {
	vp, visible := prev.Viewport()
	prev.Hide()
	if visible {
		bs.Current().Resize(vp.Size)
	}
}
