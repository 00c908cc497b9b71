package editor

import (
	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/internal/logging"
)

// changed reports an edit just applied to b.
func (m Model) changed(b *buffer.Buffer, e buffer.Edit) {
	logging.Default().Debug("buffer edited",
		logging.FieldPath, b.Path(), logging.FieldVersion, b.Version(), logging.FieldRange, e.Range)

	if m.cfg.OnChange == nil {
		return
	}
	if params, ok := b.DidChangeParams(e); ok {
		m.cfg.OnChange(params)
	}
}
