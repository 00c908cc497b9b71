// Package editor hosts buffers in a Bubble Tea program.
//
// Model translates key presses into buffer operations, keeps the active
// buffer sized to the window, draws it through a ui.Screen and reports
// documents to language-server hooks as they are opened and changed.
//
// Backspace calls buffer.Buffer.Delete, which removes a single byte. It only
// supports ASCII text: pressing it right after a multi-byte character such as
// "é" panics. Hosts editing non-ASCII documents should recover or bind
// Backspace to nothing.
package editor
