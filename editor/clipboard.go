package editor

// Clipboard provides text for the paste binding.
//
// Errors are ignored; pasting simply does nothing.
type Clipboard interface {
	ReadText() (string, error)
}
