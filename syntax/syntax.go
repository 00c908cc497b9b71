// Package syntax identifies the programming language of a document.
package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"go.lsp.dev/protocol"
)

// ErrUnknown is returned when a name does not match a supported syntax.
var ErrUnknown = errors.New("unknown syntax")

// Syntax is a language the editor knows how to highlight.
type Syntax int

const (
	JavaScript Syntax = iota + 1
	Rust
	Go
)

// All lists the supported syntaxes.
var All = []Syntax{JavaScript, Rust, Go}

// enryNames maps go-enry language names to syntaxes.
var enryNames = map[string]Syntax{
	"JavaScript": JavaScript,
	"Rust":       Rust,
	"Go":         Go,
}

// String returns the lowercase name used in configuration and as the language
// server language identifier.
func (s Syntax) String() string {
	switch s {
	case JavaScript:
		return "javascript"
	case Rust:
		return "rust"
	case Go:
		return "go"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// LanguageID returns the language server identifier for s.
func (s Syntax) LanguageID() protocol.LanguageIdentifier {
	return protocol.LanguageIdentifier(s.String())
}

// Parse returns the syntax named name, case-insensitively.
func Parse(name string) (Syntax, error) {
	for _, s := range All {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Syntax) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Syntax) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Identify returns the syntax of the file at path. The extension decides
// first; when it is unknown, a shebang in the first line of content is
// consulted. The second result is false for plain text or unsupported
// languages.
func Identify(path string, firstLine []byte) (Syntax, bool) {
	for _, lang := range enry.GetLanguagesByExtension(path, nil, nil) {
		if s, ok := enryNames[lang]; ok {
			return s, true
		}
	}
	if len(firstLine) > 0 {
		for _, lang := range enry.GetLanguagesByShebang(path, firstLine, nil) {
			if s, ok := enryNames[lang]; ok {
				return s, true
			}
		}
	}
	return 0, false
}
