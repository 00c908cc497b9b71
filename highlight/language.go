package highlight

import (
	"embed"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/iw2rmb/quire/syntax"
)

//go:embed queries/*.scm
var queries embed.FS

// grammar returns the tree-sitter language and highlight query for s.
func grammar(s syntax.Syntax) (*sitter.Language, []byte, error) {
	var (
		lang *sitter.Language
		file string
	)
	switch s {
	case syntax.JavaScript:
		lang, file = javascript.GetLanguage(), "javascript.scm"
	case syntax.Rust:
		lang, file = rust.GetLanguage(), "rust.scm"
	case syntax.Go:
		lang, file = golang.GetLanguage(), "go.scm"
	default:
		return nil, nil, fmt.Errorf("no grammar for %v", s)
	}

	query, err := queries.ReadFile("queries/" + file)
	if err != nil {
		return nil, nil, fmt.Errorf("read highlight query for %v: %w", s, err)
	}
	return lang, query, nil
}
