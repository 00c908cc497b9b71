package buffer

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// URI returns the document URI of the buffer. ok is false when the buffer
// has no path.
func (b *Buffer) URI() (protocol.DocumentURI, bool) {
	if b.path == "" {
		return "", false
	}
	return protocol.DocumentURI(uri.File(b.path)), true
}

// TextDocumentItem returns the snapshot used to open the document with a
// language server. ok is false unless both the path and syntax are known.
func (b *Buffer) TextDocumentItem() (protocol.TextDocumentItem, bool) {
	u, ok := b.URI()
	if !ok {
		return protocol.TextDocumentItem{}, false
	}
	s, ok := b.Syntax()
	if !ok {
		return protocol.TextDocumentItem{}, false
	}
	return protocol.TextDocumentItem{
		URI:        u,
		LanguageID: s.LanguageID(),
		Version:    b.version,
		Text:       b.storage.String(),
	}, true
}

// VersionedIdentifier identifies the current version of the document.
// ok is false when the buffer has no path.
func (b *Buffer) VersionedIdentifier() (protocol.VersionedTextDocumentIdentifier, bool) {
	u, ok := b.URI()
	if !ok {
		return protocol.VersionedTextDocumentIdentifier{}, false
	}
	return protocol.VersionedTextDocumentIdentifier{
		TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: u},
		Version:                b.version,
	}, true
}

// DidOpenParams returns the textDocument/didOpen notification for the buffer.
func (b *Buffer) DidOpenParams() (*protocol.DidOpenTextDocumentParams, bool) {
	item, ok := b.TextDocumentItem()
	if !ok {
		return nil, false
	}
	return &protocol.DidOpenTextDocumentParams{TextDocument: item}, true
}

// DidChangeParams returns the textDocument/didChange notification carrying
// edits, which must have been applied to the buffer in order.
func (b *Buffer) DidChangeParams(edits ...Edit) (*protocol.DidChangeTextDocumentParams, bool) {
	id, ok := b.VersionedIdentifier()
	if !ok {
		return nil, false
	}
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(edits))
	for _, e := range edits {
		changes = append(changes, e.ChangeEvent())
	}
	return &protocol.DidChangeTextDocumentParams{
		TextDocument:   id,
		ContentChanges: changes,
	}, true
}
