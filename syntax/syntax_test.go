package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestIdentify(t *testing.T) {
	cases := []struct {
		path  string
		first string
		want  Syntax
		ok    bool
	}{
		{path: "/src/main.rs", want: Rust, ok: true},
		{path: "lib/index.js", want: JavaScript, ok: true},
		{path: "cmd/quire/main.go", want: Go, ok: true},
		{path: "README.md"},
		{path: "Makefile"},
		{path: "bin/run", first: "#!/usr/bin/env node", want: JavaScript, ok: true},
		{path: "bin/run", first: "#!/bin/sh"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := Identify(tc.path, []byte(tc.first))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	for _, s := range All {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := Parse("Rust")
	require.NoError(t, err)
	assert.Equal(t, Rust, got)

	_, err = Parse("cobol")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestUnmarshalText(t *testing.T) {
	var s Syntax
	require.NoError(t, s.UnmarshalText([]byte("javascript")))
	assert.Equal(t, JavaScript, s)
	require.Error(t, s.UnmarshalText([]byte("")))

	text, err := Go.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "go", string(text))
}

func TestLanguageID(t *testing.T) {
	assert.Equal(t, protocol.LanguageIdentifier("rust"), Rust.LanguageID())
	assert.Equal(t, protocol.LanguageIdentifier("javascript"), JavaScript.LanguageID())
	assert.Equal(t, "Syntax(0)", Syntax(0).String())
}
