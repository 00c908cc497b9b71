package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_SplitsLines(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		content string
		want    []string
	}{
		{content: "a\nb\n", want: []string{"a", "b"}},
		{content: "a\nb", want: []string{"a", "b"}},
		{content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{content: "\n\n", want: []string{"", ""}},
		{content: "", want: nil},
	}
	for i, tc := range cases {
		path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i)), tc.content)
		doc, err := Read(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, tc.want, doc.Lines, "%q", tc.content)
		assert.True(t, doc.Exists)
	}
}

func TestRead_MissingFileIsOneEmptyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.rs")

	doc, err := Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, doc.Lines)
	assert.False(t, doc.Exists)
	assert.Equal(t, path, doc.Path)
}

func TestRead_RelativePathBecomesAbsolute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	t.Chdir(dir)

	doc, err := Read(context.Background(), "main.go")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(doc.Path))
	assert.Equal(t, "main.go", filepath.Base(doc.Path))
	assert.Equal(t, []string{"package main"}, doc.Lines)
}

func TestRead_DirectoryFails(t *testing.T) {
	_, err := Read(context.Background(), t.TempDir())
	require.Error(t, err)
}

func TestLoad_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := range 20 {
		name := string(rune('a'+i)) + ".txt"
		paths = append(paths, writeFile(t, dir, name, name))
	}
	paths = append(paths, filepath.Join(dir, "missing.txt"))

	docs, err := Load(context.Background(), paths, 4)
	require.NoError(t, err)
	require.Len(t, docs, len(paths))
	for i, doc := range docs[:20] {
		assert.Equal(t, paths[i], doc.Path)
		assert.Equal(t, []string{filepath.Base(paths[i])}, doc.Lines)
	}
	assert.False(t, docs[20].Exists)
}

func TestLoad_FailureAbortsAll(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.txt", "ok")

	_, err := Load(context.Background(), []string{ok, dir}, 0)
	require.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	docs, err := Load(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
