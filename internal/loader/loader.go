// Package loader reads documents from disk before they are handed to buffers.
package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/quire/internal/logging"
)

// maxLineLen bounds the length of a single line.
const maxLineLen = 16 * 1024 * 1024

// Document is the content of one file, split into lines.
type Document struct {
	// Path is absolute.
	Path string

	// Lines never contain '\n'. A missing file is a single empty line.
	Lines []string

	// Exists is false when the file was not found.
	Exists bool
}

// Load reads paths concurrently and returns their documents in the same
// order. Relative paths are resolved against the working directory. The
// first failure cancels the remaining reads.
func Load(ctx context.Context, paths []string, jobs int) ([]Document, error) {
	docs := make([]Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			doc, err := Read(ctx, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Read returns the document at path.
func Read(ctx context.Context, path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	log := logging.FromContext(ctx)

	f, err := os.Open(abs)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("file does not exist", logging.FieldPath, abs)
		return Document{Path: abs, Lines: []string{""}}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", abs, err)
	}
	defer f.Close()

	lines, err := readLines(ctx, f)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", abs, err)
	}
	log.Info("read file", logging.FieldPath, abs, logging.FieldLines, len(lines))
	return Document{Path: abs, Lines: lines, Exists: true}, nil
}

func readLines(ctx context.Context, f *os.File) ([]string, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	var lines []string
	for scanner.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
