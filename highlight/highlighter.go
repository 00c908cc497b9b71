// Package highlight colors buffer text using incremental tree-sitter parses.
//
// A Highlighter starts without a parse tree. The first call to Highlight
// parses the whole document; afterwards each edit reported through OnEdit is
// applied to the previous tree so the next parse reuses unchanged subtrees.
package highlight

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/iw2rmb/quire/internal/grapheme"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/syntax"
	"github.com/iw2rmb/quire/ui"
	"github.com/iw2rmb/quire/units"
)

// Source returns document text starting at pos. It returns the rest of the
// line, "\n" at the end of a line, or nothing once pos is past the last line.
// At column 0 it must return the whole line.
type Source func(pos units.BytePosition) []byte

// Sink receives colored rectangles. Bounds are relative to the viewport.
type Sink interface {
	ApplyColor(bounds ui.Bounds, color ui.Color)
}

// InputEdit describes a change to the document in both byte offsets and
// positions. Start and old end refer to the text before the edit, new end to
// the text after it.
type InputEdit struct {
	StartByte  units.ByteIndex
	OldEndByte units.ByteIndex
	NewEndByte units.ByteIndex

	StartPosition  units.BytePosition
	OldEndPosition units.BytePosition
	NewEndPosition units.BytePosition
}

// Highlighter holds the parser state for one buffer.
type Highlighter struct {
	syntax syntax.Syntax
	parser *sitter.Parser
	query  *sitter.Query

	// tree is nil until the first successful parse.
	tree *sitter.Tree

	// colors holds the resolved color of each capture, indexed by capture id.
	colors []*ui.Color
}

// New builds a highlighter for s. Capture names of the highlight query are
// resolved against theme once, here.
func New(s syntax.Syntax, theme *Theme) (*Highlighter, error) {
	lang, source, err := grammar(s)
	if err != nil {
		return nil, err
	}

	query, err := sitter.NewQuery(source, lang)
	if err != nil {
		return nil, fmt.Errorf("compile %v highlight query: %w", s, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	log := logging.Default()
	colors := make([]*ui.Color, query.CaptureCount())
	for id := range colors {
		name := query.CaptureNameForId(uint32(id))
		color, matched, ok := theme.Resolve(name)
		switch {
		case !ok:
			log.Debug("no color for capture", logging.FieldCapture, name)
			continue
		case matched != name:
			log.Debug("capture color falls back", logging.FieldCapture, name, logging.FieldFallback, matched)
		}
		colors[id] = &color
	}

	return &Highlighter{
		syntax: s,
		parser: parser,
		query:  query,
		colors: colors,
	}, nil
}

// Syntax returns the language the highlighter parses.
func (h *Highlighter) Syntax() syntax.Syntax { return h.syntax }

// Warm reports whether a previous parse tree is available for reuse.
func (h *Highlighter) Warm() bool { return h.tree != nil }

// OnEdit records an edit against the previous tree. It must be called for
// every edit, whether or not a redraw follows. Without a tree it does nothing.
func (h *Highlighter) OnEdit(e InputEdit) {
	if h.tree == nil {
		return
	}
	h.tree.Edit(sitter.EditInput{
		StartIndex:  uint32(e.StartByte),
		OldEndIndex: uint32(e.OldEndByte),
		NewEndIndex: uint32(e.NewEndByte),
		StartPoint:  point(e.StartPosition),
		OldEndPoint: point(e.OldEndPosition),
		NewEndPoint: point(e.NewEndPosition),
	})
}

// Highlight reparses the document pulled from src and reports the colored
// regions visible in viewport to sink. When no tree can be produced the frame
// is left uncolored.
func (h *Highlighter) Highlight(src Source, viewport units.Span, sink Sink) {
	log := logging.Default()

	tree, err := h.parser.ParseInputCtx(context.Background(), h.tree, sitter.Input{
		Read: func(_ uint32, p sitter.Point) []byte {
			return src(units.BytePosition{Row: int(p.Row), Col: int(p.Column)})
		},
	})
	if err != nil || tree == nil {
		log.Warn("parse produced no tree", logging.FieldSyntax, h.syntax, logging.FieldError, err)
		return
	}
	h.tree = tree

	start, end := spanToPoints(viewport)
	qc := sitter.NewQueryCursor()
	qc.SetPointRange(start, end)
	qc.Exec(h.query, tree.RootNode())

	lines := &lineCache{src: src, rows: make(map[int]string)}
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			color := h.colors[c.Index]
			if color == nil {
				continue
			}
			from, to := position(c.Node.StartPoint()), position(c.Node.EndPoint())
			for _, b := range clip(from, to, viewport, lines.column) {
				sink.ApplyColor(b, *color)
			}
		}
	}
}

// clip splits the region from start to end into one rectangle per row,
// clipped to viewport and translated to viewport-local coordinates. Regions
// behave like a text selection: rows between the first and last are covered
// across the whole viewport. Rectangles left without width are dropped.
func clip(start, end units.BytePosition, viewport units.Span, column func(row, col int) int) []ui.Bounds {
	var out []ui.Bounds
	for row := max(start.Row, viewport.MinY()); row <= min(end.Row, viewport.MaxY()-1); row++ {
		startX := viewport.MinX()
		if row == start.Row {
			startX = max(column(row, start.Col), viewport.MinX())
		}
		endX := viewport.MaxX()
		if row == end.Row {
			endX = min(column(row, end.Col), viewport.MaxX())
		}
		if endX <= startX {
			continue
		}

		y := row - viewport.MinY()
		out = append(out, ui.NewBounds(
			ui.Coordinates{X: startX - viewport.MinX(), Y: y},
			ui.Coordinates{X: endX - viewport.MinX(), Y: y + 1},
		))
	}
	return out
}

// spanToPoints returns the point range of the query cursor for span: from
// its top left cell to the right edge of its last row.
func spanToPoints(span units.Span) (sitter.Point, sitter.Point) {
	return sitter.Point{Row: uint32(span.MinY()), Column: uint32(span.MinX())},
		sitter.Point{Row: uint32(span.MaxY() - 1), Column: uint32(span.MaxX())}
}

// lineCache converts byte columns to display columns, fetching each line
// from the source once per frame.
type lineCache struct {
	src  Source
	rows map[int]string
}

func (c *lineCache) line(row int) string {
	if line, ok := c.rows[row]; ok {
		return line
	}
	line := strings.TrimSuffix(string(c.src(units.BytePosition{Row: row})), "\n")
	c.rows[row] = line
	return line
}

func (c *lineCache) column(row, col int) int {
	line := c.line(row)
	return grapheme.Width(line[:min(col, len(line))])
}

func point(p units.BytePosition) sitter.Point {
	return sitter.Point{Row: uint32(p.Row), Column: uint32(p.Col)}
}

func position(p sitter.Point) units.BytePosition {
	return units.BytePosition{Row: int(p.Row), Col: int(p.Column)}
}
