// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field names for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldPaths   = "paths"
	FieldLines   = "lines"
	FieldSyntax  = "syntax"
	FieldVersion = "version"

	// Highlighting fields.
	FieldCapture  = "capture"
	FieldFallback = "fallback"
	FieldColor    = "color"
	FieldViewport = "viewport"

	// Editor fields.
	FieldWidth  = "width"
	FieldHeight = "height"
	FieldBuffer = "buffer"
	FieldRange  = "range"

	// Document fields.
	FieldServer  = "server"
	FieldChanges = "changes"
)
