// Package buffer implements the editable document model.
//
// A Buffer owns the text of one document, its cursor, and the state that
// depends on the document: the syntax highlighter and the viewport. Cursor
// and viewport coordinates are (X, Y) with Y the row and X the byte column.
// Motion assumes one byte per column; see Buffer.Delete for the matching
// limitation on edits.
package buffer
