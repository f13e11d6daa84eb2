// ABOUTME: Source kinds for the document readers
// ABOUTME: One kind per reader implementation (PDF pages, Word sections, web chunks)
package models

// SourceKind identifies which content source a session is reading from.
type SourceKind string

const (
	SourcePDF  SourceKind = "pdf"
	SourceWord SourceKind = "word"
	SourceWeb  SourceKind = "web"
)
