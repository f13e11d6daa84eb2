// ABOUTME: Chunker splits extracted document text into bounded, numbered chunks
// ABOUTME: Shared by every content source so retrieval behaves identically regardless of origin
package core

import (
	"strings"

	"github.com/harper/docchat/internal/models"
)

const (
	// DefaultMaxChunkChars is the target chunk size for all readers.
	DefaultMaxChunkChars = 2500

	// minBoundaryCut is the smallest offset at which a newline is taken
	// as a chunk boundary instead of a hard character cut.
	minBoundaryCut = 400
)

// SplitChunks cuts text into chunks of at most maxChars characters,
// numbered from 1. When a slice contains a newline past minBoundaryCut,
// the chunk is cut there to avoid splitting mid-paragraph.
// Empty input yields no chunks.
func SplitChunks(text string, maxChars int) []models.Chunk {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}

	clean := strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
	if clean == "" {
		return nil
	}

	var chunks []models.Chunk
	pageNo := 1
	i := 0

	for i < len(clean) {
		take := maxChars
		if take > len(clean)-i {
			take = len(clean) - i
		}
		chunk := clean[i : i+take]

		if cut := strings.LastIndex(chunk, "\n"); cut > minBoundaryCut {
			chunk = strings.TrimSpace(chunk[:cut])
			take = cut
		}

		chunks = append(chunks, models.Chunk{PageNumber: pageNo, Text: chunk})
		pageNo++

		// Advance at least one character so degenerate input terminates.
		if take < 1 {
			take = 1
		}
		i += take
	}

	return chunks
}
