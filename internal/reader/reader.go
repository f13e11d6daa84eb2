// ABOUTME: Document source readers turning a path or URL into ordered chunks
// ABOUTME: Every reader funnels its extracted text through the shared chunker
package reader

import (
	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/models"
)

// Readers builds the standard reader set, one per source kind, all using
// the same chunking policy.
func Readers(maxChunkChars int) map[models.SourceKind]core.DocumentReader {
	if maxChunkChars <= 0 {
		maxChunkChars = core.DefaultMaxChunkChars
	}
	return map[models.SourceKind]core.DocumentReader{
		models.SourcePDF:  NewPDFReader(maxChunkChars),
		models.SourceWord: NewDocxReader(maxChunkChars),
		models.SourceWeb:  NewWebReader(maxChunkChars),
	}
}
