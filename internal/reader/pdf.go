// ABOUTME: PDF reader extracting page text via ledongthuc/pdf
// ABOUTME: Page texts are concatenated and re-chunked by the shared policy
package reader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/models"
)

// PDFReader reads a PDF file from disk.
type PDFReader struct {
	maxChunkChars int
}

// NewPDFReader creates a PDF reader with the given chunk size.
func NewPDFReader(maxChunkChars int) *PDFReader {
	return &PDFReader{maxChunkChars: maxChunkChars}
}

// Read extracts plain text from every page and chunks the whole.
func (r *PDFReader) Read(ctx context.Context, path string) ([]models.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	doc, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("reading pdf: %w", err)
	}

	var sb strings.Builder
	numPages := doc.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return core.SplitChunks(sb.String(), r.maxChunkChars), nil
}
