// ABOUTME: DOCX reader extracting paragraph text via nguyenthenguyen/docx
// ABOUTME: Paragraphs are concatenated line by line, then chunked
package reader

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/models"
)

// DocxReader reads a .docx file from disk.
type DocxReader struct {
	maxChunkChars int
}

// NewDocxReader creates a DOCX reader with the given chunk size.
func NewDocxReader(maxChunkChars int) *DocxReader {
	return &DocxReader{maxChunkChars: maxChunkChars}
}

var (
	// Paragraph closers in the document XML become line breaks so the
	// chunker can cut on them.
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// Read extracts the document body text, one line per paragraph, and
// chunks the whole.
func (r *DocxReader) Read(ctx context.Context, path string) ([]models.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx: %w", err)
	}
	defer f.Close()

	content := f.Editable().GetContent()
	text := docxToText(content)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text in %q", path)
	}

	return core.SplitChunks(text, r.maxChunkChars), nil
}

// docxToText strips the WordprocessingML markup, keeping one line per
// paragraph and dropping blank lines.
func docxToText(content string) string {
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = decodeEntities(content)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
