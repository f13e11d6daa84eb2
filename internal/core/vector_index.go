// ABOUTME: Embedding index and vector retriever with cosine similarity ranking
// ABOUTME: Rebuilt wholesale per load; HasIndex is the readiness signal
package core

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/harper/docchat/internal/models"
)

// DefaultTopK is how many chunks feed the completion context by default.
const DefaultTopK = 4

// Embedder is the external embedding capability. Implementations must
// return an error on transport or non-success-status failure.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex holds per-chunk embedding vectors for the current load.
type VectorIndex struct {
	embedder Embedder
	chunks   []models.EmbeddingChunk
}

// NewVectorIndex creates an empty index over the given embedder.
// embedder may be nil; the index then never becomes ready.
func NewVectorIndex(embedder Embedder) *VectorIndex {
	return &VectorIndex{embedder: embedder}
}

// HasIndex reports whether at least one chunk has been embedded.
func (ix *VectorIndex) HasIndex() bool {
	return len(ix.chunks) > 0
}

// Len returns the number of embedded chunks.
func (ix *VectorIndex) Len() int {
	return len(ix.chunks)
}

// Clear drops all embedded chunks.
func (ix *VectorIndex) Clear() {
	ix.chunks = nil
}

// Build clears the index and embeds every non-empty chunk in order.
// A mid-build failure returns the error and leaves the index in the
// partial state the loop reached; callers treat HasIndex as readiness.
func (ix *VectorIndex) Build(ctx context.Context, chunks []models.Chunk) error {
	ix.Clear()
	if ix.embedder == nil {
		return fmt.Errorf("no embedding capability configured")
	}

	for _, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		vec, err := ix.embedder.Embed(ctx, c.Text)
		if err != nil {
			return fmt.Errorf("embedding chunk %d: %w", c.PageNumber, err)
		}
		ix.chunks = append(ix.chunks, models.EmbeddingChunk{Chunk: c, Vector: vec})
	}
	return nil
}

// TopK embeds the question and returns the k most similar chunks in
// descending-similarity order. An embedding failure aborts the whole
// retrieval.
func (ix *VectorIndex) TopK(ctx context.Context, question string, k int) ([]models.EmbeddingChunk, error) {
	if ix.embedder == nil {
		return nil, fmt.Errorf("no embedding capability configured")
	}
	if k <= 0 {
		k = DefaultTopK
	}

	qvec, err := ix.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	type scored struct {
		chunk models.EmbeddingChunk
		score float64
	}
	ranked := make([]scored, 0, len(ix.chunks))
	for _, c := range ix.chunks {
		ranked = append(ranked, scored{chunk: c, score: Cosine(qvec, c.Vector)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	out := make([]models.EmbeddingChunk, len(ranked))
	for i, r := range ranked {
		out[i] = r.chunk
	}
	return out, nil
}

// BuildContext concatenates the chosen chunks into the context block the
// completion capability answers from, in descending-similarity order.
func BuildContext(chunks []models.EmbeddingChunk) string {
	var sb strings.Builder
	sb.WriteString("CONTEXT:\n")
	sb.WriteString("--------\n")
	for _, c := range chunks {
		fmt.Fprintf(&sb, "[Chunk p%d]\n%s\n\n", c.PageNumber, c.Text)
	}
	return sb.String()
}

// Cosine is the normalized dot product of a and b. Defined as 0 when
// either vector is empty, lengths mismatch, or either norm is zero.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom <= 0 {
		return 0
	}
	return dot / denom
}
