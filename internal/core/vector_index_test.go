// ABOUTME: Tests for the embedding index, cosine similarity, and top-k retrieval
// ABOUTME: Verifies readiness transitions, partial builds, and ranking order

package core

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/harper/docchat/internal/models"
)

// stubEmbedder maps texts to fixed vectors, failing on demand.
type stubEmbedder struct {
	vectors map[string][]float32
	failOn  string
	calls   int
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.failOn != "" && strings.Contains(text, s.failOn) {
		return nil, errors.New("embedding unavailable")
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"empty a", nil, []float32{1, 2}, 0},
		{"empty b", []float32{1, 2}, nil, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"zero norm", []float32{0, 0}, []float32{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosine_Symmetric(t *testing.T) {
	a := []float32{0.3, 0.8, 0.1}
	b := []float32{0.5, 0.2, 0.9}

	if Cosine(a, b) != Cosine(b, a) {
		t.Error("Cosine is not symmetric")
	}
}

func TestVectorIndex_BuildAndReadiness(t *testing.T) {
	ix := NewVectorIndex(&stubEmbedder{})

	if ix.HasIndex() {
		t.Error("New index should not be ready")
	}

	chunks := []models.Chunk{
		{PageNumber: 1, Text: "alpha"},
		{PageNumber: 2, Text: "   "},
		{PageNumber: 3, Text: "beta"},
	}
	if err := ix.Build(context.Background(), chunks); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !ix.HasIndex() {
		t.Error("Index should be ready after build")
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (blank chunk skipped)", ix.Len())
	}

	ix.Clear()
	if ix.HasIndex() || ix.Len() != 0 {
		t.Error("Clear() did not empty the index")
	}
}

func TestVectorIndex_BuildFailureLeavesPartialState(t *testing.T) {
	ix := NewVectorIndex(&stubEmbedder{failOn: "beta"})

	chunks := []models.Chunk{
		{PageNumber: 1, Text: "alpha"},
		{PageNumber: 2, Text: "beta"},
		{PageNumber: 3, Text: "gamma"},
	}
	err := ix.Build(context.Background(), chunks)
	if err == nil {
		t.Fatal("Expected error from failing embedder")
	}
	if !strings.Contains(err.Error(), "chunk 2") {
		t.Errorf("Error = %v, want wrapped chunk number", err)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (partial state kept)", ix.Len())
	}
}

func TestVectorIndex_BuildWithoutEmbedder(t *testing.T) {
	ix := NewVectorIndex(nil)

	if err := ix.Build(context.Background(), []models.Chunk{{PageNumber: 1, Text: "alpha"}}); err == nil {
		t.Error("Expected error when no embedder is configured")
	}
	if ix.HasIndex() {
		t.Error("Index must stay unready without an embedder")
	}
}

func TestVectorIndex_TopKRanksBySimilarity(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"close":    {1, 0, 0},
		"middling": {0.7, 0.7, 0},
		"far":      {0, 1, 0},
		"question": {1, 0.1, 0},
	}}
	ix := NewVectorIndex(emb)

	chunks := []models.Chunk{
		{PageNumber: 1, Text: "far"},
		{PageNumber: 2, Text: "close"},
		{PageNumber: 3, Text: "middling"},
	}
	if err := ix.Build(context.Background(), chunks); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	top, err := ix.TopK(context.Background(), "question", 2)
	if err != nil {
		t.Fatalf("TopK() error = %v", err)
	}

	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].PageNumber != 2 || top[1].PageNumber != 3 {
		t.Errorf("Top pages = [%d, %d], want [2, 3]", top[0].PageNumber, top[1].PageNumber)
	}
}

func TestVectorIndex_TopKEmbedFailure(t *testing.T) {
	emb := &stubEmbedder{}
	ix := NewVectorIndex(emb)
	if err := ix.Build(context.Background(), []models.Chunk{{PageNumber: 1, Text: "alpha"}}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb.failOn = "question"
	if _, err := ix.TopK(context.Background(), "the question", 2); err == nil {
		t.Error("Expected error when question embedding fails")
	}
}

func TestBuildContext(t *testing.T) {
	got := BuildContext([]models.EmbeddingChunk{
		{Chunk: models.Chunk{PageNumber: 3, Text: "first ranked"}},
		{Chunk: models.Chunk{PageNumber: 1, Text: "second ranked"}},
	})

	if !strings.HasPrefix(got, "CONTEXT:\n--------\n") {
		t.Errorf("Context header missing: %q", got)
	}
	if !strings.Contains(got, "[Chunk p3]\nfirst ranked") {
		t.Errorf("Context missing first chunk: %q", got)
	}
	first := strings.Index(got, "[Chunk p3]")
	second := strings.Index(got, "[Chunk p1]")
	if first > second {
		t.Error("Chunks not in ranked order")
	}
}
