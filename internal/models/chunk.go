// ABOUTME: Chunk types for document segmentation and retrieval
// ABOUTME: Chunks are the atomic unit of indexing, search and answer composition
package models

// Chunk is one bounded, numbered segment of a loaded document's text.
// Page numbers start at 1 and are unique within a single load.
type Chunk struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// EmbeddingChunk pairs a chunk with its embedding vector.
// Owned by the vector index and rebuilt wholesale on each load.
type EmbeddingChunk struct {
	Chunk
	Vector []float32 `json:"vector"`
}

// SearchHit is a keyword search result for a single chunk.
type SearchHit struct {
	PageNumber int    `json:"page_number"`
	Score      int    `json:"score"`
	Snippet    string `json:"snippet"`
}
