package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks kbase/internal/vectorstore VectorStore

import "context"

// Point is a chunk ready for indexing: its logical id, text, embedding, and
// provenance metadata.
type Point struct {
	ChunkID string // "{sourceId}_{index}"
	Text    string
	Vec     []float32
	Meta    map[string]any // source_id, source_type, title, category
}

// QueryResult is one retrieval hit, most-similar hits carry the highest
// score (cosine similarity).
type QueryResult struct {
	ChunkID string
	Text    string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or replaces points in the collection. Writing an
	// existing chunk id replaces its text, vector, and metadata.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Query returns up to topK entries ordered most similar first. Fewer
	// than topK stored entries is not an error.
	Query(ctx context.Context, collection string, vector []float32, topK int) ([]QueryResult, error)

	// DeleteBySource removes every point whose source_id metadata matches.
	// Deleting a source with no points is a no-op.
	DeleteBySource(ctx context.Context, collection, sourceID string) error
}
