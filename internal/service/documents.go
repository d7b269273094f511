package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kbase/internal/contextutil"
	"kbase/internal/ingest"
	"kbase/internal/llm"
	"kbase/internal/storage"
	"kbase/internal/vectorstore"
)

// DocumentService handles PDF ingestion: text extraction, chunking,
// batch embedding, vector upsert, and the metadata row.
type DocumentService struct {
	documents   storage.DocumentStore
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	extractText func(data []byte) (string, error)
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documents storage.DocumentStore, embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string) *DocumentService {
	return &DocumentService{
		documents:   documents,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		extractText: ingest.ExtractPDFText,
	}
}

// Upload ingests a PDF. Non-PDF filenames are rejected before any
// extraction, embedding, or storage work. Documents whose extracted text
// produces zero chunks are rejected too; they would have nothing to embed.
func (s *DocumentService) Upload(ctx context.Context, filename string, data []byte) (*storage.Document, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if filename == "" || !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, invalidInput("only PDF files are accepted")
	}

	text, err := s.extractText(data)
	if err != nil {
		return nil, invalidInput("failed to parse PDF file")
	}

	chunks := ingest.SplitWords(text, ingest.DefaultChunkSize, ingest.DefaultOverlap)
	if len(chunks) == 0 {
		return nil, invalidInput("document contains no extractable text")
	}

	embeddings, err := s.embedder.EmbedMany(ctx, chunks)
	if err != nil {
		return nil, external("embed document chunks", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, external("embed document chunks",
			fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings)))
	}

	docID := uuid.New().String()
	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = vectorstore.Point{
			ChunkID: fmt.Sprintf("%s_%d", docID, i),
			Text:    chunk,
			Vec:     embeddings[i],
			Meta: map[string]any{
				"source_id":   docID,
				"source_type": "document",
				"title":       filename,
				"category":    "document",
			},
		}
	}
	if err := s.vectorStore.Upsert(ctx, s.collection, points); err != nil {
		return nil, external("upsert document chunks", err)
	}

	doc := &storage.Document{
		ID:         docID,
		Filename:   filename,
		FileType:   "pdf",
		UploadedAt: time.Now().UTC(),
		ChunkCount: len(chunks),
	}
	if err := s.documents.Insert(ctx, doc); err != nil {
		return nil, external("insert document", err)
	}

	logger.InfoContext(ctx, "document ingested", "document_id", docID, "filename", filename, "chunks", len(chunks))
	return doc, nil
}

// List returns all documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]storage.Document, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, external("list documents", err)
	}
	return docs, nil
}

// Delete removes the document row and cascades to all of its chunk vectors.
// Same ordering rule as notes: relational first, vector failure afterwards
// is logged, not fatal.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	err := s.documents.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: document %s", ErrNotFound, id)
	}
	if err != nil {
		return external("delete document", err)
	}

	if err := s.vectorStore.DeleteBySource(ctx, s.collection, id); err != nil {
		logger := contextutil.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "document deleted but vector cascade failed, orphaned chunks remain",
			"document_id", id, "error", err)
	}
	return nil
}
