package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kbase/internal/contextutil"
	"kbase/internal/llm"
	"kbase/internal/storage"
	"kbase/internal/vectorstore"
)

// CreateNoteInput is the input for creating a note.
type CreateNoteInput struct {
	Title    string
	Category string
	Content  string
}

// NoteService handles note CRUD plus the embedding side effects.
// A note embeds as exactly one chunk, "{id}_0".
type NoteService struct {
	notes       storage.NoteStore
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes storage.NoteStore, embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string) *NoteService {
	return &NoteService{
		notes:       notes,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
	}
}

// Create persists a note row, embeds the full content as a single chunk,
// and upserts it into the vector store. A relational insert that succeeds
// before a failing upsert is not rolled back.
func (s *NoteService) Create(ctx context.Context, in CreateNoteInput) (*storage.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidInput("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, invalidInput("content is required")
	}

	now := time.Now().UTC()
	note := &storage.Note{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Insert(ctx, note); err != nil {
		return nil, external("insert note", err)
	}

	embedding, err := s.embedder.Embed(ctx, in.Content)
	if err != nil {
		return nil, external("embed note content", err)
	}

	point := vectorstore.Point{
		ChunkID: fmt.Sprintf("%s_0", note.ID),
		Text:    in.Content,
		Vec:     embedding,
		Meta: map[string]any{
			"source_id":   note.ID,
			"source_type": "note",
			"title":       note.Title,
			"category":    note.Category, // already "" when absent
		},
	}
	if err := s.vectorStore.Upsert(ctx, s.collection, []vectorstore.Point{point}); err != nil {
		return nil, external("upsert note chunk", err)
	}

	return note, nil
}

// List returns all notes, newest first.
func (s *NoteService) List(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, external("list notes", err)
	}
	return notes, nil
}

// Get returns a note by id.
func (s *NoteService) Get(ctx context.Context, id string) (*storage.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, external("get note", err)
	}
	return note, nil
}

// Delete removes the note row and cascades to its vector chunk. The
// relational delete runs first; if the vector delete then fails, the
// orphaned chunk is logged and the delete still succeeds (accepted
// degraded state, reconciled manually).
func (s *NoteService) Delete(ctx context.Context, id string) error {
	err := s.notes.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	if err != nil {
		return external("delete note", err)
	}

	if err := s.vectorStore.DeleteBySource(ctx, s.collection, id); err != nil {
		logger := contextutil.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "note deleted but vector cascade failed, orphaned chunk remains",
			"note_id", id, "error", err)
	}
	return nil
}
