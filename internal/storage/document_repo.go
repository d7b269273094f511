package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks kbase/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DocumentStore defines the interface for document metadata storage.
type DocumentStore interface {
	// Insert persists a new document row.
	Insert(ctx context.Context, doc *Document) error
	// List returns all documents, newest first.
	List(ctx context.Context) ([]Document, error)
	// GetByID returns a document by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Document, error)
	// Delete removes a document row by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// DocumentRepo provides methods for document metadata operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Insert persists a new document row.
func (r *DocumentRepo) Insert(ctx context.Context, doc *Document) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO documents (id, filename, file_type, uploaded_at, chunk_count) VALUES (?, ?, ?, ?, ?)",
		doc.ID, doc.Filename, doc.FileType, formatTime(doc.UploadedAt), doc.ChunkCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// List returns all documents ordered by upload time, newest first.
func (r *DocumentRepo) List(ctx context.Context) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, filename, file_type, uploaded_at, chunk_count FROM documents ORDER BY uploaded_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return docs, nil
}

// GetByID returns a document by id. Returns ErrNotFound if absent.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*Document, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, filename, file_type, uploaded_at, chunk_count FROM documents WHERE id = ?", id,
	)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document row by id. Returns ErrNotFound if no row matched.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanDocument(s scanner) (*Document, error) {
	var doc Document
	var chunkCount sql.NullInt64
	var uploadedAt string

	err := s.Scan(&doc.ID, &doc.Filename, &doc.FileType, &uploadedAt, &chunkCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.ChunkCount = int(chunkCount.Int64)

	if doc.UploadedAt, err = parseTime(uploadedAt); err != nil {
		return nil, err
	}
	return &doc, nil
}
