package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks kbase/internal/storage NoteStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// NoteStore defines the interface for note storage operations.
type NoteStore interface {
	// Insert persists a new note row.
	Insert(ctx context.Context, note *Note) error
	// List returns all notes, newest first.
	List(ctx context.Context) ([]Note, error)
	// GetByID returns a note by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Note, error)
	// Delete removes a note row by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Insert persists a new note row. The note's ID and timestamps must be set.
func (r *NoteRepo) Insert(ctx context.Context, note *Note) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notes (id, title, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		note.ID, note.Title, note.Category, formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// List returns all notes ordered by creation time, newest first.
func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, category, created_at, updated_at FROM notes ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return notes, nil
}

// GetByID returns a note by id. Returns ErrNotFound if absent.
func (r *NoteRepo) GetByID(ctx context.Context, id string) (*Note, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, category, created_at, updated_at FROM notes WHERE id = ?", id,
	)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note row by id. Returns ErrNotFound if no row matched.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*Note, error) {
	var note Note
	var category sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(&note.ID, &note.Title, &category, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan note: %w", err)
	}

	note.Category = category.String

	var err error
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}
