package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_checklist_store.go -package=mocks kbase/internal/storage ChecklistStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ChecklistStore defines the interface for checklist item storage operations.
type ChecklistStore interface {
	// Insert persists a new checklist item.
	Insert(ctx context.Context, item *ChecklistItem) error
	// List returns items newest first, optionally filtered by category.
	List(ctx context.Context, category string) ([]ChecklistItem, error)
	// GetByID returns an item by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*ChecklistItem, error)
	// UpdateStatus sets the status of an item. Returns ErrNotFound if absent.
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	// Delete removes an item by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// ChecklistRepo provides methods for checklist item operations.
// It implements the ChecklistStore interface.
type ChecklistRepo struct {
	db *sql.DB
}

// NewChecklistRepo creates a new ChecklistRepo.
func NewChecklistRepo(db *sql.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

// Insert persists a new checklist item.
func (r *ChecklistRepo) Insert(ctx context.Context, item *ChecklistItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_items (id, title, description, category, status, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.Category, item.Status, item.DueDate,
		formatTime(item.CreatedAt), formatTime(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert checklist item: %w", err)
	}
	return nil
}

// List returns items ordered by creation time, newest first. An empty
// category means no filter.
func (r *ChecklistRepo) List(ctx context.Context, category string) ([]ChecklistItem, error) {
	query := "SELECT id, title, description, category, status, due_date, created_at, updated_at FROM checklist_items"
	var args []any
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query checklist items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var items []ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return items, nil
}

// GetByID returns an item by id. Returns ErrNotFound if absent.
func (r *ChecklistRepo) GetByID(ctx context.Context, id string) (*ChecklistItem, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, description, category, status, due_date, created_at, updated_at FROM checklist_items WHERE id = ?",
		id,
	)
	item, err := scanChecklistItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateStatus sets the status and updated_at of an item.
// Returns ErrNotFound if no row matched.
func (r *ChecklistRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE checklist_items SET status = ?, updated_at = ? WHERE id = ?",
		status, formatTime(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
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

// Delete removes an item by id. Returns ErrNotFound if no row matched.
func (r *ChecklistRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
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

func scanChecklistItem(s scanner) (*ChecklistItem, error) {
	var item ChecklistItem
	var description, dueDate sql.NullString
	var createdAt, updatedAt string

	err := s.Scan(&item.ID, &item.Title, &description, &item.Category, &item.Status, &dueDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan checklist item: %w", err)
	}

	item.Description = description.String
	item.DueDate = dueDate.String

	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
