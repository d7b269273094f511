package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history_store.go -package=mocks kbase/internal/storage HistoryStore

import (
	"context"
	"database/sql"
	"fmt"
)

// HistoryStore defines the interface for chat history storage.
type HistoryStore interface {
	// Insert appends a message to the history log.
	Insert(ctx context.Context, msg *ChatMessage) error
	// List returns the most recent messages in chronological order.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]ChatMessage, error)
}

// HistoryRepo provides methods for chat history operations.
// It implements the HistoryStore interface.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Insert appends a message to the history log.
func (r *HistoryRepo) Insert(ctx context.Context, msg *ChatMessage) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_history (id, role, content, sources, created_at) VALUES (?, ?, ?, ?, ?)",
		msg.ID, msg.Role, msg.Content, msg.Sources, formatTime(msg.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// List returns the most recent messages in chronological order.
func (r *HistoryRepo) List(ctx context.Context, limit int) ([]ChatMessage, error) {
	query := "SELECT id, role, content, sources, created_at FROM chat_history ORDER BY created_at DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var messages []ChatMessage
	for rows.Next() {
		var msg ChatMessage
		var sources sql.NullString
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &sources, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		msg.Sources = sources.String
		if msg.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Query returned newest first; flip to chronological order for callers.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
