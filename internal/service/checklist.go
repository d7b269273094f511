package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kbase/internal/storage"
)

// Checklist item statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// CreateChecklistItemInput is the input for creating a checklist item.
type CreateChecklistItemInput struct {
	Title       string
	Description string
	Category    string
	Status      string // defaults to pending
	DueDate     string
}

// ChecklistService handles checklist CRUD. Checklist items are not
// embedded; they never touch the vector store.
type ChecklistService struct {
	items storage.ChecklistStore
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(items storage.ChecklistStore) *ChecklistService {
	return &ChecklistService{items: items}
}

func validStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Create persists a new checklist item.
func (s *ChecklistService) Create(ctx context.Context, in CreateChecklistItemInput) (*storage.ChecklistItem, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidInput("title is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, invalidInput("category is required")
	}
	if in.Status == "" {
		in.Status = StatusPending
	}
	if !validStatus(in.Status) {
		return nil, invalidInput(fmt.Sprintf("invalid status %q", in.Status))
	}

	now := time.Now().UTC()
	item := &storage.ChecklistItem{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.items.Insert(ctx, item); err != nil {
		return nil, external("insert checklist item", err)
	}
	return item, nil
}

// List returns items, optionally filtered by category.
func (s *ChecklistService) List(ctx context.Context, category string) ([]storage.ChecklistItem, error) {
	items, err := s.items.List(ctx, category)
	if err != nil {
		return nil, external("list checklist items", err)
	}
	return items, nil
}

// UpdateStatus changes an item's status, the only mutable field.
func (s *ChecklistService) UpdateStatus(ctx context.Context, id, status string) (*storage.ChecklistItem, error) {
	if !validStatus(status) {
		return nil, invalidInput(fmt.Sprintf("invalid status %q", status))
	}

	err := s.items.UpdateStatus(ctx, id, status, time.Now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: checklist item %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, external("update checklist item", err)
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, external("get checklist item", err)
	}
	return item, nil
}

// Delete removes an item by id.
func (s *ChecklistService) Delete(ctx context.Context, id string) error {
	err := s.items.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: checklist item %s", ErrNotFound, id)
	}
	if err != nil {
		return external("delete checklist item", err)
	}
	return nil
}
