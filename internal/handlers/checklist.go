package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kbase/internal/service"
	"kbase/internal/storage"
)

// ChecklistHandler handles checklist CRUD endpoints.
type ChecklistHandler struct {
	checklist *service.ChecklistService
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklist *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklist: checklist}
}

// ChecklistItemRequest is the request payload for creating an item.
type ChecklistItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// ChecklistItemUpdateRequest is the request payload for a status update.
type ChecklistItemUpdateRequest struct {
	Status string `json:"status"`
}

// ChecklistItemResponse is a checklist item in API responses.
type ChecklistItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func checklistItemResponse(item *storage.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Status:      item.Status,
		DueDate:     item.DueDate,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}

// Create handles POST /api/checklist.
func (h *ChecklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.checklist.Create(ctx, service.CreateChecklistItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, checklistItemResponse(item))
}

// List handles GET /api/checklist with an optional ?category= filter.
func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.checklist.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := make([]ChecklistItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, checklistItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/checklist/{id}.
func (h *ChecklistHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChecklistItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.checklist.UpdateStatus(ctx, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, checklistItemResponse(item))
}

// Delete handles DELETE /api/checklist/{id}.
func (h *ChecklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.checklist.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
