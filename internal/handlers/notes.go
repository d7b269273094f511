package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kbase/internal/service"
	"kbase/internal/storage"
)

// NotesHandler handles note CRUD endpoints.
type NotesHandler struct {
	notes *service.NoteService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notes *service.NoteService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// NoteRequest is the request payload for creating a note.
type NoteRequest struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content"`
}

// NoteResponse is a note in API responses. The content is not returned; it
// lives in the vector index.
type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func noteResponse(note *storage.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Category:  note.Category,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

// Create handles POST /api/notes.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.Create(ctx, service.CreateNoteInput{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, noteResponse(note))
}

// List handles GET /api/notes.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.notes.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, noteResponse(&notes[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/notes/{id}.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.notes.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, noteResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notes.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
