package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kbase/internal/service"
	"kbase/internal/storage"
)

// maxUploadSize bounds document uploads at 32 MiB.
const maxUploadSize = 32 << 20

// DocumentsHandler handles PDF upload and document CRUD endpoints.
type DocumentsHandler struct {
	documents *service.DocumentService
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(documents *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

// DocumentResponse is a document in API responses.
type DocumentResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	UploadedAt string `json:"uploaded_at"`
	ChunkCount int    `json:"chunk_count"`
}

func documentResponse(doc *storage.Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		FileType:   doc.FileType,
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
		ChunkCount: doc.ChunkCount,
	}
}

// Upload handles POST /api/documents/upload. Expects a multipart form with
// a "file" field.
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	doc, err := h.documents.Upload(ctx, header.Filename, data)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, documentResponse(doc))
}

// List handles GET /api/documents.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.documents.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, documentResponse(&docs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.documents.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
