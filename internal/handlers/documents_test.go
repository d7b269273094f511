package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	llm_mocks "kbase/internal/llm/mocks"
	"kbase/internal/service"
	"kbase/internal/storage"
	storage_mocks "kbase/internal/storage/mocks"
	vector_mocks "kbase/internal/vectorstore/mocks"
)

func newDocumentsRouter(t *testing.T, ctrl *gomock.Controller) (*storage_mocks.MockDocumentStore, *vector_mocks.MockVectorStore, chi.Router) {
	t.Helper()

	mockDocs := storage_mocks.NewMockDocumentStore(ctrl)
	mockVectors := vector_mocks.NewMockVectorStore(ctrl)
	handler := NewDocumentsHandler(service.NewDocumentService(
		mockDocs, llm_mocks.NewMockEmbedder(ctrl), mockVectors, "knowledge",
	))

	r := chi.NewRouter()
	r.Post("/api/documents/upload", handler.Upload)
	r.Get("/api/documents", handler.List)
	r.Delete("/api/documents/{id}", handler.Delete)
	return mockDocs, mockVectors, r
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestDocumentsHandler_Upload_RejectsNonPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, router := newDocumentsRouter(t, ctrl)

	body, contentType := multipartBody(t, "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestDocumentsHandler_Upload_RejectsUnparseablePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, router := newDocumentsRouter(t, ctrl)

	body, contentType := multipartBody(t, "broken.pdf", []byte("definitely not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestDocumentsHandler_Upload_MissingFileField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, router := newDocumentsRouter(t, ctrl)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("name", "no file here")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDocumentsHandler_Upload_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, router := newDocumentsRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDocumentsHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockDocs, _, router := newDocumentsRouter(t, ctrl)
	mockDocs.EXPECT().List(gomock.Any()).Return([]storage.Document{
		{ID: "d1", Filename: "visa.pdf", FileType: "pdf", UploadedAt: now, ChunkCount: 3},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []DocumentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Filename != "visa.pdf" || resp[0].ChunkCount != 3 {
		t.Errorf("response = %+v", resp)
	}
}

func TestDocumentsHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs, mockVectors, router := newDocumentsRouter(t, ctrl)
	mockDocs.EXPECT().Delete(gomock.Any(), "d1").Return(nil)
	mockVectors.EXPECT().DeleteBySource(gomock.Any(), "knowledge", "d1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/documents/d1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestDocumentsHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs, _, router := newDocumentsRouter(t, ctrl)
	mockDocs.EXPECT().Delete(gomock.Any(), "missing").Return(storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/documents/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
