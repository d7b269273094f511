package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"kbase/internal/service"
	"kbase/internal/storage"
	storage_mocks "kbase/internal/storage/mocks"
)

func newChecklistRouter(t *testing.T, ctrl *gomock.Controller) (*storage_mocks.MockChecklistStore, chi.Router) {
	t.Helper()

	mockItems := storage_mocks.NewMockChecklistStore(ctrl)
	handler := NewChecklistHandler(service.NewChecklistService(mockItems))

	r := chi.NewRouter()
	r.Post("/api/checklist", handler.Create)
	r.Get("/api/checklist", handler.List)
	r.Patch("/api/checklist/{id}", handler.UpdateStatus)
	r.Delete("/api/checklist/{id}", handler.Delete)
	return mockItems, r
}

func TestChecklistHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems, router := newChecklistRouter(t, ctrl)
	mockItems.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	body, _ := json.Marshal(ChecklistItemRequest{Title: "Book NIE appointment", Category: "legal"})
	req := httptest.NewRequest(http.MethodPost, "/api/checklist", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var resp ChecklistItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != service.StatusPending {
		t.Errorf("status = %q, want default %q", resp.Status, service.StatusPending)
	}
}

func TestChecklistHandler_Create_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, router := newChecklistRouter(t, ctrl)

	body := `{"title": "t", "category": "legal", "status": "blocked"}`
	req := httptest.NewRequest(http.MethodPost, "/api/checklist", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChecklistHandler_List_CategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockItems, router := newChecklistRouter(t, ctrl)
	mockItems.EXPECT().List(gomock.Any(), "legal").Return([]storage.ChecklistItem{
		{ID: "c1", Title: "t", Category: "legal", Status: "pending", CreatedAt: now, UpdatedAt: now},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/checklist?category=legal", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp []ChecklistItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Category != "legal" {
		t.Errorf("response = %+v", resp)
	}
}

func TestChecklistHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockItems, router := newChecklistRouter(t, ctrl)
	mockItems.EXPECT().UpdateStatus(gomock.Any(), "c1", "done", gomock.Any()).Return(nil)
	mockItems.EXPECT().GetByID(gomock.Any(), "c1").Return(&storage.ChecklistItem{
		ID: "c1", Title: "t", Category: "legal", Status: "done", CreatedAt: now, UpdatedAt: now,
	}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/checklist/c1", bytes.NewBufferString(`{"status": "done"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp ChecklistItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "done" {
		t.Errorf("status = %q, want done", resp.Status)
	}
}

func TestChecklistHandler_UpdateStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems, router := newChecklistRouter(t, ctrl)
	mockItems.EXPECT().UpdateStatus(gomock.Any(), "missing", "done", gomock.Any()).Return(storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/api/checklist/missing", bytes.NewBufferString(`{"status": "done"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestChecklistHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems, router := newChecklistRouter(t, ctrl)
	mockItems.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/checklist/c1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
