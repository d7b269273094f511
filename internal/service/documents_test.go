package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"kbase/internal/ingest"
	llm_mocks "kbase/internal/llm/mocks"
	"kbase/internal/storage"
	storage_mocks "kbase/internal/storage/mocks"
	"kbase/internal/vectorstore"
	vector_mocks "kbase/internal/vectorstore/mocks"
)

func newDocumentServiceForTest(t *testing.T, ctrl *gomock.Controller, text string) (*DocumentService, *storage_mocks.MockDocumentStore, *llm_mocks.MockEmbedder, *vector_mocks.MockVectorStore) {
	t.Helper()
	mockDocs := storage_mocks.NewMockDocumentStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockStore := vector_mocks.NewMockVectorStore(ctrl)

	svc := NewDocumentService(mockDocs, mockEmbedder, mockStore, "knowledge")
	svc.extractText = func([]byte) (string, error) { return text, nil }
	return svc, mockDocs, mockEmbedder, mockStore
}

func TestDocumentService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockDocs, mockEmbedder, mockStore := newDocumentServiceForTest(t, ctrl, "visa application requirements and timelines")

	mockEmbedder.EXPECT().EmbedMany(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chunks []string) ([][]float32, error) {
			embeddings := make([][]float32, len(chunks))
			for i := range embeddings {
				embeddings[i] = []float32{0.1}
			}
			return embeddings, nil
		})

	var upserted []vectorstore.Point
	mockStore.EXPECT().Upsert(gomock.Any(), "knowledge", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			upserted = points
			return nil
		})

	var inserted *storage.Document
	mockDocs.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *storage.Document) error {
			inserted = doc
			return nil
		})

	doc, err := svc.Upload(context.Background(), "visa-guide.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if doc.Filename != "visa-guide.pdf" || doc.FileType != "pdf" {
		t.Errorf("doc = %+v", doc)
	}
	if doc.ChunkCount != len(upserted) {
		t.Errorf("ChunkCount = %d, upserted %d points", doc.ChunkCount, len(upserted))
	}
	if inserted == nil || inserted.ID != doc.ID {
		t.Fatal("document row not inserted")
	}
	for i, point := range upserted {
		if want := fmt.Sprintf("%s_%d", doc.ID, i); point.ChunkID != want {
			t.Errorf("point[%d].ChunkID = %q, want %q", i, point.ChunkID, want)
		}
		if point.Meta["source_id"] != doc.ID || point.Meta["source_type"] != "document" {
			t.Errorf("point[%d].Meta = %v", i, point.Meta)
		}
		if point.Meta["title"] != "visa-guide.pdf" {
			t.Errorf("point[%d] title = %v", i, point.Meta["title"])
		}
	}
}

func TestDocumentService_Upload_ChunksLongDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	words := make([]string, ingest.DefaultChunkSize+200)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	svc, mockDocs, mockEmbedder, mockStore := newDocumentServiceForTest(t, ctrl, strings.Join(words, " "))

	var embedded []string
	mockEmbedder.EXPECT().EmbedMany(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chunks []string) ([][]float32, error) {
			embedded = chunks
			embeddings := make([][]float32, len(chunks))
			for i := range embeddings {
				embeddings[i] = []float32{0.1}
			}
			return embeddings, nil
		})
	mockStore.EXPECT().Upsert(gomock.Any(), "knowledge", gomock.Any()).Return(nil)
	mockDocs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	doc, err := svc.Upload(context.Background(), "long.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(embedded) < 2 {
		t.Fatalf("expected multiple chunks for a long document, got %d", len(embedded))
	}
	if doc.ChunkCount != len(embedded) {
		t.Errorf("ChunkCount = %d, want %d", doc.ChunkCount, len(embedded))
	}
}

func TestDocumentService_Upload_RejectsNonPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: rejection happens before extraction or embedding.
	svc := NewDocumentService(
		storage_mocks.NewMockDocumentStore(ctrl),
		llm_mocks.NewMockEmbedder(ctrl),
		vector_mocks.NewMockVectorStore(ctrl),
		"knowledge",
	)
	svc.extractText = func([]byte) (string, error) {
		t.Fatal("extractText called for a rejected filename")
		return "", nil
	}

	tests := []string{"notes.txt", "archive.zip", "report.pdf.exe", ""}
	for _, filename := range tests {
		t.Run("filename "+filename, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), filename, []byte("data"))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Upload(%q) error = %v, want ErrInvalidInput", filename, err)
			}
		})
	}
}

func TestDocumentService_Upload_AcceptsUppercaseExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockDocs, mockEmbedder, mockStore := newDocumentServiceForTest(t, ctrl, "some text")
	mockEmbedder.EXPECT().EmbedMany(gomock.Any(), gomock.Any()).Return([][]float32{{0.1}}, nil)
	mockStore.EXPECT().Upsert(gomock.Any(), "knowledge", gomock.Any()).Return(nil)
	mockDocs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.Upload(context.Background(), "GUIDE.PDF", []byte("%PDF-fake")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
}

func TestDocumentService_Upload_RejectsEmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Scanned PDF with no extractable text: nothing to embed, reject up front.
	svc, _, _, _ := newDocumentServiceForTest(t, ctrl, "   \n  ")

	_, err := svc.Upload(context.Background(), "scanned.pdf", []byte("%PDF-fake"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Upload() error = %v, want ErrInvalidInput", err)
	}
}

func TestDocumentService_Upload_ParseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewDocumentService(
		storage_mocks.NewMockDocumentStore(ctrl),
		llm_mocks.NewMockEmbedder(ctrl),
		vector_mocks.NewMockVectorStore(ctrl),
		"knowledge",
	)

	// Real extractor, garbage bytes.
	_, err := svc.Upload(context.Background(), "broken.pdf", []byte("not a pdf at all"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Upload() error = %v, want ErrInvalidInput", err)
	}
}

func TestDocumentService_Upload_EmbeddingCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEmbedder, _ := newDocumentServiceForTest(t, ctrl, "some text here")
	mockEmbedder.EXPECT().EmbedMany(gomock.Any(), gomock.Any()).Return([][]float32{{0.1}, {0.2}}, nil)

	_, err := svc.Upload(context.Background(), "doc.pdf", []byte("%PDF-fake"))
	if !errors.Is(err, ErrExternalService) {
		t.Fatalf("Upload() error = %v, want ErrExternalService", err)
	}
}

func TestDocumentService_Delete_Cascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := storage_mocks.NewMockDocumentStore(ctrl)
	mockStore := vector_mocks.NewMockVectorStore(ctrl)

	gomock.InOrder(
		mockDocs.EXPECT().Delete(gomock.Any(), "doc-1").Return(nil),
		mockStore.EXPECT().DeleteBySource(gomock.Any(), "knowledge", "doc-1").Return(nil),
	)

	svc := NewDocumentService(mockDocs, llm_mocks.NewMockEmbedder(ctrl), mockStore, "knowledge")
	if err := svc.Delete(context.Background(), "doc-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestDocumentService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := storage_mocks.NewMockDocumentStore(ctrl)
	mockDocs.EXPECT().Delete(gomock.Any(), "missing").Return(storage.ErrNotFound)

	svc := NewDocumentService(mockDocs, llm_mocks.NewMockEmbedder(ctrl), vector_mocks.NewMockVectorStore(ctrl), "knowledge")
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}
