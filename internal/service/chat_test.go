package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"kbase/internal/rag"
	"kbase/internal/storage"
	storage_mocks "kbase/internal/storage/mocks"
)

type mockRAGEngine struct {
	answer rag.Answer
	err    error
	calls  int
}

func (m *mockRAGEngine) Answer(_ context.Context, _ string) (rag.Answer, error) {
	m.calls++
	return m.answer, m.err
}

func TestChatService_Ask_RecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := &mockRAGEngine{answer: rag.Answer{
		Answer:  "Alicante, for the climate.",
		Sources: []string{"note-1"},
	}}
	mockHistory := storage_mocks.NewMockHistoryStore(ctrl)

	var recorded []*storage.ChatMessage
	mockHistory.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, msg *storage.ChatMessage) error {
			recorded = append(recorded, msg)
			return nil
		})

	svc := NewChatService(engine, mockHistory)

	answer, err := svc.Ask(context.Background(), "Which city did we pick?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer.Answer != "Alicante, for the climate." {
		t.Errorf("Answer = %q", answer.Answer)
	}

	if len(recorded) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(recorded))
	}
	if recorded[0].Role != "user" || recorded[0].Content != "Which city did we pick?" {
		t.Errorf("user message = %+v", recorded[0])
	}
	if recorded[1].Role != "assistant" || recorded[1].Content != "Alicante, for the climate." {
		t.Errorf("assistant message = %+v", recorded[1])
	}
	if recorded[1].Sources != `["note-1"]` {
		t.Errorf("assistant Sources = %q", recorded[1].Sources)
	}
	if !recorded[1].CreatedAt.After(recorded[0].CreatedAt) {
		t.Error("assistant message should sort after the user message")
	}
}

func TestChatService_Ask_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := &mockRAGEngine{}
	svc := NewChatService(engine, storage_mocks.NewMockHistoryStore(ctrl))

	tests := []string{"", "   ", "\n\t"}
	for _, query := range tests {
		if _, err := svc.Ask(context.Background(), query); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Ask(%q) error = %v, want ErrInvalidInput", query, err)
		}
	}
	if engine.calls != 0 {
		t.Errorf("engine called %d times for invalid queries, want 0", engine.calls)
	}
}

func TestChatService_Ask_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := &mockRAGEngine{err: errors.New("model unavailable")}
	svc := NewChatService(engine, storage_mocks.NewMockHistoryStore(ctrl))

	if _, err := svc.Ask(context.Background(), "q"); !errors.Is(err, ErrExternalService) {
		t.Fatalf("Ask() error = %v, want ErrExternalService", err)
	}
}

func TestChatService_Ask_HistoryFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := &mockRAGEngine{answer: rag.Answer{Answer: "ok", Sources: []string{}}}
	mockHistory := storage_mocks.NewMockHistoryStore(ctrl)
	mockHistory.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := NewChatService(engine, mockHistory)

	answer, err := svc.Ask(context.Background(), "q")
	if err != nil {
		t.Fatalf("Ask() error = %v, want nil when only history fails", err)
	}
	if answer.Answer != "ok" {
		t.Errorf("Answer = %q", answer.Answer)
	}
}

func TestChatService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := storage_mocks.NewMockHistoryStore(ctrl)
	mockHistory.EXPECT().List(gomock.Any(), 10).Return([]storage.ChatMessage{
		{ID: "m1", Role: "user", Content: "q"},
		{ID: "m2", Role: "assistant", Content: "a"},
	}, nil)

	svc := NewChatService(&mockRAGEngine{}, mockHistory)
	messages, err := svc.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
}
