package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"kbase/internal/contextutil"
	"kbase/internal/rag"
	"kbase/internal/storage"
)

// ChatService validates queries, runs them through the RAG engine, and
// records the exchange in the chat history log.
type ChatService struct {
	engine  rag.Engine
	history storage.HistoryStore
}

// NewChatService creates a new ChatService.
func NewChatService(engine rag.Engine, history storage.HistoryStore) *ChatService {
	return &ChatService{
		engine:  engine,
		history: history,
	}
}

// Ask answers a question over the knowledge base. Empty or whitespace-only
// queries are rejected before any external call. History write failures are
// logged but never fail the request; the answer already exists.
func (s *ChatService) Ask(ctx context.Context, query string) (rag.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return rag.Answer{}, invalidInput("query cannot be empty")
	}

	answer, err := s.engine.Answer(ctx, query)
	if err != nil {
		return rag.Answer{}, external("answer query", err)
	}

	s.record(ctx, query, answer)
	return answer, nil
}

// History returns the most recent exchanges in chronological order.
func (s *ChatService) History(ctx context.Context, limit int) ([]storage.ChatMessage, error) {
	messages, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, external("list chat history", err)
	}
	return messages, nil
}

func (s *ChatService) record(ctx context.Context, query string, answer rag.Answer) {
	logger := contextutil.LoggerFromContext(ctx)
	now := time.Now().UTC()

	sources, err := json.Marshal(answer.Sources)
	if err != nil {
		logger.WarnContext(ctx, "failed to encode answer sources", "error", err)
		sources = []byte("[]")
	}

	userMsg := &storage.ChatMessage{
		ID:        uuid.New().String(),
		Role:      "user",
		Content:   query,
		CreatedAt: now,
	}
	assistantMsg := &storage.ChatMessage{
		ID:        uuid.New().String(),
		Role:      "assistant",
		Content:   answer.Answer,
		Sources:   string(sources),
		CreatedAt: now.Add(time.Millisecond), // keep ordering stable within the exchange
	}

	if err := s.history.Insert(ctx, userMsg); err != nil {
		logger.WarnContext(ctx, "failed to record user message", "error", err)
		return
	}
	if err := s.history.Insert(ctx, assistantMsg); err != nil {
		logger.WarnContext(ctx, "failed to record assistant message", "error", err)
	}
}
