package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"kbase/internal/service"
)

// ChatHandler handles RAG chat queries and the history endpoint.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// ChatRequest is the request payload for a chat query.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the response payload for a chat query.
type ChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// ChatMessageResponse is one chat history entry.
type ChatMessageResponse struct {
	ID        string   `json:"id"`
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	Sources   []string `json:"sources,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// Ask handles POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.chat.Ask(ctx, req.Query)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Answer:  answer.Answer,
		Sources: answer.Sources,
	})
}

// History handles GET /api/chat/history. Accepts an optional ?limit=N.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	messages, err := h.chat.History(ctx, limit)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := make([]ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		entry := ChatMessageResponse{
			ID:        msg.ID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		}
		if msg.Sources != "" {
			_ = json.Unmarshal([]byte(msg.Sources), &entry.Sources)
		}
		resp = append(resp, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}
