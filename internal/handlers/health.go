package handlers

import (
	"context"
	"net/http"
	"time"

	"kbase/internal/contextutil"
	"kbase/internal/vectorstore"
)

// healthCheckTimeout caps how long the vector store probe may take.
const healthCheckTimeout = 5 * time.Second

// CollectionChecker is the slice of the vector store the health check needs.
type CollectionChecker interface {
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

var _ CollectionChecker = (*vectorstore.QdrantStore)(nil)

// HealthHandler reports service health, probing the vector store.
type HealthHandler struct {
	vectorStore CollectionChecker
	collection  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(vectorStore CollectionChecker, collection string) *HealthHandler {
	return &HealthHandler{
		vectorStore: vectorStore,
		collection:  collection,
	}
}

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	logger := contextutil.LoggerFromContext(ctx)

	checks := map[string]string{"vector_store": "ok"}
	status := "ok"
	httpStatus := http.StatusOK

	exists, err := h.vectorStore.CollectionExists(ctx, h.collection)
	if err != nil || !exists {
		if err != nil {
			logger.WarnContext(ctx, "vector store health check failed", "error", err)
		} else {
			logger.WarnContext(ctx, "vector store collection missing", "collection", h.collection)
		}
		checks["vector_store"] = "error"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: status,
		Checks: checks,
	})
}
