package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"kbase/internal/config"
	"kbase/internal/http"
	"kbase/internal/llm"
	"kbase/internal/rag"
	"kbase/internal/service"
	"kbase/internal/storage"
	"kbase/internal/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	noteRepo := storage.NewNoteRepo(db)
	checklistRepo := storage.NewChecklistRepo(db)
	documentRepo := storage.NewDocumentRepo(db)
	historyRepo := storage.NewHistoryRepo(db)

	ctx := context.Background()

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.EmbeddingDimensions); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.EmbeddingDimensions)

	embedder := llm.NewEmbeddingsClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDimensions)
	completer := llm.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel)

	ragEngine := rag.NewEngine(embedder, vectorStore, cfg.QdrantCollection, completer)
	slog.Info("RAG engine initialized", "chat_model", cfg.ChatModel, "embedding_model", cfg.EmbeddingModel)

	deps := &http.Deps{
		ChatService:      service.NewChatService(ragEngine, historyRepo),
		NoteService:      service.NewNoteService(noteRepo, embedder, vectorStore, cfg.QdrantCollection),
		ChecklistService: service.NewChecklistService(checklistRepo),
		DocumentService:  service.NewDocumentService(documentRepo, embedder, vectorStore, cfg.QdrantCollection),
		HealthChecker:    vectorStore,
		CollectionName:   cfg.QdrantCollection,
		APIKey:           cfg.APIKey,
		AllowedOrigins:   cfg.AllowedOrigins,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
