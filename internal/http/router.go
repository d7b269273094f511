package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kbase/internal/handlers"
	"kbase/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService      *service.ChatService
	NoteService      *service.NoteService
	ChecklistService *service.ChecklistService
	DocumentService  *service.DocumentService
	HealthChecker    handlers.CollectionChecker
	CollectionName   string
	APIKey           string
	AllowedOrigins   []string
}

// NewRouter creates the HTTP router with all API routes wired up.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS(deps.AllowedOrigins))

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	notesHandler := handlers.NewNotesHandler(deps.NoteService)
	checklistHandler := handlers.NewChecklistHandler(deps.ChecklistService)
	documentsHandler := handlers.NewDocumentsHandler(deps.DocumentService)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecker, deps.CollectionName)

	// Health endpoint stays outside auth so probes work without the key.
	r.Method(http.MethodGet, "/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(APIKeyAuth(deps.APIKey))

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", notesHandler.Create)
			r.Get("/", notesHandler.List)
			r.Get("/{id}", notesHandler.Get)
			r.Delete("/{id}", notesHandler.Delete)
		})

		r.Route("/checklist", func(r chi.Router) {
			r.Post("/", checklistHandler.Create)
			r.Get("/", checklistHandler.List)
			r.Patch("/{id}", checklistHandler.UpdateStatus)
			r.Delete("/{id}", checklistHandler.Delete)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload", documentsHandler.Upload)
			r.Get("/", documentsHandler.List)
			r.Delete("/{id}", documentsHandler.Delete)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/", chatHandler.Ask)
			r.Get("/history", chatHandler.History)
		})
	})

	return r
}
