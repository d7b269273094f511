// Command seed pre-loads the knowledge base with the Alicante decision
// notes and the Digital Nomad Visa checklist. Run once after first start.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"kbase/internal/config"
	"kbase/internal/llm"
	"kbase/internal/service"
	"kbase/internal/storage"
	"kbase/internal/vectorstore"
)

type seedNote struct {
	title    string
	category string
	content  string
}

type seedItem struct {
	title    string
	category string
}

var notes = []seedNote{
	{
		title:    "Why Alicante over Granada",
		category: "decisions",
		content: "Chose Alicante for its 320+ sunny days, strong expat community, " +
			"coastal lifestyle, lower cost of living vs Barcelona/Madrid, " +
			"and direct flights from Manila via Dubai or Doha. " +
			"Granada was a runner-up but its inland location and fewer direct routes tipped the balance.",
	},
	{
		title:    "Visa Strategy",
		category: "visa",
		content: "Applying via UGE (Unidad de Grandes Empresas) for fast-track processing (~20 days). " +
			"UGE handles Digital Nomad Visas for applicants with qualifying remote income. " +
			"Alternative is the standard consulate route which takes 2-3 months.",
	},
	{
		title:    "About Alicante",
		category: "city",
		content: "Alicante is on Spain's Costa Blanca (southeastern coast). " +
			"320+ sunny days per year. Population ~330,000. " +
			"Strong expat and digital nomad scene. Affordable compared to Madrid/Barcelona. " +
			"Has an international airport (ALC) with connections to major hubs.",
	},
}

var checklist = []seedItem{
	{title: "Valid passport (1yr+ validity)", category: "documents"},
	{title: "Completed national visa application form", category: "documents"},
	{title: "Passport photos", category: "documents"},
	{title: "Criminal background check (apostilled)", category: "documents"},
	{title: "Health insurance (100% coverage, no co-pay)", category: "insurance"},
	{title: "Proof of income (€2,368+/month)", category: "financial"},
	{title: "Proof of remote work (contract/client letters)", category: "financial"},
	{title: "Bank statements (3-6 months)", category: "financial"},
	{title: "Marriage certificate (apostilled)", category: "dependent"},
	{title: "NIE application after arrival", category: "admin"},
	{title: "Empadronamiento (city registration)", category: "admin"},
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	ctx := context.Background()

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.EmbeddingDimensions); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingDimensions)

	noteService := service.NewNoteService(storage.NewNoteRepo(db), embedder, vectorStore, cfg.QdrantCollection)
	checklistService := service.NewChecklistService(storage.NewChecklistRepo(db))

	for _, n := range notes {
		note, err := noteService.Create(ctx, service.CreateNoteInput{
			Title:    n.title,
			Category: n.category,
			Content:  n.content,
		})
		if err != nil {
			log.Fatalf("Failed to seed note %q: %v", n.title, err)
		}
		slog.Info("Seeded note", "id", note.ID, "title", note.Title)
	}

	for _, item := range checklist {
		created, err := checklistService.Create(ctx, service.CreateChecklistItemInput{
			Title:    item.title,
			Category: item.category,
		})
		if err != nil {
			log.Fatalf("Failed to seed checklist item %q: %v", item.title, err)
		}
		slog.Info("Seeded checklist item", "id", created.ID, "title", created.Title)
	}

	slog.Info("Seeding completed", "notes", len(notes), "checklist_items", len(checklist))
}
