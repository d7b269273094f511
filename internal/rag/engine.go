package rag

import (
	"context"
	"fmt"
	"strings"

	"kbase/internal/contextutil"
	"kbase/internal/llm"
	"kbase/internal/vectorstore"
)

// topK is how many chunks are retrieved per query.
const topK = 5

// noContextPlaceholder stands in for the context block when retrieval finds
// nothing. Generation still runs; the system prompt tells the model how to
// answer without context.
const noContextPlaceholder = "No relevant context found."

// systemPromptTemplate frames every answer. %s is replaced with the
// retrieved context block.
const systemPromptTemplate = `You are a personal assistant helping track a Spain Digital Nomad Visa journey. You have access to the user's notes, decisions, and uploaded documents.

Answer questions based ONLY on the context provided below. If the answer is not in the context, say "I don't have that information yet — consider adding a note about it."

Always cite which note or document you're referencing.

Context:
%s`

// Engine answers natural-language questions over the indexed knowledge base.
type Engine interface {
	// Answer embeds the query, retrieves the most relevant chunks, and
	// generates a grounded answer. The query must be non-empty; callers
	// validate before invoking.
	Answer(ctx context.Context, query string) (Answer, error)
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	completer   llm.Completer
}

// NewEngine creates a new RAG engine.
func NewEngine(embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string, completer llm.Completer) Engine {
	return &ragEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		completer:   completer,
	}
}

// Answer runs the single-pass retrieval-augmented flow: embed, retrieve,
// assemble context, generate. Zero retrieved chunks is not an error; the
// model is asked to answer with a placeholder context instead.
func (e *ragEngine) Answer(ctx context.Context, query string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	queryVector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := e.vectorStore.Query(ctx, e.collection, queryVector, topK)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to query vector store: %w", err)
	}

	logger.InfoContext(ctx, "retrieval completed", "results", len(results), "top_k", topK)

	contextParts := make([]string, 0, len(results))
	sources := make([]string, 0, len(results))
	seen := make(map[string]bool)

	for _, result := range results {
		title, _ := result.Meta["title"].(string)
		contextParts = append(contextParts, fmt.Sprintf("[%s]: %s", title, result.Text))

		sourceID, _ := result.Meta["source_id"].(string)
		if sourceID != "" && !seen[sourceID] {
			seen[sourceID] = true
			sources = append(sources, sourceID)
		}
	}

	retrievedContext := noContextPlaceholder
	if len(contextParts) > 0 {
		retrievedContext = strings.Join(contextParts, "\n\n")
	}

	systemPrompt := fmt.Sprintf(systemPromptTemplate, retrievedContext)

	answer, err := e.completer.Complete(ctx, systemPrompt, query)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to get completion: %w", err)
	}

	logger.InfoContext(ctx, "answer generated", "answer_length", len(answer), "sources", len(sources))

	return Answer{
		Answer:  answer,
		Sources: sources,
	}, nil
}
