package llm

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm.go -package=mocks kbase/internal/llm Embedder,Completer

import "context"

// Embedder converts text into fixed-length vectors.
type Embedder interface {
	// Embed returns the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedMany returns one embedding per input text, order-preserving.
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer sends a system prompt and user message to a generative model
// and returns the completion text. Each call is independent; no
// conversation state is retained.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
