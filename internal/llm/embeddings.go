package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// EmbeddingsClient implements Embedder using the OpenAI embeddings API.
type EmbeddingsClient struct {
	client       *openai.Client
	model        openai.EmbeddingModel
	expectedSize int
}

// NewEmbeddingsClient creates a new embeddings client. expectedSize is the
// vector dimensionality the collection was created with; every returned
// embedding is validated against it so a model/collection mismatch fails
// loudly instead of corrupting the index. Extra options are passed through
// to the underlying client, e.g. option.WithBaseURL.
func NewEmbeddingsClient(apiKey, model string, expectedSize int, opts ...option.RequestOption) *EmbeddingsClient {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &EmbeddingsClient{
		client:       &client,
		model:        openai.EmbeddingModel(model),
		expectedSize: expectedSize,
	}
}

// Embed returns the embedding for a single text.
func (c *EmbeddingsClient) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedMany returns one embedding per input text, order-preserving.
func (c *EmbeddingsClient) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("empty input array")
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	result := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		if len(data.Embedding) != c.expectedSize {
			return nil, fmt.Errorf("embedding %d has size %d, expected %d", i, len(data.Embedding), c.expectedSize)
		}

		vec := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		result[i] = vec
	}

	return result, nil
}
