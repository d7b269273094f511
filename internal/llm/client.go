package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client implements Completer using the OpenAI chat completions API.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new chat completions client. Extra options are passed
// through to the underlying client, e.g. option.WithBaseURL.
func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &Client{
		client: &client,
		model:  model,
	}
}

// Complete sends a single system prompt + user message pair and returns the
// completion text. An empty completion is returned as an empty string, not
// an error.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Model: c.model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
