package pkg

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ChatCompleter sends a single user message to a chat model and returns the
// reply text.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIChat talks to an OpenAI compatible chat-completion endpoint.
type OpenAIChat struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIChat
/* Builds a chat client.
apiKey: the provider credential, never hard-coded
baseURL: alternate endpoint (proxy, compatible provider). Empty keeps the SDK default.
model: the model identifier, e.g. gpt-4o-mini
timeout: per call deadline. Zero means the caller's context only. */
func NewOpenAIChat(apiKey, baseURL, model string, timeout time.Duration) *OpenAIChat {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIChat{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// Model returns the configured model identifier.
func (c *OpenAIChat) Model() string {
	return c.model
}

func (c *OpenAIChat) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// ChatFunc adapts a plain function to ChatCompleter.
type ChatFunc func(ctx context.Context, prompt string) (string, error)

func (f ChatFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
