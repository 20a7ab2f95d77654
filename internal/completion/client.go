// Package completion adapts an OpenAI-compatible chat completion endpoint
// to the session's Completer interface.
package completion

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/iksnae/chatbox/internal"
)

// Client calls an OpenAI-compatible chat completion endpoint
type Client struct {
	api   *openai.Client
	model string
}

// New creates a client for the given endpoint. An empty baseURL keeps the
// library default (api.openai.com); an empty model falls back to the
// configured default.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = internal.DefaultModel
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends the transcript and returns the first choice as an
// assistant message. Transport failures and responses without choices both
// surface as *internal.CompletionError.
func (c *Client) Complete(ctx context.Context, transcript []internal.Message) (internal.Message, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toChatMessages(transcript),
	})
	if err != nil {
		return internal.Message{}, &internal.CompletionError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return internal.Message{}, &internal.CompletionError{Err: errors.New("response contains no choices")}
	}

	return internal.Message{
		Role:    internal.RoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

// toChatMessages converts the session transcript to the wire format,
// preserving order.
func toChatMessages(transcript []internal.Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript))
	for _, msg := range transcript {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return messages
}
