// Package chatstore is the HTTP client for the chat persistence API.
package chatstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/iksnae/chatbox/internal"
)

// Client talks to a chat store server at a base URL
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the chat store at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type createRequest struct {
	Messages []internal.Message `json:"messages"`
	Title    string             `json:"title"`
}

type updateRequest struct {
	Messages []internal.Message `json:"messages"`
}

// ListChats fetches all stored chats
func (c *Client) ListChats(ctx context.Context) ([]internal.Chat, error) {
	var chats []internal.Chat
	if err := c.do(ctx, http.MethodGet, "/api/chat/", nil, &chats); err != nil {
		return nil, &internal.StoreError{Op: "list", Err: err}
	}
	return chats, nil
}

// GetChat fetches a single chat by id
func (c *Client) GetChat(ctx context.Context, id string) (*internal.Chat, error) {
	var chat internal.Chat
	if err := c.do(ctx, http.MethodGet, "/api/chat/"+id, nil, &chat); err != nil {
		return nil, &internal.StoreError{Op: "get", ChatID: id, Err: err}
	}
	return &chat, nil
}

// CreateChat stores a new chat and returns it with its assigned id
func (c *Client) CreateChat(ctx context.Context, messages []internal.Message, title string) (*internal.Chat, error) {
	var chat internal.Chat
	body := createRequest{Messages: messages, Title: title}
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &chat); err != nil {
		return nil, &internal.StoreError{Op: "create", Err: err}
	}
	return &chat, nil
}

// UpdateChat appends messages to a stored chat and returns the updated record
func (c *Client) UpdateChat(ctx context.Context, id string, messages []internal.Message) (*internal.Chat, error) {
	var chat internal.Chat
	body := updateRequest{Messages: messages}
	if err := c.do(ctx, http.MethodPatch, "/api/chat/"+id, body, &chat); err != nil {
		return nil, &internal.StoreError{Op: "update", ChatID: id, Err: err}
	}
	return &chat, nil
}

// DeleteChat removes a stored chat
func (c *Client) DeleteChat(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/chat/"+id, nil, nil); err != nil {
		return &internal.StoreError{Op: "delete", ChatID: id, Err: err}
	}
	return nil
}

// do performs one JSON request/response round trip. out may be nil for
// responses with no body of interest.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
