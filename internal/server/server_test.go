package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/internal/chatstore"
	"github.com/iksnae/chatbox/internal/store"
	"github.com/iksnae/chatbox/testutil"
)

// newTestServer serves a fresh sqlite-backed store and returns a client
// pointed at it. Exercises the exact round trip the chat command performs.
func newTestServer(t *testing.T) *chatstore.Client {
	t.Helper()

	st, err := store.Open(testutil.TempDBPath(t))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	srv := httptest.NewServer(New(st))
	t.Cleanup(srv.Close)

	return chatstore.New(srv.URL)
}

func TestServer_RoundTrip(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	// Empty store lists no chats
	chats, err := client.ListChats(ctx)
	if err != nil {
		t.Fatalf("ListChats() error = %v", err)
	}
	if len(chats) != 0 {
		t.Fatalf("ListChats() = %d chats, want 0", len(chats))
	}

	// Create
	created, err := client.CreateChat(ctx, []internal.Message{
		{Role: internal.RoleUser, Content: "hi"},
		{Role: internal.RoleAssistant, Content: "hello"},
	}, "hi...")
	if err != nil {
		t.Fatalf("CreateChat() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateChat() returned empty id")
	}

	// Get
	got, err := client.GetChat(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetChat() error = %v", err)
	}
	if got.Title != "hi..." || len(got.Messages) != 2 {
		t.Errorf("GetChat() = %+v, want stored chat", got)
	}

	// Update appends only the new turn
	updated, err := client.UpdateChat(ctx, created.ID, []internal.Message{
		{Role: internal.RoleUser, Content: "more"},
		{Role: internal.RoleAssistant, Content: "sure"},
	})
	if err != nil {
		t.Fatalf("UpdateChat() error = %v", err)
	}
	if len(updated.Messages) != 4 {
		t.Fatalf("updated Messages = %d, want 4", len(updated.Messages))
	}
	if updated.Messages[2].Content != "more" || updated.Messages[3].Content != "sure" {
		t.Errorf("appended messages out of order: %v", updated.Messages)
	}

	// List sees it
	chats, err = client.ListChats(ctx)
	if err != nil {
		t.Fatalf("ListChats() error = %v", err)
	}
	if len(chats) != 1 || chats[0].ID != created.ID {
		t.Errorf("ListChats() = %+v, want the created chat", chats)
	}

	// Delete
	if err := client.DeleteChat(ctx, created.ID); err != nil {
		t.Fatalf("DeleteChat() error = %v", err)
	}
	chats, err = client.ListChats(ctx)
	if err != nil {
		t.Fatalf("ListChats() error = %v", err)
	}
	if len(chats) != 0 {
		t.Errorf("ListChats() after delete = %d chats, want 0", len(chats))
	}
}

func TestServer_UnknownChat(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	_, err := client.GetChat(ctx, "does-not-exist")
	var storeErr *internal.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("GetChat() error = %v, want *internal.StoreError", err)
	}

	if _, err := client.UpdateChat(ctx, "does-not-exist", nil); !errors.As(err, &storeErr) {
		t.Errorf("UpdateChat() error = %v, want *internal.StoreError", err)
	}
	if err := client.DeleteChat(ctx, "does-not-exist"); !errors.As(err, &storeErr) {
		t.Errorf("DeleteChat() error = %v, want *internal.StoreError", err)
	}
}

func TestServer_ListChats_EmptyBody(t *testing.T) {
	st, err := store.Open(testutil.TempDBPath(t))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	srv := httptest.NewServer(New(st))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/chat/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	// A JSON array even when empty, never null
	if got := string(body); got != "[]\n" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestServer_CreateChat_BadBody(t *testing.T) {
	st, err := store.Open(testutil.TempDBPath(t))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	srv := httptest.NewServer(New(st))
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/chat", "application/json", nil)
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
