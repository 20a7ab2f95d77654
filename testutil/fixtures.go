// Package testutil provides shared fixtures for command and adapter tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/chatbox/internal"
)

// SampleChat returns a chat fixture with a short transcript
func SampleChat(id string) *internal.Chat {
	return &internal.Chat{
		ID:    id,
		Title: "Explain quicksort...",
		Messages: []internal.Message{
			{Role: internal.RoleUser, Content: "Explain quicksort"},
			{Role: internal.RoleAssistant, Content: "Quicksort partitions around a pivot and recurses."},
		},
	}
}

// SampleChatWithMessages returns a chat fixture with custom messages
func SampleChatWithMessages(id string, messages []internal.Message) *internal.Chat {
	return &internal.Chat{
		ID:       id,
		Title:    "Test chat...",
		Messages: messages,
	}
}

// TempDBPath returns a database path inside a per-test temp directory
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "chats.db")
}
