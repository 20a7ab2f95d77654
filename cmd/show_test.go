package cmd

import (
	"testing"

	"github.com/iksnae/chatbox/internal"
	"github.com/iksnae/chatbox/testutil"
)

func TestDisplayChat(t *testing.T) {
	tests := []struct {
		name  string
		chat  *internal.Chat
		limit int
	}{
		{
			name:  "chat with messages",
			chat:  testutil.SampleChat("chat-1"),
			limit: 0,
		},
		{
			name:  "untitled empty chat",
			chat:  &internal.Chat{ID: "chat-2"},
			limit: 0,
		},
		{
			name: "limit smaller than transcript",
			chat: testutil.SampleChatWithMessages("chat-3", []internal.Message{
				{Role: internal.RoleUser, Content: "one"},
				{Role: internal.RoleAssistant, Content: "two"},
				{Role: internal.RoleUser, Content: "three"},
				{Role: internal.RoleAssistant, Content: "four"},
			}),
			limit: 2,
		},
		{
			name:  "limit larger than transcript",
			chat:  testutil.SampleChat("chat-4"),
			limit: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Rendering is terminal-dependent; verify it does not panic
			displayChat(tt.chat, tt.limit)
		})
	}
}
