package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/chatbox/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		chat    *internal.Chat
		want    []string
		notWant []string
	}{
		{
			name: "chat with messages",
			chat: internal.CreateTestChat("test1"),
			want: []string{
				"# ",
				"**ID:** test1",
				"**user:**",
				"**assistant:**",
			},
		},
		{
			name: "untitled chat",
			chat: &internal.Chat{ID: "test2", Messages: []internal.Message{
				{Role: internal.RoleUser, Content: "hi"},
			}},
			want: []string{"# Untitled chat"},
		},
		{
			name: "bold markers escaped outside code blocks",
			chat: internal.CreateTestChatWithMessages("test3", []internal.Message{
				{Role: internal.RoleUser, Content: "this is **bold** text"},
			}),
			want:    []string{`\*\*bold\*\*`},
			notWant: []string{"this is **bold** text"},
		},
		{
			name: "code blocks left intact",
			chat: internal.CreateTestChatWithMessages("test4", []internal.Message{
				{Role: internal.RoleAssistant, Content: "```go\na := **b\n```"},
			}),
			want:    []string{"```go", "a := **b"},
			notWant: []string{`a := \*\*b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &MarkdownExporter{}

			if err := exporter.Export(tt.chat, &buf); err != nil {
				t.Fatalf("MarkdownExporter.Export() error = %v", err)
			}

			output := buf.String()
			for _, wantStr := range tt.want {
				if !strings.Contains(output, wantStr) {
					t.Errorf("Output should contain %q, got:\n%s", wantStr, output)
				}
			}
			for _, notWantStr := range tt.notWant {
				if strings.Contains(output, notWantStr) {
					t.Errorf("Output should not contain %q, got:\n%s", notWantStr, output)
				}
			}
		})
	}
}

func TestMarkdownExporter_Extension(t *testing.T) {
	exporter := &MarkdownExporter{}
	if got := exporter.Extension(); got != "md" {
		t.Errorf("MarkdownExporter.Extension() = %v, want md", got)
	}
}
