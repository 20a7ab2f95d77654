package export

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/iksnae/chatbox/internal"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	chat := internal.CreateTestChat("test1")

	if err := exporter.Export(chat, &buf); err != nil {
		t.Fatalf("YAMLExporter.Export() error = %v", err)
	}

	var decoded internal.Chat
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}

	if decoded.ID != chat.ID {
		t.Errorf("ID = %q, want %q", decoded.ID, chat.ID)
	}
	if decoded.Title != chat.Title {
		t.Errorf("Title = %q, want %q", decoded.Title, chat.Title)
	}
	if len(decoded.Messages) != len(chat.Messages) {
		t.Fatalf("Messages = %d, want %d", len(decoded.Messages), len(chat.Messages))
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("YAMLExporter.Extension() = %v, want yaml", got)
	}
}
