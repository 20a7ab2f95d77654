package internal

// CreateTestChat creates a test chat with sample data
func CreateTestChat(id string) *Chat {
	return &Chat{
		ID:    id,
		Title: "Test chat...",
		Messages: []Message{
			{Role: RoleUser, Content: "Hello, how are you?"},
			{Role: RoleAssistant, Content: "I'm doing well, thank you!"},
		},
	}
}

// CreateTestChatWithMessages creates a test chat with custom messages
func CreateTestChatWithMessages(id string, messages []Message) *Chat {
	return &Chat{
		ID:       id,
		Title:    "Test chat...",
		Messages: messages,
	}
}
