package internal

// Message roles as sent to the completion endpoint and stored by the chat store.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single role-tagged message in a conversation
type Message struct {
	Role    string `json:"role"` // "user", "assistant"
	Content string `json:"content"`
}

// Chat represents a persisted conversation with a title
type Chat struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
}

// ChatSummary is the `{id, title}` pair shown in chat listings
type ChatSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Summary returns the listing entry for a chat
func (c *Chat) Summary() ChatSummary {
	return ChatSummary{ID: c.ID, Title: c.Title}
}
