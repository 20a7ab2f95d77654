package internal

import (
	"context"
	"sync"
)

// titleRuneLimit is the number of leading prompt runes used for a new chat's title.
const titleRuneLimit = 30

// Completer generates one assistant reply for an ordered transcript.
type Completer interface {
	Complete(ctx context.Context, transcript []Message) (Message, error)
}

// ChatStore persists chats. UpdateChat appends the given messages to the
// stored chat; it does not replace the transcript.
type ChatStore interface {
	ListChats(ctx context.Context) ([]Chat, error)
	GetChat(ctx context.Context, id string) (*Chat, error)
	CreateChat(ctx context.Context, messages []Message, title string) (*Chat, error)
	UpdateChat(ctx context.Context, id string, messages []Message) (*Chat, error)
	DeleteChat(ctx context.Context, id string) error
}

// View receives rendering side effects from the session.
type View interface {
	FocusPrompt()
}

// State is a point-in-time copy of the session state for rendering.
type State struct {
	DraftPrompt      string
	ActiveTranscript []Message
	ActiveChatID     string // empty until the active transcript is persisted
	ChatSummaries    []ChatSummary
}

// Session owns the volatile state of one chat session and mediates between
// the view, the completion service, and the chat store. All state mutation
// happens inside the intent handlers; collaborator failures are returned,
// never panicked.
type Session struct {
	completer Completer
	store     ChatStore
	view      View

	mu         sync.Mutex
	submitting bool

	draftPrompt      string
	activeTranscript []Message
	activeChatID     string
	chatSummaries    []ChatSummary
}

// NewSession creates a session with empty state. view may be nil.
func NewSession(completer Completer, store ChatStore, view View) *Session {
	return &Session{
		completer: completer,
		store:     store,
		view:      view,
	}
}

// Initialize fetches the chat list and focuses the prompt. The prompt is
// focused regardless of whether the fetch succeeds; on failure the chat list
// stays empty and the error is returned for reporting.
func (s *Session) Initialize(ctx context.Context) error {
	if s.view != nil {
		s.view.FocusPrompt()
	}

	chats, err := s.store.ListChats(ctx)
	if err != nil {
		return err
	}

	summaries := make([]ChatSummary, 0, len(chats))
	for i := range chats {
		summaries = append(summaries, chats[i].Summary())
	}

	s.mu.Lock()
	s.chatSummaries = summaries
	s.mu.Unlock()

	return nil
}

// SetDraft records the uncommitted prompt text.
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	s.draftPrompt = text
	s.mu.Unlock()
}

// SubmitPrompt runs one conversation turn: append the user message, request
// a completion, then persist the turn. An empty prompt is a no-op. A second
// submission while one is in flight is rejected with ErrSubmissionInFlight.
//
// On completion failure nothing changes and the draft keeps the prompt text.
// Once the completion succeeds the reply is always shown: the transcript is
// updated and the draft cleared even when the persistence call fails, in
// which case the store error is returned so the view can report it.
func (s *Session) SubmitPrompt(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.submitting = true
	s.draftPrompt = text
	transcript := copyMessages(s.activeTranscript)
	chatID := s.activeChatID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	userMessage := Message{Role: RoleUser, Content: text}
	pending := append(transcript, userMessage)

	assistantMessage, err := s.completer.Complete(ctx, pending)
	if err != nil {
		return err
	}

	updated := append(pending, assistantMessage)

	var storeErr error
	if chatID == "" {
		created, err := s.store.CreateChat(ctx, updated, DeriveTitle(text))
		if err != nil {
			storeErr = err
		} else {
			s.mu.Lock()
			s.activeChatID = created.ID
			s.chatSummaries = append([]ChatSummary{created.Summary()}, s.chatSummaries...)
			s.mu.Unlock()
		}
	} else {
		if _, err := s.store.UpdateChat(ctx, chatID, []Message{userMessage, assistantMessage}); err != nil {
			storeErr = err
		}
	}

	s.mu.Lock()
	s.activeTranscript = updated
	s.draftPrompt = ""
	s.mu.Unlock()

	return storeErr
}

// SelectChat makes a stored chat the active one. On failure the current
// state is left untouched.
func (s *Session) SelectChat(ctx context.Context, id string) error {
	chat, err := s.store.GetChat(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.activeTranscript = copyMessages(chat.Messages)
	s.activeChatID = id
	s.mu.Unlock()

	return nil
}

// StartNewChat switches to an empty, unpersisted chat. Idempotent, no
// remote calls.
func (s *Session) StartNewChat() {
	s.mu.Lock()
	s.activeTranscript = nil
	s.activeChatID = ""
	s.mu.Unlock()
}

// DeleteChat removes a stored chat. When the deleted chat is the active one
// the session switches to a new empty chat.
func (s *Session) DeleteChat(ctx context.Context, id string) error {
	if err := s.store.DeleteChat(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.chatSummaries[:0]
	for _, summary := range s.chatSummaries {
		if summary.ID != id {
			kept = append(kept, summary)
		}
	}
	s.chatSummaries = kept
	if s.activeChatID == id {
		s.activeTranscript = nil
		s.activeChatID = ""
	}
	s.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		DraftPrompt:      s.draftPrompt,
		ActiveTranscript: copyMessages(s.activeTranscript),
		ActiveChatID:     s.activeChatID,
		ChatSummaries:    append([]ChatSummary(nil), s.chatSummaries...),
	}
}

// DeriveTitle builds a chat title from the first prompt of a conversation:
// the first 30 runes of the text followed by "...". The marker is appended
// even when the prompt is shorter than the limit, so a prompt of "Hi"
// titles the chat "Hi...".
func DeriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleRuneLimit {
		runes = runes[:titleRuneLimit]
	}
	return string(runes) + "..."
}

// copyMessages clones a transcript so intent handlers never mutate a slice
// the view may still be holding.
func copyMessages(messages []Message) []Message {
	if len(messages) == 0 {
		return nil
	}
	return append([]Message(nil), messages...)
}
