// Package store persists chats in a local SQLite database. It backs the
// bundled chat store server.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/iksnae/chatbox/internal"
)

// Store is a SQLite-backed chat store
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	s := &Store{db: db}
	if err := s.initTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initTables() error {
	chatsTableSQL := `
	CREATE TABLE IF NOT EXISTS chats (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := s.db.Exec(chatsTableSQL); err != nil {
		return fmt.Errorf("failed to create chats table: %w", err)
	}

	messagesTableSQL := `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chat_id TEXT NOT NULL REFERENCES chats(id),
		role TEXT NOT NULL,
		content TEXT NOT NULL
	);`
	if _, err := s.db.Exec(messagesTableSQL); err != nil {
		return fmt.Errorf("failed to create messages table: %w", err)
	}

	indexSQL := "CREATE INDEX IF NOT EXISTS idx_messages_chat_id ON messages(chat_id);"
	if _, err := s.db.Exec(indexSQL); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// ListChats returns all chats, newest first, with their full transcripts
func (s *Store) ListChats() ([]internal.Chat, error) {
	rows, err := s.db.Query("SELECT id, title FROM chats ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chats []internal.Chat
	for rows.Next() {
		var chat internal.Chat
		if err := rows.Scan(&chat.ID, &chat.Title); err != nil {
			return nil, fmt.Errorf("failed to scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for i := range chats {
		messages, err := s.chatMessages(chats[i].ID)
		if err != nil {
			return nil, err
		}
		chats[i].Messages = messages
	}
	return chats, nil
}

// GetChat returns a chat by id, or nil when no chat with that id exists
func (s *Store) GetChat(id string) (*internal.Chat, error) {
	var chat internal.Chat
	err := s.db.QueryRow("SELECT id, title FROM chats WHERE id = ?", id).Scan(&chat.ID, &chat.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat %s: %w", id, err)
	}

	messages, err := s.chatMessages(id)
	if err != nil {
		return nil, err
	}
	chat.Messages = messages
	return &chat, nil
}

// CreateChat stores a new chat with a generated id and returns it
func (s *Store) CreateChat(messages []internal.Message, title string) (*internal.Chat, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO chats (id, title) VALUES (?, ?)", id, title); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to insert chat: %w", err)
	}
	if err := insertMessages(tx, id, messages); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &internal.Chat{
		ID:       id,
		Title:    title,
		Messages: append([]internal.Message(nil), messages...),
	}, nil
}

// AppendMessages appends messages to a stored chat. A non-empty title
// replaces the stored one. Returns the updated chat, or nil when no chat
// with that id exists.
func (s *Store) AppendMessages(id string, messages []internal.Message, title string) (*internal.Chat, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var existing string
	err = tx.QueryRow("SELECT title FROM chats WHERE id = ?", id).Scan(&existing)
	if err == sql.ErrNoRows {
		_ = tx.Rollback()
		return nil, nil
	}
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to check chat %s: %w", id, err)
	}

	if title != "" {
		if _, err := tx.Exec("UPDATE chats SET title = ? WHERE id = ?", title, id); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to update title: %w", err)
		}
	}
	if err := insertMessages(tx, id, messages); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return s.GetChat(id)
}

// DeleteChat removes a chat and its messages. Returns false when no chat
// with that id exists.
func (s *Store) DeleteChat(id string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM messages WHERE chat_id = ?", id); err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to delete messages: %w", err)
	}
	result, err := tx.Exec("DELETE FROM chats WHERE id = ?", id)
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to delete chat: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}

	return affected > 0, nil
}

// chatMessages returns a chat's messages in insertion order
func (s *Store) chatMessages(chatID string) ([]internal.Message, error) {
	rows, err := s.db.Query("SELECT role, content FROM messages WHERE chat_id = ? ORDER BY id", chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []internal.Message
	for rows.Next() {
		var msg internal.Message
		if err := rows.Scan(&msg.Role, &msg.Content); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}

func insertMessages(tx *sql.Tx, chatID string, messages []internal.Message) error {
	stmt, err := tx.Prepare("INSERT INTO messages (chat_id, role, content) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, msg := range messages {
		if _, err := stmt.Exec(chatID, msg.Role, msg.Content); err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}
	return nil
}
