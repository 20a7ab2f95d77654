package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iksnae/chatbox/internal"
)

// chatPayload is the request body for create and update. Update bodies may
// omit the title to keep the stored one.
type chatPayload struct {
	Messages []internal.Message `json:"messages"`
	Title    string             `json:"title,omitempty"`
}

func (s *Server) handleListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := s.store.ListChats()
	if err != nil {
		internal.LogError("list chats: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list chats")
		return
	}
	if chats == nil {
		chats = []internal.Chat{}
	}
	respondJSON(w, http.StatusOK, chats)
}

func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	chat, err := s.store.GetChat(chatID)
	if err != nil {
		internal.LogError("get chat %s: %v", chatID, err)
		respondError(w, http.StatusInternalServerError, "failed to get chat")
		return
	}
	if chat == nil {
		respondError(w, http.StatusNotFound, "chat not found")
		return
	}
	respondJSON(w, http.StatusOK, chat)
}

func (s *Server) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := s.store.CreateChat(payload.Messages, payload.Title)
	if err != nil {
		internal.LogError("create chat: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to create chat")
		return
	}
	respondJSON(w, http.StatusCreated, chat)
}

func (s *Server) handleUpdateChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := s.store.AppendMessages(chatID, payload.Messages, payload.Title)
	if err != nil {
		internal.LogError("update chat %s: %v", chatID, err)
		respondError(w, http.StatusInternalServerError, "failed to update chat")
		return
	}
	if chat == nil {
		respondError(w, http.StatusNotFound, "chat not found")
		return
	}
	respondJSON(w, http.StatusOK, chat)
}

func (s *Server) handleDeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	deleted, err := s.store.DeleteChat(chatID)
	if err != nil {
		internal.LogError("delete chat %s: %v", chatID, err)
		respondError(w, http.StatusInternalServerError, "failed to delete chat")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "chat not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		internal.LogError("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
