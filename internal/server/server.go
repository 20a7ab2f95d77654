// Package server exposes the chat store over HTTP. The routes mirror the
// API the chatstore client consumes: list, get, create, update (append),
// delete under /api/chat.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iksnae/chatbox/internal/store"
)

// Server is the chat store HTTP server
type Server struct {
	store  *store.Store
	router chi.Router
}

// New creates a server over the given store
func New(st *store.Store) *Server {
	s := &Server{store: st}

	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Recoverer)

	r.Route("/api/chat", func(r chi.Router) {
		r.Get("/", s.handleListChats)
		r.Post("/", s.handleCreateChat)
		r.Get("/{chatID}", s.handleGetChat)
		r.Patch("/{chatID}", s.handleUpdateChat)
		r.Delete("/{chatID}", s.handleDeleteChat)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
