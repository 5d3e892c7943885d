// Package httpapi exposes the registry store's caller contract as a JSON
// HTTP API.
package httpapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/registry"
)

// sessionCookie carries the caller's delete-confirmation session id.
const sessionCookie = "cadastro_session"

// Server routes registry operations over HTTP. Delete-confirmation state
// is tracked per session cookie, never shared between callers.
type Server struct {
	store  *registry.Store
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*registry.Session
}

// New returns a Server over the given store. A nil logger disables
// logging.
func New(store *registry.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:    store,
		logger:   logger,
		sessions: make(map[string]*registry.Session),
	}
}

// Router builds the chi router with logging middleware and every route of
// the caller contract.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(s.accessLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/people", s.handleCreate)
		r.Get("/people", s.handleList)
		r.Get("/people/{id}", s.handleGet)
		r.Put("/people/{id}", s.handleUpdate)
		r.Delete("/people/{id}", s.handleDelete)
		r.Get("/stats", s.handleStats)
		r.Get("/export", s.handleExport)
	})
	return r
}

// session returns the caller's session, minting the cookie and session
// state on first use.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *registry.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		id = c.Value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return sess
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
	}
	sess := &registry.Session{}
	s.sessions[id] = sess
	return sess
}
