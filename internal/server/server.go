package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mitesh699/dealflow/internal/engine"
	"github.com/mitesh699/dealflow/internal/store"
)

// Server is the dealflow HTTP API server.
type Server struct {
	db      *store.DB
	engine  *engine.Engine
	router  chi.Router
	origins []string
	version string
	started time.Time
}

// New creates a Server over the given store and engine. origins is the
// CORS allow-list for the dev frontend.
func New(db *store.DB, eng *engine.Engine, origins []string, version string) *Server {
	s := &Server{
		db:      db,
		engine:  eng,
		origins: origins,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.handleListContacts)
			r.Post("/", s.handleCreateContact)
			r.Get("/{contactID}", s.handleGetContact)
			r.Put("/{contactID}", s.handleUpdateContact)
			r.Delete("/{contactID}", s.handleDeleteContact)
			r.Get("/{contactID}/activities", s.handleListActivities)
		})

		r.Get("/followups", s.handleFollowUps)
		r.Get("/notifications", s.handleNotifications)
		r.Get("/stats", s.handleStats)

		r.Route("/agent", func(r chi.Router) {
			r.Get("/actions", s.handleAgentActions)
			r.Post("/execute", s.handleAgentExecute)
		})

		r.Post("/ai/triage", s.handleTriage)
		r.Post("/ai/meeting-notes", s.handleMeetingNotes)
		r.Get("/news", s.handleNews)
	})

	// Embedded dashboard, if built in.
	r.Get("/*", spaHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}
