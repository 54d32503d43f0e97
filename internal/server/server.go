// Package server exposes the registry over a JSON HTTP API. Authenticated
// routes carry a bearer token; the shared routes are addressed by share
// code and open to anonymous gift-givers, with the PIN gate enforced
// through short-lived pin tokens.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wensjes/registry/internal/auth"
	"github.com/wensjes/registry/internal/metrics"
	"github.com/wensjes/registry/internal/service"
)

// Server bundles the handlers and their dependencies.
type Server struct {
	svc     *service.RegistryService
	auth    auth.Authenticator
	users   auth.UserStorage
	tokens  *auth.TokenManager
	session *auth.Session
	pins    *pinSigner
	logger  *slog.Logger
}

// New creates a server over the given service and auth components.
func New(svc *service.RegistryService, authenticator auth.Authenticator, users auth.UserStorage, tokens *auth.TokenManager, session *auth.Session, jwtSecret string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		svc:     svc,
		auth:    authenticator,
		users:   users,
		tokens:  tokens,
		session: session,
		pins:    newPinSigner(jwtSecret),
		logger:  logger,
	}
}

// Router builds the full route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogging(s.logger))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Pin-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.With(requireAuth(s.tokens)).Get("/me", s.handleMe)
	})

	r.Get("/api/labels", s.handleLabels)

	r.Route("/api/persons", func(r chi.Router) {
		r.Use(requireAuth(s.tokens))
		r.Get("/", s.handleListPersons)
		r.Post("/", s.handleCreatePerson)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetPerson)
			r.Patch("/", s.handleUpdatePerson)
			r.Delete("/", s.handleDeletePerson)
			r.Post("/collaborators", s.handleAddCollaborator)
			r.Delete("/collaborators/{userID}", s.handleRemoveCollaborator)
			r.Get("/items", s.handleListItems)
			r.Post("/items", s.handleAddItem)
			r.Post("/items/reorder", s.handleReorder)
			r.Get("/budget", s.handleBudget)
			r.Get("/suggestions", s.handleSuggestions)
			r.Get("/watch", s.handleWatchItems)
		})
	})

	r.Route("/api/items/{id}", func(r chi.Router) {
		r.Use(requireAuth(s.tokens))
		r.Patch("/", s.handleUpdateItem)
		r.Delete("/", s.handleDeleteItem)
		r.Post("/toggle", s.handleTogglePurchased)
	})

	r.Route("/api/shared/{code}", func(r chi.Router) {
		r.Use(optionalAuth(s.tokens))
		r.Get("/", s.handleSharedView)
		r.Post("/pin", s.handleVerifyPin)
		r.Post("/items/{id}/toggle", s.handleSharedToggle)
		r.Get("/watch", s.handleSharedWatch)
	})

	return r
}
