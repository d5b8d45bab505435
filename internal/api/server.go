// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The route tree has two surfaces. The public surface under /api/v1 serves
anonymous visitors and reads the display language from the visitor session.
The admin surface under /api/v1/admin requires a verified token and an
editor role at minimum; destructive account operations require admin.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/duongnk/eventide/internal/analytics"
	"github.com/duongnk/eventide/internal/core/category"
	"github.com/duongnk/eventide/internal/core/contact"
	"github.com/duongnk/eventide/internal/core/event"
	"github.com/duongnk/eventide/internal/core/language"
	"github.com/duongnk/eventide/internal/core/media"
	"github.com/duongnk/eventide/internal/core/post"
	"github.com/duongnk/eventide/internal/core/reference"
	"github.com/duongnk/eventide/internal/platform/config"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/middleware"
	"github.com/duongnk/eventide/internal/platform/sec"
	"github.com/duongnk/eventide/internal/search"
	"github.com/duongnk/eventide/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles admin authentication (login, profile, password change).
	Auth *auth.Handler

	// Search serves the unified cross-content search and autocomplete.
	Search *search.Handler

	// Language exposes the visitor language selection.
	Language *language.Handler

	// Event manages the community events catalogue.
	Event *event.Handler

	// Post manages the blog.
	Post *post.Handler

	// Category manages content classification.
	Category *category.Handler

	// Media manages the upload gallery.
	Media *media.Handler

	// Reference manages sponsors, guides, and FAQs.
	Reference *reference.Handler

	// Contact handles the visitor contact form and the admin inbox.
	Contact *contact.Handler

	// Analytics handles interaction tracking and the reporting surface.
	Analytics *analytics.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, resolver middleware.LanguageResolver, uploads http.FileSystem, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.VisitorSession(resolver))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Uploaded media is served straight from disk under the public prefix.
	r.Handle(media.URLPrefix+"*", http.StripPrefix(media.URLPrefix, http.FileServer(uploads)))

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// Search and autocomplete live at the version root.
		h.Search.RegisterRoutes(api)

		api.Route("/language", h.Language.RegisterRoutes)
		api.Route("/events", h.Event.RegisterPublicRoutes)
		api.Route("/posts", h.Post.RegisterPublicRoutes)
		api.Route("/categories", h.Category.RegisterPublicRoutes)
		api.Route("/gallery", h.Media.RegisterPublicRoutes)
		api.Route("/contact", h.Contact.RegisterPublicRoutes)
		api.Route("/track", h.Analytics.RegisterPublicRoutes)
		api.Route("/auth", h.Auth.RegisterPublicRoutes)

		// Sponsors, guides, and FAQs register at the version root too.
		h.Reference.RegisterPublicRoutes(api)

		// # Admin Surface
		// Everything below requires an authenticated editor at minimum.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.RequireRole(sec.RoleEditor))

			admin.Route("/events", h.Event.RegisterAdminRoutes)
			admin.Route("/posts", h.Post.RegisterAdminRoutes)
			admin.Route("/categories", h.Category.RegisterAdminRoutes)
			admin.Route("/media", h.Media.RegisterAdminRoutes)
			admin.Route("/messages", h.Contact.RegisterAdminRoutes)
			admin.Route("/analytics", h.Analytics.RegisterAdminRoutes)
			admin.Route("/auth", h.Auth.RegisterAdminRoutes)

			h.Reference.RegisterAdminRoutes(admin)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
