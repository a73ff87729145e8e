// ABOUTME: HTTP server struct with chi router, document store, session store, and template engine.
// ABOUTME: Configures public page routes, the admin JSON API, and operational endpoints.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brightpath-web/sitewright/projection"
	"github.com/brightpath-web/sitewright/store"
)

const (
	maxSessions     = 100
	sessionTTL      = 2 * time.Hour
	cleanupInterval = 10 * time.Minute
)

// Server holds the chi router, the document store, the admin session store,
// and the parsed page templates. The theme holder is refreshed by the store's
// apply hook, so page renders always see the latest published theme tokens.
type Server struct {
	router    chi.Router
	store     *store.Store
	sessions  *SessionStore
	theme     *projection.ThemeHolder
	templates *TemplateEngine

	stopCleanup func()
}

// NewServer creates a Server with all routes configured and templates parsed.
func NewServer(st *store.Store, theme *projection.ThemeHolder) (*Server, error) {
	templates, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:     st,
		sessions:  NewSessionStore(maxSessions, sessionTTL),
		theme:     theme,
		templates: templates,
	}
	s.stopCleanup = s.sessions.StartCleanup(cleanupInterval)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	// Public pages.
	r.Get("/", s.handleHomePage)
	r.Get("/about-us", s.handleAboutPage)
	r.Get("/services", s.handleServicesPage)
	r.Get("/blog", s.handleBlogPage)
	r.Get("/blog/{slug}", s.handleBlogPostPage)
	r.Get("/contact-us", s.handleContactPage)
	r.Get("/privacy-policy", s.handlePrivacyPage)
	r.Get("/terms-of-service", s.handleTermsPage)

	// Admin JSON API.
	r.Route("/admin/api", func(r chi.Router) {
		r.Get("/site", s.handleGetSite)
		r.Post("/commands", s.handleDispatchCommand)
		r.Get("/export", s.handleExportYAML)
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/sessions/{id}/mode", s.handleGetMode)
		r.Put("/sessions/{id}/mode", s.handleSetMode)
		r.Post("/sessions/{id}/commands", s.handleSessionCommand)
	})

	// Operational endpoints.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router = r
	return s, nil
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops the background session cleanup.
func (s *Server) Close() {
	if s.stopCleanup != nil {
		s.stopCleanup()
	}
}
