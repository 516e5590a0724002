package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dgallion1/schoolsite/internal/config"
	"github.com/dgallion1/schoolsite/internal/content"
	"github.com/dgallion1/schoolsite/internal/pages"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// publishedPrefixes are the public dir trees served as plain files.
var publishedPrefixes = []string{"/content", "/downloads", "/images", "/videos"}

// Server renders the school site and exposes the content API.
type Server struct {
	router  chi.Router
	builder *pages.Builder
	loader  *content.Loader
	stats   *content.FetchStats
	views   *renderer
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(builder *pages.Builder, loader *content.Loader, stats *content.FetchStats, log *slog.Logger, cfg config.Config) (*Server, error) {
	views, err := newRenderer(cfg.SiteName)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	s := &Server{
		builder: builder,
		loader:  loader,
		stats:   stats,
		views:   views,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	for _, p := range pages.All() {
		r.Get(p.Route, s.handlePage(p.Name))
	}
	r.Handle("/static/*", staticHandler())
	if s.cfg.PublicDir != "" {
		files := publishedFiles(s.cfg.PublicDir)
		for _, prefix := range publishedPrefixes {
			r.Handle(prefix+"/*", files)
		}
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/content", s.handleContent)
		r.Get("/content/batch", s.handleContentBatch)
		r.Get("/pages/{name}", s.handlePageContent)
		r.Get("/stats/content", s.handleContentStats)
	})

	r.NotFound(s.handleNotFound)
	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
