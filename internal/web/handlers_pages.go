package web

import (
	"errors"
	"net/http"

	"github.com/dgallion1/schoolsite/internal/pages"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.builder.Build(r.Context(), name)
		if err != nil {
			s.log.Error("build page", "page", name, "error", err)
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		if err := s.views.render(w, http.StatusOK, name, view.Page.Title, view.Footer, view.Data); err != nil {
			s.log.Error("render page", "page", name, "error", err)
			http.Error(w, "page unavailable", http.StatusInternalServerError)
		}
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	footer := s.builder.LoadFooter(r.Context())
	if err := s.views.render(w, http.StatusNotFound, "notfound", "Page not found", footer, nil); err != nil {
		s.log.Error("render not found page", "error", err)
		http.NotFound(w, r)
	}
}

// handlePageContent returns the resolved content a page would render.
func (s *Server) handlePageContent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	view, err := s.builder.Build(r.Context(), name)
	if errors.Is(err, pages.ErrUnknownPage) {
		jsonError(w, "unknown page: "+name, http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("build page", "page", name, "error", err)
		jsonError(w, "failed to build page", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
