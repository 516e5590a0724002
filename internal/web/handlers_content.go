package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/schoolsite/internal/content"
)

// contentResponse mirrors the settled state a page sees for one path.
type contentResponse struct {
	Path    string  `json:"path"`
	Content any     `json:"content"`
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
}

func newContentResponse(res content.Result) contentResponse {
	out := contentResponse{Path: res.Path, Content: res.Content}
	if res.Err != nil {
		msg := res.Err.Error()
		out.Error = &msg
	}
	return out
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if !validContentPath(path) {
		jsonError(w, "path must be a document or collection under /content/", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, newContentResponse(s.loader.Load(r.Context(), path)))
}

func (s *Server) handleContentBatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base := q.Get("base")
	if !validContentPath(base) || !content.IsDirectory(base) {
		jsonError(w, "base must be a collection under /content/ ending in /", http.StatusBadRequest)
		return
	}
	names := q["name"]
	for _, name := range names {
		if name == "" || strings.HasPrefix(name, "/") || !validSegment(name) {
			jsonError(w, "invalid name: "+name, http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, http.StatusOK, newContentResponse(s.loader.LoadMany(r.Context(), base, names)))
}

// contentRoot bounds the API to CMS documents on the content host.
const contentRoot = "/content/"

func validContentPath(p string) bool {
	return strings.HasPrefix(p, contentRoot) && len(p) > len(contentRoot) && validSegment(p)
}

func validSegment(s string) bool {
	return !strings.Contains(s, "..") && !strings.Contains(s, "//") && !strings.ContainsAny(s, "?#\\")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
