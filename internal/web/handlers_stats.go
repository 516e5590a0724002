package web

import (
	"net/http"
)

func (s *Server) handleContentStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "content stats unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"window": s.cfg.StatsWindow.String(),
		"stats":  s.stats.Snapshot(),
	})
}
