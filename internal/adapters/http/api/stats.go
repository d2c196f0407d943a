package api

import "net/http"

type strategiesResponse struct {
	Default    string   `json:"default"`
	Strategies []string `json:"strategies"`
	Compare    []string `json:"compare"`
}

// handleStats serves GET /stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, ErrMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.GetStats(r.Context()))
}

// handleStrategies serves GET /strategies.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, ErrMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, strategiesResponse{
		Default:    s.deps.DefaultStrategy(),
		Strategies: s.deps.Strategies(),
		Compare:    s.deps.CompareStrategies(),
	})
}
