package api

import (
	"net/http"
	"strings"

	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/domain/types"
)

// handleDraft serves GET /draft?strategy= against the loaded pool and
// POST /draft?strategy= against a pool carried in the body.
func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	strategy := strings.TrimSpace(r.URL.Query().Get("strategy"))

	var (
		res service.Result
		err error
	)
	switch r.Method {
	case http.MethodGet:
		res, err = s.deps.Draft(r.Context(), strategy)
	case http.MethodPost:
		players, derr := s.decodePlayers(w, r)
		if derr != nil {
			s.fail(w, r, derr)
			return
		}
		res, err = s.deps.DraftPool(r.Context(), players, strategy)
	default:
		writeError(w, ErrMethodNotAllowed)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res.View())
}

// handleCompare serves GET and POST /draft/compare, running every configured
// comparison strategy on the same pool.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var (
		results []service.Result
		err     error
	)
	switch r.Method {
	case http.MethodGet:
		results, err = s.deps.Compare(r.Context())
	case http.MethodPost:
		players, derr := s.decodePlayers(w, r)
		if derr != nil {
			s.fail(w, r, derr)
			return
		}
		results, err = s.deps.ComparePool(r.Context(), players)
	default:
		writeError(w, ErrMethodNotAllowed)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	squads := make([]types.Squad, 0, len(results))
	for _, res := range results {
		squads = append(squads, res.View())
	}
	writeJSON(w, http.StatusOK, types.NewComparison(squads))
}
