package api

import (
	"net/http"

	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/internal/domain/types"
)

type recommendationsResponse struct {
	Position string                 `json:"position"`
	Players  []types.Recommendation `json:"players"`
}

// handleRecommendPlayers serves GET /recommendations/players?position=&limit=.
func (s *Server) handleRecommendPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, ErrMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	pos, label, err := positionParam(q)
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := s.countParam(q, "limit", recommend.DefaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	picks, err := s.deps.RecommendPlayers(r.Context(), pos, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationsResponse{
		Position: label,
		Players:  types.NewRecommendations(picks),
	})
}

// handleRecommendChips serves GET /recommendations/chips?count=.
func (s *Server) handleRecommendChips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, ErrMethodNotAllowed)
		return
	}
	count, err := s.countParam(r.URL.Query(), "count", recommend.DefaultChipCount)
	if err != nil {
		writeError(w, err)
		return
	}
	chips, err := s.deps.RecommendChips(r.Context(), count)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewChipPlan(chips))
}
