package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/types"
	"github.com/okian/squadraft/pkg/logger"
)

const defaultTopLimit = 10

type topResponse struct {
	Position string               `json:"position"`
	Players  []types.RankedPlayer `json:"players"`
}

// handlePool serves GET /pool (summary) and POST /pool (replace).
func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, service.PoolView(s.deps.Pool(r.Context())))
	case http.MethodPost, http.MethodPut:
		players, err := s.decodePlayers(w, r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		sum, err := s.deps.ReplacePool(r.Context(), players)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.log.Info(r.Context(), "pool replaced via api", logger.Int("players", sum.Count))
		writeJSON(w, http.StatusOK, service.PoolView(sum))
	default:
		writeError(w, ErrMethodNotAllowed)
	}
}

// handlePoolRefresh serves POST /pool/refresh.
func (s *Server) handlePoolRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, ErrMethodNotAllowed)
		return
	}
	sum, err := s.deps.RefreshPool(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, service.PoolView(sum))
}

// handlePoolTop serves GET /pool/top?position=MID&limit=10.
func (s *Server) handlePoolTop(w http.ResponseWriter, r *http.Request) {
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
	limit, err := s.countParam(q, "limit", defaultTopLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	entries, err := s.deps.TopPlayers(r.Context(), pos, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := topResponse{Position: label, Players: make([]types.RankedPlayer, 0, len(entries))}
	for _, e := range entries {
		out.Players = append(out.Players, types.RankedPlayer{
			Rank:   e.Rank,
			Member: types.NewMember(draft.Candidate{Player: e.Player, Score: e.Score}),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// positionParam reads ?position=; empty or "all" selects every position.
func positionParam(q url.Values) (model.Position, string, error) {
	raw := strings.TrimSpace(q.Get("position"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return model.PositionUnknown, "ALL", nil
	}
	pos, err := model.ParsePosition(raw)
	if err != nil {
		return model.PositionUnknown, "", fmt.Errorf("%w: position: %w", ErrBadRequest, err)
	}
	return pos, pos.Short(), nil
}

// countParam reads a positive integer parameter capped at the server limit.
func (s *Server) countParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrBadRequest, key)
	}
	return min(n, s.maxLimit), nil
}
