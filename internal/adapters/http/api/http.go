// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/okian/squadraft/internal/adapters/provider"
	"github.com/okian/squadraft/internal/adapters/repository"
	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/internal/domain/types"
	"github.com/okian/squadraft/pkg/logger"
)

const maxBodyBytes = 8 << 20

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	Draft(ctx context.Context, strategy string) (service.Result, error)
	DraftPool(ctx context.Context, players []model.Player, strategy string) (service.Result, error)
	Compare(ctx context.Context) ([]service.Result, error)
	ComparePool(ctx context.Context, players []model.Player) ([]service.Result, error)

	ReplacePool(ctx context.Context, players []model.Player) (repository.Summary, error)
	RefreshPool(ctx context.Context) (repository.Summary, error)
	Pool(ctx context.Context) repository.Summary
	TopPlayers(ctx context.Context, pos model.Position, n int) ([]repository.Entry, error)

	RecommendPlayers(ctx context.Context, pos model.Position, limit int) ([]recommend.Pick, error)
	RecommendChips(ctx context.Context, count int) (recommend.Chips, error)

	Strategies() []string
	DefaultStrategy() string
	CompareStrategies() []string
	GetStats(ctx context.Context) types.Stats
}

// Server wires HTTP routes for the draft API.
type Server struct {
	deps     Dependencies
	eligible []string
	maxLimit int
	log      logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithEligibleStatuses filters bootstrap-static bodies posted to the API.
func WithEligibleStatuses(statuses []string) Option {
	return func(s *Server) { s.eligible = append([]string(nil), statuses...) }
}

// WithMaxLimit caps the limit parameter of ranking queries.
func WithMaxLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:     deps,
		eligible: []string{"a"},
		maxLimit: 100,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.handleStats, "stats"))
	mux.HandleFunc("/strategies", MetricsMiddleware(s.handleStrategies, "strategies"))
	mux.HandleFunc("/pool", MetricsMiddleware(s.handlePool, "pool"))
	mux.HandleFunc("/pool/refresh", MetricsMiddleware(s.handlePoolRefresh, "pool_refresh"))
	mux.HandleFunc("/pool/top", MetricsMiddleware(s.handlePoolTop, "pool_top"))
	mux.HandleFunc("/draft", MetricsMiddleware(s.handleDraft, "draft"))
	mux.HandleFunc("/draft/compare", MetricsMiddleware(s.handleCompare, "draft_compare"))
	mux.HandleFunc("/recommendations/players", MetricsMiddleware(s.handleRecommendPlayers, "recommend_players"))
	mux.HandleFunc("/recommendations/chips", MetricsMiddleware(s.handleRecommendChips, "recommend_chips"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, _ := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("method", r.Method),
			logger.Error(err),
		)
	}
	writeError(w, err)
}

// playersEnvelope accepts {"players":[...]} and bootstrap-static documents.
type playersEnvelope struct {
	Players  []model.PlayerRecord `json:"players"`
	Elements json.RawMessage      `json:"elements"`
}

// decodePlayers reads a pool from the request body. Accepted shapes: a JSON
// array of records, {"players":[...]}, or a bootstrap-static document.
func (s *Server) decodePlayers(w http.ResponseWriter, r *http.Request) ([]model.Player, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrBadRequest, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrBadRequest)
	}
	if data[0] == '[' {
		players, err := provider.ParseRecords(data)
		if err != nil {
			return nil, badBody(err)
		}
		return players, nil
	}

	var env playersEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if len(env.Elements) > 0 {
		players, err := provider.ParseBootstrap(data, s.eligible)
		if err != nil {
			return nil, badBody(err)
		}
		return players, nil
	}
	return model.PlayersFromRecords(env.Players)
}

// badBody keeps player validation errors and marks decode failures as bad
// requests.
func badBody(err error) error {
	if _, code := classify(err); code == "invalid_player" {
		return err
	}
	return fmt.Errorf("%w: %w", ErrBadRequest, err)
}
