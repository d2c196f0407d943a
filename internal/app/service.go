// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/okian/squadraft/internal/adapters/repository"
	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/internal/domain/types"
	"github.com/okian/squadraft/pkg/logger"
	"github.com/okian/squadraft/pkg/metrics"
)

// PoolLoader fetches a fresh player pool.
type PoolLoader interface {
	Name() string
	Load(ctx context.Context) ([]model.Player, error)
}

// Result is one finished draft run.
type Result struct {
	RunID string
	Squad draft.Squad
	Took  time.Duration
}

// View converts the result to its wire shape.
func (r Result) View() types.Squad {
	return types.NewSquad(r.RunID, r.Squad, r.Took)
}

// Service owns the engine, the pool store and the pool loader, plus the
// cached season data behind recommendations.
type Service struct {
	mu sync.RWMutex

	engine  *draft.Engine
	store   repository.Store
	loader  PoolLoader
	compare []string
	newID   func() string

	recommender *recommend.Recommender
	seasons     SeasonLoader
	seasonTTL   time.Duration
	seasonCache atomic.Pointer[seasonSnapshot]
	seasonGroup singleflight.Group

	started   bool
	startedAt time.Time
	drafts    atomic.Uint64

	logger logger.Logger
}

// New constructs a new Service with default configuration: default rules,
// both built-in strategies and an empty in-memory pool. Without WithStore
// the pool store ranks with the engine's scorer.
func New(opts ...Option) *Service {
	s := &Service{
		newID:       func() string { return uuid.NewString() },
		recommender: recommend.New(),
		seasonTTL:   defaultSeasonTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		// Defaults always validate.
		s.engine, _ = draft.NewEngine()
	}
	if s.store == nil {
		s.store = repository.NewPoolStore(repository.WithScorer(s.engine.Scorer()))
	}
	return s
}

// Start marks the service as running.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.started = true
	s.startedAt = time.Now()
	rules := s.engine.Rules()
	s.logger.Info(ctx, "draft service started",
		logger.String("default_strategy", s.engine.DefaultStrategy()),
		logger.Any("strategies", s.engine.Strategies()),
		logger.String("budget", model.Money(rules.Budget).String()),
		logger.Int("team_cap", rules.TeamCap),
		logger.Int("squad_size", rules.SquadSize()),
	)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "draft service stopped",
		logger.Int("drafts", int(s.drafts.Load())),
	)
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Nop()
	}
	return s.logger
}

// RefreshPool reloads the stored pool from the configured loader.
func (s *Service) RefreshPool(ctx context.Context) (repository.Summary, error) {
	if s.loader == nil {
		return repository.Summary{}, ErrNoProvider
	}
	start := time.Now()
	players, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordPoolRefresh(s.loader.Name(), metrics.ResultFailure,
			float64(time.Since(start).Microseconds())/1000, 0)
		metrics.RecordErrorByComponent("provider", "load")
		s.log().Error(ctx, "pool refresh failed",
			logger.String("pool_source", s.loader.Name()),
			logger.Error(err),
		)
		return repository.Summary{}, fmt.Errorf("%w: %w", ErrRefresh, err)
	}
	return s.replace(ctx, players, s.loader.Name())
}

// ReplacePool stores a caller-supplied pool.
func (s *Service) ReplacePool(ctx context.Context, players []model.Player) (repository.Summary, error) {
	return s.replace(ctx, players, "api")
}

func (s *Service) replace(ctx context.Context, players []model.Player, source string) (repository.Summary, error) {
	if len(players) == 0 {
		return repository.Summary{}, ErrEmptyPool
	}
	if err := uniqueNames(players); err != nil {
		return repository.Summary{}, err
	}
	summary, err := s.store.Replace(ctx, players, source)
	if err != nil {
		return repository.Summary{}, err
	}
	s.log().Info(ctx, "player pool replaced",
		logger.String("pool_source", source),
		logger.Int("players", summary.Count),
		logger.Int("version", int(summary.Version)),
	)
	return summary, nil
}

func uniqueNames(players []model.Player) error {
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %q", draft.ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// Draft runs a strategy against the stored pool. An empty name selects the
// default strategy.
func (s *Service) Draft(ctx context.Context, strategy string) (Result, error) {
	players, err := s.store.Players(ctx)
	if err != nil {
		metrics.RecordDraftError(reason(err))
		return Result{}, err
	}
	return s.run(ctx, players, strategy)
}

// DraftPool runs a strategy against a caller-supplied pool.
func (s *Service) DraftPool(ctx context.Context, players []model.Player, strategy string) (Result, error) {
	if len(players) == 0 {
		metrics.RecordDraftError(reason(ErrEmptyPool))
		return Result{}, ErrEmptyPool
	}
	return s.run(ctx, players, strategy)
}

// Compare runs every compared strategy against the stored pool concurrently.
// Results follow the strategy order.
func (s *Service) Compare(ctx context.Context) ([]Result, error) {
	players, err := s.store.Players(ctx)
	if err != nil {
		metrics.RecordDraftError(reason(err))
		return nil, err
	}
	return s.ComparePool(ctx, players)
}

// ComparePool is Compare over a caller-supplied pool.
func (s *Service) ComparePool(ctx context.Context, players []model.Player) ([]Result, error) {
	if len(players) == 0 {
		metrics.RecordDraftError(reason(ErrEmptyPool))
		return nil, ErrEmptyPool
	}
	names := s.CompareStrategies()
	results := make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			r, err := s.run(gctx, players, name)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) run(ctx context.Context, players []model.Player, strategy string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	runID := s.newID()
	log := s.log().With(logger.String("run_id", runID))

	start := time.Now()
	squad, err := s.engine.Draft(ctx, players, strategy)
	took := time.Since(start)
	if err != nil {
		metrics.RecordDraftError(reason(err))
		log.Warn(ctx, "draft rejected",
			logger.String("strategy", strategy),
			logger.Error(err),
		)
		return Result{}, err
	}
	s.drafts.Add(1)

	status := strings.ToLower(string(squad.Status))
	remaining, _ := squad.RemainingBudget.Float64()
	metrics.RecordDraft(squad.Strategy, status, float64(took.Microseconds())/1000, squad.Size(), remaining)
	for _, pos := range model.Positions() {
		metrics.UpdateShortfall(squad.Strategy, pos.Short(), squad.Shortfall[pos])
	}

	fields := []logger.Field{
		logger.String("strategy", squad.Strategy),
		logger.String("status", status),
		logger.Int("size", squad.Size()),
		logger.String("remaining_budget", squad.RemainingBudget.String()),
		logger.Duration("took", took),
	}
	if squad.Complete() {
		log.Info(ctx, "draft finished", fields...)
	} else {
		log.Warn(ctx, "draft finished short of quota",
			append(fields, logger.Any("shortfall", types.PositionCounts(squad.Shortfall)))...)
	}
	return Result{RunID: runID, Squad: squad, Took: took}, nil
}

// reason maps an error to a metrics label.
func reason(err error) string {
	switch {
	case errors.Is(err, draft.ErrUnknownStrategy):
		return "unknown_strategy"
	case errors.Is(err, draft.ErrDuplicatePlayer):
		return "duplicate_player"
	case errors.Is(err, ErrEmptyPool):
		return "empty_pool"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

// Strategies returns the registered strategy names.
func (s *Service) Strategies() []string { return s.engine.Strategies() }

// DefaultStrategy returns the strategy used when none is named.
func (s *Service) DefaultStrategy() string { return s.engine.DefaultStrategy() }

// CompareStrategies returns the strategies Compare runs.
func (s *Service) CompareStrategies() []string {
	if len(s.compare) == 0 {
		return s.engine.Strategies()
	}
	return append([]string(nil), s.compare...)
}

// Rules returns the engine rules.
func (s *Service) Rules() draft.Rules { return s.engine.Rules() }

// Pool describes the stored pool.
func (s *Service) Pool(ctx context.Context) repository.Summary { return s.store.Summary(ctx) }

// TopPlayers ranks the stored pool by value score. PositionUnknown ranks all
// positions together.
func (s *Service) TopPlayers(ctx context.Context, pos model.Position, n int) ([]repository.Entry, error) {
	return s.store.TopN(ctx, pos, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) types.Stats {
	s.mu.RLock()
	started, startedAt := s.started, s.startedAt
	s.mu.RUnlock()

	stats := types.Stats{
		Status:          "stopped",
		DefaultStrategy: s.engine.DefaultStrategy(),
		Strategies:      s.engine.Strategies(),
		Drafts:          s.drafts.Load(),
		Pool:            PoolView(s.store.Summary(ctx)),
	}
	if started {
		stats.Status = "running"
		stats.Uptime = time.Since(startedAt).Round(time.Second).String()
	}
	return stats
}

// PoolView converts a store summary to its wire shape.
func PoolView(sum repository.Summary) types.PoolSummary {
	out := types.PoolSummary{
		Count:      sum.Count,
		Source:     sum.Source,
		Version:    sum.Version,
		ByPosition: types.PositionCounts(sum.ByPosition),
	}
	if !sum.LoadedAt.IsZero() {
		at := sum.LoadedAt
		out.LoadedAt = &at
	}
	return out
}
