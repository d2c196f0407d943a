// Package draft builds rule-legal fantasy squads from a player pool using
// pluggable greedy allocation strategies.
//
// A run scores and ranks a private copy of the pool, lets the selected
// strategy commit players through the shared Allocation mechanics and
// returns an immutable Squad. Runs share no mutable state, so one Engine
// may serve concurrent callers.
package draft

import (
	"context"
	"fmt"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/scoring"
)

// Engine runs drafts. It is safe for concurrent use once constructed.
type Engine struct {
	rules           Rules
	scorer          scoring.Scorer
	registry        *Registry
	defaultStrategy string
}

// NewEngine creates an engine with configuration options and validates the
// resulting rules and default strategy.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		rules:           DefaultRules(),
		scorer:          scoring.NewValueScorer(),
		registry:        DefaultRegistry(),
		defaultStrategy: StrategyBalanced,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := e.registry.Lookup(e.defaultStrategy); err != nil {
		return nil, fmt.Errorf("default strategy: %w", err)
	}
	return e, nil
}

// Rules returns a copy of the engine rules.
func (e *Engine) Rules() Rules { return e.rules.clone() }

// Strategies returns the registered strategy names.
func (e *Engine) Strategies() []string { return e.registry.Names() }

// Scorer returns the scorer used to rank candidates.
func (e *Engine) Scorer() scoring.Scorer { return e.scorer }

// DefaultStrategy returns the strategy used for an empty name.
func (e *Engine) DefaultStrategy() string { return e.defaultStrategy }

// Draft builds a squad from players with the named strategy ("" selects the
// default). players is copied at entry and never modified. A squad short of
// its quotas is returned with StatusPartial and a nil error.
func (e *Engine) Draft(_ context.Context, players []model.Player, strategy string) (Squad, error) {
	if strategy == "" {
		strategy = e.defaultStrategy
	}
	s, err := e.registry.Lookup(strategy)
	if err != nil {
		return Squad{}, err
	}
	pool, err := NewPool(players, e.scorer)
	if err != nil {
		return Squad{}, err
	}
	a := newAllocation(pool, e.rules)
	s.Allocate(a)
	return a.finish(NormalizeName(s.Name())), nil
}
