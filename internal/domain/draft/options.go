package draft

import "github.com/okian/squadraft/internal/domain/scoring"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRules replaces the default squad rules.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		e.rules = r.clone()
	}
}

// WithScorer sets the value scorer used to rank candidates.
func WithScorer(s scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithRegistry replaces the strategy registry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithDefaultStrategy sets the strategy used when a caller passes "".
func WithDefaultStrategy(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.defaultStrategy = NormalizeName(name)
		}
	}
}
