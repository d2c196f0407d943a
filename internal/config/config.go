// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Validation errors wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/internal/domain/scoring"
	"github.com/shopspring/decimal"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// PoolFile is a bootstrap-static JSON file loaded at start. When empty
	// the pool is fetched from FPLBaseURL.
	PoolFile string `koanf:"pool_file"`

	// FixturesFile is a fixtures JSON file used for recommendations when
	// PoolFile is set. Without it recommendations are unavailable in file
	// mode.
	FixturesFile string `koanf:"fixtures_file"`

	// FPLBaseURL is the remote API root used by the HTTP pool source.
	FPLBaseURL string `koanf:"fpl_base_url"`

	// FPLRequestsPerSecond rate-limits calls to the remote API.
	FPLRequestsPerSecond float64 `koanf:"fpl_requests_per_second"`

	// FPLTimeoutMS bounds a single remote request.
	FPLTimeoutMS int `koanf:"fpl_timeout_ms"`

	// EligibleStatuses lists the FPL availability codes kept in the pool.
	EligibleStatuses []string `koanf:"eligible_statuses"`

	// TotalBudget is the starting budget in currency units.
	TotalBudget float64 `koanf:"total_budget"`

	// TeamCap limits players from one club.
	TeamCap int `koanf:"team_cap"`

	// Quotas maps position codes (GKP, DEF, MID, FWD) to squad slots.
	Quotas map[string]int `koanf:"quotas"`

	// SubBudgets maps position codes to Balanced sub-budgets in currency units.
	SubBudgets map[string]float64 `koanf:"sub_budgets"`

	// PremiumMinPrice is the stars-and-scrubs premium threshold in tenths.
	PremiumMinPrice int `koanf:"premium_min_price"`

	// ScoreEpsilon bounds the cost divisor of the value score.
	ScoreEpsilon float64 `koanf:"score_epsilon"`

	// DefaultStrategy is used when a request names none.
	DefaultStrategy string `koanf:"default_strategy"`

	// CompareStrategies are run side by side by /draft/compare.
	CompareStrategies []string `koanf:"compare_strategies"`

	// RecommendMinMinutes drops recommendation candidates with fewer minutes.
	RecommendMinMinutes int `koanf:"recommend_min_minutes"`

	// RecommendHorizon is the number of upcoming fixtures per team that feed
	// its difficulty.
	RecommendHorizon int `koanf:"recommend_horizon"`

	// SeasonTTLSeconds is how long fetched season data is reused.
	SeasonTTLSeconds int `koanf:"season_ttl_seconds"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		FPLBaseURL:           "https://fantasy.premierleague.com/api",
		FPLRequestsPerSecond: 2,
		FPLTimeoutMS:         20_000,
		EligibleStatuses:     []string{"a"},
		TotalBudget:          100.0,
		TeamCap:              draft.DefaultTeamCap,
		Quotas: map[string]int{
			"GKP": 2,
			"DEF": 5,
			"MID": 5,
			"FWD": 3,
		},
		SubBudgets: map[string]float64{
			"GKP": 8.5,
			"DEF": 25.0,
			"MID": 35.0,
			"FWD": 31.5,
		},
		PremiumMinPrice:   draft.DefaultPremiumMinPrice,
		ScoreEpsilon:      1e-9,
		DefaultStrategy:   draft.StrategyBalanced,
		CompareStrategies: []string{draft.StrategyBalanced, draft.StrategyStarsAndScrubs},

		RecommendMinMinutes: recommend.DefaultMinMinutes,
		RecommendHorizon:    recommend.DefaultHorizon,
		SeasonTTLSeconds:    600,
	}
}

// Validate checks values that the loaders cannot type-check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	if c.TotalBudget < 0 {
		return fmt.Errorf("%w: total_budget must not be negative", ErrInvalidConfig)
	}
	if c.FPLRequestsPerSecond <= 0 {
		return fmt.Errorf("%w: fpl_requests_per_second must be positive", ErrInvalidConfig)
	}
	if c.ScoreEpsilon <= 0 {
		return fmt.Errorf("%w: score_epsilon must be positive", ErrInvalidConfig)
	}
	if c.RecommendMinMinutes < 0 {
		return fmt.Errorf("%w: recommend_min_minutes must not be negative", ErrInvalidConfig)
	}
	if c.RecommendHorizon <= 0 {
		return fmt.Errorf("%w: recommend_horizon must be positive", ErrInvalidConfig)
	}
	if c.SeasonTTLSeconds < 0 {
		return fmt.Errorf("%w: season_ttl_seconds must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules converts the draft section into engine rules.
func (c *Config) Rules() (draft.Rules, error) {
	r := draft.Rules{
		Budget:          model.Tenths(decimal.NewFromFloat(c.TotalBudget)),
		TeamCap:         c.TeamCap,
		Quotas:          make(map[model.Position]int, len(c.Quotas)),
		SubBudgets:      make(map[model.Position]int, len(c.SubBudgets)),
		PremiumMinPrice: c.PremiumMinPrice,
	}
	for key, q := range c.Quotas {
		pos, err := model.ParsePosition(key)
		if err != nil {
			return draft.Rules{}, fmt.Errorf("%w: quotas: %w", ErrInvalidConfig, err)
		}
		r.Quotas[pos] = q
	}
	for key, b := range c.SubBudgets {
		pos, err := model.ParsePosition(key)
		if err != nil {
			return draft.Rules{}, fmt.Errorf("%w: sub_budgets: %w", ErrInvalidConfig, err)
		}
		r.SubBudgets[pos] = model.Tenths(decimal.NewFromFloat(b))
	}
	if err := r.Validate(); err != nil {
		return draft.Rules{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return r, nil
}

// Engine builds a draft engine from the rules, scorer and default strategy.
func (c *Config) Engine() (*draft.Engine, error) {
	rules, err := c.Rules()
	if err != nil {
		return nil, err
	}
	engine, err := draft.NewEngine(
		draft.WithRules(rules),
		draft.WithScorer(scoring.NewValueScorer(scoring.WithEpsilon(c.ScoreEpsilon))),
		draft.WithDefaultStrategy(c.DefaultStrategy),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, name := range c.CompareStrategies {
		if !slices.Contains(engine.Strategies(), draft.NormalizeName(name)) {
			return nil, fmt.Errorf("%w: compare_strategies: %w: %q", ErrInvalidConfig, draft.ErrUnknownStrategy, name)
		}
	}
	return engine, nil
}

// Recommender builds the recommender from the recommendation settings.
func (c *Config) Recommender() *recommend.Recommender {
	return recommend.New(
		recommend.WithMinMinutes(c.RecommendMinMinutes),
		recommend.WithHorizon(c.RecommendHorizon),
	)
}

// SeasonTTL returns the season cache lifetime.
func (c *Config) SeasonTTL() time.Duration {
	return time.Duration(c.SeasonTTLSeconds) * time.Second
}
