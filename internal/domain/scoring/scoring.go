// Package scoring computes the value score used to rank draft candidates.
package scoring

import (
	"math"

	"github.com/okian/squadraft/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultEpsilon = 1e-9
	pricePerUnit   = 10.0 // prices are tenths of a million
)

// Option applies a configuration option to the ValueScorer.
type Option func(*ValueScorer)

// WithEpsilon sets the lower bound for the cost divisor.
func WithEpsilon(eps float64) Option {
	return func(s *ValueScorer) {
		if eps > 0 && !math.IsInf(eps, 0) {
			s.epsilon = eps
		}
	}
}

// Input abstracts the player fields needed for scoring.
type Input struct {
	ValueStat float64
	Price     int
}

// Scorer computes a ranking score. Implementations must be pure.
type Scorer interface {
	Score(in Input) float64
}

// ValueScorer rewards return per unit cost: value_stat² / max(price/10, ε).
// Squaring biases the ranking toward elite performers.
type ValueScorer struct {
	epsilon float64
}

// NewValueScorer creates a scorer with configuration options.
func NewValueScorer(opts ...Option) *ValueScorer {
	s := &ValueScorer{epsilon: defaultEpsilon}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns 0 for a zero or invalid stat, so a free player with no
// output never outranks anyone.
func (s *ValueScorer) Score(in Input) float64 {
	v := in.ValueStat
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	price := 0
	if in.Price > 0 {
		price = in.Price
	}
	cost := math.Max(float64(price)/pricePerUnit, s.epsilon)
	return v * v / cost
}

// InputFor builds the scoring input for a player.
func InputFor(p model.Player) Input {
	return Input{ValueStat: p.ValueStat, Price: p.Price}
}

// ScoreAll scores players in order.
func ScoreAll(s Scorer, players []model.Player) []float64 {
	out := make([]float64, len(players))
	for i, p := range players {
		out[i] = s.Score(InputFor(p))
	}
	return out
}
