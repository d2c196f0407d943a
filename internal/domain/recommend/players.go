package recommend

import (
	"cmp"
	"slices"

	"github.com/okian/squadraft/internal/domain/model"
)

// Defaults for a Recommender.
const (
	DefaultLimit      = 5
	DefaultChipCount  = 3
	DefaultMinMinutes = 500
	DefaultHorizon    = 5
)

const (
	formWeight    = 3.0
	easeWeight    = 1.5
	maxDifficulty = 5.0
	pointsPer     = 20.0
)

// Recommender ranks players and chip gameweeks. It holds no season state
// and is safe for concurrent use.
type Recommender struct {
	minMinutes int
	horizon    int
}

// Option applies a configuration option to the Recommender.
type Option func(*Recommender)

// WithMinMinutes drops players with fewer minutes played.
func WithMinMinutes(n int) Option {
	return func(r *Recommender) {
		if n >= 0 {
			r.minMinutes = n
		}
	}
}

// WithHorizon sets how many upcoming fixtures feed a team's difficulty.
func WithHorizon(n int) Option {
	return func(r *Recommender) {
		if n > 0 {
			r.horizon = n
		}
	}
}

// New creates a Recommender with configuration options.
func New(opts ...Option) *Recommender {
	r := &Recommender{
		minMinutes: DefaultMinMinutes,
		horizon:    DefaultHorizon,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pick is one recommended player.
type Pick struct {
	Player        Player
	Team          Team
	AvgDifficulty float64
	Score         float64
}

// Players ranks transfer targets by form*3 + (5-difficulty)*1.5 +
// points/20, where difficulty is the average over the team's upcoming
// fixtures. PositionUnknown ranks every position. Players below the minutes
// floor or on an unknown club are skipped. Ties keep input order.
func (r *Recommender) Players(s Season, pos model.Position, limit int) ([]Pick, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	teams := s.teams()
	from := s.Gameweek()
	difficulty := make(map[int]float64, len(teams))

	picks := make([]Pick, 0, len(s.Players))
	for _, p := range s.Players {
		if pos != model.PositionUnknown && p.Position != pos {
			continue
		}
		if p.Minutes < r.minMinutes {
			continue
		}
		team, ok := teams[p.Team]
		if !ok {
			continue
		}
		avg, seen := difficulty[p.Team]
		if !seen {
			avg = UpcomingDifficulty(s.Fixtures, p.Team, from, r.horizon)
			difficulty[p.Team] = avg
		}
		score := p.Form*formWeight + (maxDifficulty-avg)*easeWeight + float64(p.TotalPoints)/pointsPer
		picks = append(picks, Pick{
			Player:        p,
			Team:          team,
			AvgDifficulty: round2(avg),
			Score:         round2(score),
		})
	}

	slices.SortStableFunc(picks, func(a, b Pick) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return picks[:min(limit, len(picks))], nil
}
