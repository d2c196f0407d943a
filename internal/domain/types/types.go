// Package types contains the wire views returned by the API and the CLI.
package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
)

// Member is one drafted (or ranked) player.
type Member struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Position  string          `json:"position"`
	Team      string          `json:"team"`
	Price     decimal.Decimal `json:"price"`
	ValueStat float64         `json:"value_stat"`
	Score     float64         `json:"score"`
}

// Squad is the result of one draft run.
type Squad struct {
	RunID           string          `json:"run_id"`
	Strategy        string          `json:"strategy"`
	Status          string          `json:"status"`
	Size            int             `json:"size"`
	Budget          decimal.Decimal `json:"budget"`
	Spent           decimal.Decimal `json:"spent"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	TotalScore      float64         `json:"total_score"`
	TeamCounts      map[string]int  `json:"team_counts"`
	PositionCounts  map[string]int  `json:"position_counts"`
	Shortfall       map[string]int  `json:"shortfall,omitempty"`
	Members         []Member        `json:"members"`
	TookMS          float64         `json:"took_ms"`
}

// Comparison holds one squad per strategy, in strategy order.
type Comparison struct {
	Squads []Squad `json:"squads"`
	// Best names the complete squad with the highest total score, if any.
	Best string `json:"best,omitempty"`
}

// PoolSummary describes the loaded pool.
type PoolSummary struct {
	Count      int            `json:"count"`
	Source     string         `json:"source,omitempty"`
	LoadedAt   *time.Time     `json:"loaded_at,omitempty"`
	Version    uint64         `json:"version"`
	ByPosition map[string]int `json:"by_position"`
}

// RankedPlayer is one row of a value ranking.
type RankedPlayer struct {
	Rank int `json:"rank"`
	Member
}

// Stats is the service status document.
type Stats struct {
	Status          string      `json:"status"`
	Uptime          string      `json:"uptime"`
	DefaultStrategy string      `json:"default_strategy"`
	Strategies      []string    `json:"strategies"`
	Drafts          uint64      `json:"drafts"`
	Pool            PoolSummary `json:"pool"`
}

// NewMember converts a scored candidate.
func NewMember(c draft.Candidate) Member {
	return Member{
		ID:        c.ID,
		Name:      c.Name,
		Position:  c.Position.Short(),
		Team:      c.Team,
		Price:     c.Cost(),
		ValueStat: c.ValueStat,
		Score:     c.Score,
	}
}

// NewSquad converts an engine squad.
func NewSquad(runID string, s draft.Squad, took time.Duration) Squad {
	out := Squad{
		RunID:           runID,
		Strategy:        s.Strategy,
		Status:          string(s.Status),
		Size:            s.Size(),
		Budget:          s.Budget,
		Spent:           s.Spent(),
		RemainingBudget: s.RemainingBudget,
		TeamCounts:      make(map[string]int, len(s.TeamCounts)),
		PositionCounts:  make(map[string]int, len(s.PositionCounts)),
		Members:         make([]Member, 0, len(s.Members)),
		TookMS:          float64(took.Microseconds()) / 1000,
	}
	for team, n := range s.TeamCounts {
		out.TeamCounts[team] = n
	}
	for pos, n := range s.PositionCounts {
		out.PositionCounts[pos.Short()] = n
	}
	if len(s.Shortfall) > 0 {
		out.Shortfall = make(map[string]int, len(s.Shortfall))
		for pos, n := range s.Shortfall {
			out.Shortfall[pos.Short()] = n
		}
	}
	for _, m := range s.Members {
		out.Members = append(out.Members, NewMember(m))
		out.TotalScore += m.Score
	}
	return out
}

// NewComparison picks the best complete squad; ties keep the earlier one.
func NewComparison(squads []Squad) Comparison {
	c := Comparison{Squads: squads}
	best := -1.0
	for _, s := range squads {
		if s.Status != string(draft.StatusComplete) {
			continue
		}
		if s.TotalScore > best {
			best = s.TotalScore
			c.Best = s.Strategy
		}
	}
	return c
}

// PositionCounts converts a position keyed map to short codes, listing every
// position.
func PositionCounts(in map[model.Position]int) map[string]int {
	out := make(map[string]int, len(model.Positions()))
	for _, pos := range model.Positions() {
		out[pos.Short()] = in[pos]
	}
	return out
}

// Recommendation is one recommended transfer target.
type Recommendation struct {
	Rank          int             `json:"rank"`
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Team          string          `json:"team"`
	Position      string          `json:"position"`
	Price         decimal.Decimal `json:"price"`
	Form          float64         `json:"form"`
	Points        int             `json:"points"`
	AvgDifficulty float64         `json:"avg_difficulty"`
	Score         float64         `json:"score"`
}

// GameweekRating rates one gameweek for chip use.
type GameweekRating struct {
	Gameweek                  int     `json:"gameweek"`
	DifficultyScore           float64 `json:"difficulty_score"`
	TeamsWithMultipleFixtures int     `json:"teams_with_multiple_fixtures"`
	AvgFixtureDifficulty      float64 `json:"avg_fixture_difficulty"`
}

// ChipPlan lists the best gameweeks per chip, best first.
type ChipPlan struct {
	CurrentGameweek int              `json:"current_gameweek"`
	BenchBoost      []GameweekRating `json:"bench_boost"`
	TripleCaptain   []GameweekRating `json:"triple_captain"`
}

// NewRecommendations converts ranked picks, numbering from 1.
func NewRecommendations(picks []recommend.Pick) []Recommendation {
	out := make([]Recommendation, 0, len(picks))
	for i, p := range picks {
		out = append(out, Recommendation{
			Rank:          i + 1,
			ID:            p.Player.ID,
			Name:          p.Player.Name,
			Team:          p.Team.Name,
			Position:      p.Player.Position.Short(),
			Price:         model.Money(p.Player.Price),
			Form:          p.Player.Form,
			Points:        p.Player.TotalPoints,
			AvgDifficulty: p.AvgDifficulty,
			Score:         p.Score,
		})
	}
	return out
}

// NewChipPlan converts chip recommendations.
func NewChipPlan(c recommend.Chips) ChipPlan {
	return ChipPlan{
		CurrentGameweek: c.Gameweek,
		BenchBoost:      gameweekRatings(c.BenchBoost),
		TripleCaptain:   gameweekRatings(c.TripleCaptain),
	}
}

func gameweekRatings(in []recommend.GameweekMetrics) []GameweekRating {
	out := make([]GameweekRating, 0, len(in))
	for _, m := range in {
		out = append(out, GameweekRating(m))
	}
	return out
}
