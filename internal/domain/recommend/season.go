// Package recommend ranks transfer targets and chip gameweeks from season
// data: player form, fixture difficulty and double gameweeks.
package recommend

import (
	"github.com/shopspring/decimal"

	"github.com/okian/squadraft/internal/domain/model"
)

// Team is a club in the season data.
type Team struct {
	ID        int
	Name      string
	ShortName string
}

// Fixture is one match. Event 0 means the match has no gameweek yet.
// HomeDifficulty is the difficulty the home side faces, AwayDifficulty the
// one the away side faces, both on the FPL 1-5 scale.
type Fixture struct {
	ID             int
	Event          int
	Home           int
	Away           int
	HomeDifficulty int
	AwayDifficulty int
	Finished       bool
}

// Player carries the season fields used to rank transfer targets.
type Player struct {
	ID          int
	Name        string
	Team        int
	Position    model.Position
	Price       int // tenths of a million
	Form        float64
	TotalPoints int
	Minutes     int
}

// Season is one snapshot of the game: clubs, players and the fixture list.
type Season struct {
	// Current is the current gameweek; 0 before the season starts.
	Current  int
	Teams    []Team
	Players  []Player
	Fixtures []Fixture
}

// Gameweek returns the current gameweek, reading an unknown one as 1.
func (s Season) Gameweek() int {
	if s.Current > 0 {
		return s.Current
	}
	return 1
}

// teams indexes clubs by id.
func (s Season) teams() map[int]Team {
	out := make(map[int]Team, len(s.Teams))
	for _, t := range s.Teams {
		out[t.ID] = t
	}
	return out
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
