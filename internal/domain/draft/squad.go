package draft

import (
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Status tells callers whether every quota was met.
type Status string

// Squad statuses. A partial squad is a normal result, not an error.
const (
	StatusComplete Status = "COMPLETE"
	StatusPartial  Status = "PARTIAL"
)

// Squad is the result of one draft run. It owns copies of all its data.
type Squad struct {
	Strategy        string
	Members         []Candidate
	Budget          decimal.Decimal
	RemainingBudget decimal.Decimal
	TeamCounts      map[string]int
	PositionCounts  map[model.Position]int
	Shortfall       map[model.Position]int // unfilled slots, only positions short of quota
	Status          Status
}

func newSquad(strategy string, s *State, r Rules) Squad {
	sq := Squad{
		Strategy:        strategy,
		Members:         make([]Candidate, len(s.members)),
		Budget:          model.Money(r.Budget),
		RemainingBudget: model.Money(s.remaining),
		TeamCounts:      make(map[string]int, len(s.teamCounts)),
		PositionCounts:  make(map[model.Position]int, len(model.Positions())),
		Shortfall:       make(map[model.Position]int),
		Status:          StatusComplete,
	}
	copy(sq.Members, s.members)
	for team, n := range s.teamCounts {
		sq.TeamCounts[team] = n
	}
	for _, pos := range model.Positions() {
		n := s.PositionCount(pos)
		sq.PositionCounts[pos] = n
		if short := r.Quota(pos) - n; short > 0 {
			sq.Shortfall[pos] = short
			sq.Status = StatusPartial
		}
	}
	return sq
}

// Size returns the number of members.
func (s Squad) Size() int { return len(s.Members) }

// Complete reports whether every quota was filled.
func (s Squad) Complete() bool { return s.Status == StatusComplete }

// Spent returns the money used on members.
func (s Squad) Spent() decimal.Decimal { return s.Budget.Sub(s.RemainingBudget) }

// ByPosition returns the members at pos in selection order.
func (s Squad) ByPosition(pos model.Position) []Candidate {
	var out []Candidate
	for _, m := range s.Members {
		if m.Position == pos {
			out = append(out, m)
		}
	}
	return out
}
