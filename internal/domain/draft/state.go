package draft

import "github.com/okian/squadraft/internal/domain/model"

// State is the squad under construction.
type State struct {
	members        []Candidate
	remaining      int // tenths
	teamCounts     map[string]int
	positionCounts map[model.Position]int
}

// NewState returns an empty squad with budget tenths to spend.
func NewState(budget int) *State {
	return &State{
		remaining:      budget,
		teamCounts:     make(map[string]int),
		positionCounts: make(map[model.Position]int, len(model.Positions())),
	}
}

// Remaining returns the unspent budget in tenths.
func (s *State) Remaining() int { return s.remaining }

// TeamCount returns how many members play for team.
func (s *State) TeamCount(team string) int { return s.teamCounts[team] }

// PositionCount returns how many members play at pos.
func (s *State) PositionCount(pos model.Position) int { return s.positionCounts[pos] }

// Len returns the number of members.
func (s *State) Len() int { return len(s.members) }

func (s *State) add(c Candidate) {
	s.members = append(s.members, c)
	s.remaining -= c.Price
	s.teamCounts[c.Team]++
	s.positionCounts[c.Position]++
}
