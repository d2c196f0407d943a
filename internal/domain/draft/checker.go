package draft

import "github.com/okian/squadraft/internal/domain/model"

// Checker holds the budget and team-cap rules. Position quotas are checked
// by the allocator before the checker is consulted.
type Checker struct {
	TeamCap int
}

// IsAddable reports whether p fits the remaining budget and its club still
// has room under the team cap.
// A negative price is never addable.
func (c Checker) IsAddable(p model.Player, s *State) bool {
	if p.Price < 0 || s.Remaining() < p.Price {
		return false
	}
	if s.TeamCount(p.Team) >= c.TeamCap {
		return false
	}
	return true
}
