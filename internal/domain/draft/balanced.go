package draft

import "github.com/okian/squadraft/internal/domain/model"

// Balanced splits the budget into fixed per-position sub-budgets and fills
// each position greedily by score within its own sub-budget. Unspent
// sub-budget is not carried over to later positions.
type Balanced struct{}

// Name implements Strategy.
func (Balanced) Name() string { return StrategyBalanced }

// Allocate implements Strategy.
func (Balanced) Allocate(a *Allocation) {
	for _, pos := range model.Positions() {
		sub := a.Rules().SubBudget(pos)
		a.Candidates(pos, func(c Candidate) bool {
			if !a.QuotaOpen(pos) {
				return false
			}
			if a.IsAddable(c) && c.Price <= sub && a.Add(c) {
				sub -= c.Price
			}
			return true
		})
	}
}
