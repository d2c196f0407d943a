package draft

import "github.com/okian/squadraft/internal/domain/model"

// premiumPositions are tried in this order before the generic fill.
var premiumPositions = []model.Position{model.Midfielder, model.Forward}

// StarsAndScrubs buys one premium midfielder and one premium forward first,
// then fills every position greedily from whatever budget is left.
type StarsAndScrubs struct{}

// Name implements Strategy.
func (StarsAndScrubs) Name() string { return StrategyStarsAndScrubs }

// Allocate implements Strategy.
func (s StarsAndScrubs) Allocate(a *Allocation) {
	for _, pos := range premiumPositions {
		s.pickPremium(a, pos)
	}
	for _, pos := range model.Positions() {
		a.Fill(pos)
	}
}

// pickPremium tries only the most expensive available player of pos priced
// at or above the premium threshold. If that player is blocked nothing is
// added: a cheaper premium is never substituted.
func (StarsAndScrubs) pickPremium(a *Allocation, pos model.Position) {
	threshold := a.Rules().PremiumMinPrice
	var (
		best  Candidate
		found bool
	)
	a.Candidates(pos, func(c Candidate) bool {
		if c.Price >= threshold && (!found || c.Price > best.Price) {
			best, found = c, true
		}
		return true
	})
	if !found || !a.QuotaOpen(pos) || !a.IsAddable(best) {
		return
	}
	a.Add(best)
}
