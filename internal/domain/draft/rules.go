package draft

import (
	"fmt"

	"github.com/okian/squadraft/internal/domain/model"
)

// Default FPL squad rules. Money is in tenths of a million.
const (
	DefaultBudget          = 1000
	DefaultTeamCap         = 3
	DefaultPremiumMinPrice = 90
)

// Rules holds the constraints of one draft. Quotas and sub-budgets are keyed
// by position; positions missing from Quotas get a quota of zero.
type Rules struct {
	Budget          int
	TeamCap         int
	Quotas          map[model.Position]int
	SubBudgets      map[model.Position]int // Balanced strategy only
	PremiumMinPrice int                    // StarsAndScrubs strategy only
}

// DefaultRules returns the standard 2/5/5/3 squad with a 100.0 budget.
// The Balanced sub-budgets (8.5/25.0/35.0/31.5) have no documented
// derivation and are kept as-is.
func DefaultRules() Rules {
	return Rules{
		Budget:  DefaultBudget,
		TeamCap: DefaultTeamCap,
		Quotas: map[model.Position]int{
			model.Goalkeeper: 2,
			model.Defender:   5,
			model.Midfielder: 5,
			model.Forward:    3,
		},
		SubBudgets: map[model.Position]int{
			model.Goalkeeper: 85,
			model.Defender:   250,
			model.Midfielder: 350,
			model.Forward:    315,
		},
		PremiumMinPrice: DefaultPremiumMinPrice,
	}
}

// Quota returns the quota for pos.
func (r Rules) Quota(pos model.Position) int {
	return r.Quotas[pos]
}

// SubBudget returns the Balanced sub-budget for pos.
func (r Rules) SubBudget(pos model.Position) int {
	return r.SubBudgets[pos]
}

// SquadSize is the sum of all quotas.
func (r Rules) SquadSize() int {
	n := 0
	for _, pos := range model.Positions() {
		n += r.Quota(pos)
	}
	return n
}

// Validate checks that every value is usable.
func (r Rules) Validate() error {
	if r.Budget < 0 {
		return fmt.Errorf("%w: budget %d is negative", ErrInvalidRules, r.Budget)
	}
	if r.TeamCap < 1 {
		return fmt.Errorf("%w: team cap %d must be positive", ErrInvalidRules, r.TeamCap)
	}
	for pos, q := range r.Quotas {
		if !pos.Valid() {
			return fmt.Errorf("%w: quota for unknown position %d", ErrInvalidRules, int(pos))
		}
		if q < 0 {
			return fmt.Errorf("%w: quota for %s is negative", ErrInvalidRules, pos)
		}
	}
	for pos, b := range r.SubBudgets {
		if !pos.Valid() {
			return fmt.Errorf("%w: sub-budget for unknown position %d", ErrInvalidRules, int(pos))
		}
		if b < 0 {
			return fmt.Errorf("%w: sub-budget for %s is negative", ErrInvalidRules, pos)
		}
	}
	if r.SquadSize() == 0 {
		return fmt.Errorf("%w: all quotas are zero", ErrInvalidRules)
	}
	return nil
}

// clone deep-copies the maps so a caller cannot mutate rules mid-run.
func (r Rules) clone() Rules {
	out := r
	out.Quotas = make(map[model.Position]int, len(r.Quotas))
	for k, v := range r.Quotas {
		out.Quotas[k] = v
	}
	out.SubBudgets = make(map[model.Position]int, len(r.SubBudgets))
	for k, v := range r.SubBudgets {
		out.SubBudgets[k] = v
	}
	return out
}
