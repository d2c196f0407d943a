package draft

import "github.com/okian/squadraft/internal/domain/model"

// Phase is the lifecycle of a draft run.
type Phase string

// Draft run phases.
const (
	PhaseInProgress Phase = "IN_PROGRESS"
	PhaseComplete   Phase = "COMPLETE"
)

// Allocation bundles the shared mechanics a Strategy drives: the remaining
// pool, the squad state, the rules and the checker. Strategies only decide
// order and eligibility; every commit goes through Add.
type Allocation struct {
	pool    *Pool
	state   *State
	rules   Rules
	checker Checker
	phase   Phase
}

func newAllocation(pool *Pool, rules Rules) *Allocation {
	return &Allocation{
		pool:    pool,
		state:   NewState(rules.Budget),
		rules:   rules,
		checker: Checker{TeamCap: rules.TeamCap},
		phase:   PhaseInProgress,
	}
}

// Rules returns the rules of this run.
func (a *Allocation) Rules() Rules { return a.rules }

// State exposes the squad built so far.
func (a *Allocation) State() *State { return a.state }

// Phase returns the run phase.
func (a *Allocation) Phase() Phase { return a.phase }

// QuotaOpen reports whether pos still has an unfilled slot.
func (a *Allocation) QuotaOpen(pos model.Position) bool {
	return a.state.PositionCount(pos) < a.rules.Quota(pos)
}

// IsAddable consults the checker against the global squad state.
func (a *Allocation) IsAddable(c Candidate) bool {
	return a.checker.IsAddable(c.Player, a.state)
}

// Candidates walks the available candidates of pos in rank order.
func (a *Allocation) Candidates(pos model.Position, fn func(Candidate) bool) {
	a.pool.Each(pos, fn)
}

// Add commits c: appends it, debits the budget, bumps the team and position
// counters and removes it from the pool. It refuses players no longer in
// the pool and any commit after the run completed.
func (a *Allocation) Add(c Candidate) bool {
	if a.phase != PhaseInProgress {
		return false
	}
	if !a.pool.Remove(c.Name) {
		return false
	}
	a.state.add(c)
	return true
}

// Fill greedily adds the highest ranked addable candidates of pos until its
// quota is met or candidates run out.
func (a *Allocation) Fill(pos model.Position) {
	a.Candidates(pos, func(c Candidate) bool {
		if !a.QuotaOpen(pos) {
			return false
		}
		if a.IsAddable(c) {
			a.Add(c)
		}
		return true
	})
}

// finish freezes the run and builds the immutable result.
func (a *Allocation) finish(strategy string) Squad {
	a.phase = PhaseComplete
	return newSquad(strategy, a.state, a.rules)
}
