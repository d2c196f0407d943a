package draft

import (
	"fmt"
	"strings"
)

// Built-in strategy names.
const (
	StrategyBalanced       = "balanced"
	StrategyStarsAndScrubs = "stars_and_scrubs"
)

// Strategy is a named allocation policy. Allocate drives the shared
// mechanics on a; it must be deterministic for a given pool and rules.
type Strategy interface {
	Name() string
	Allocate(a *Allocation)
}

// NormalizeName lower-cases a strategy name and maps '-' and ' ' to '_'.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}

// Registry is an ordered set of strategies keyed by normalized name.
type Registry struct {
	byName map[string]Strategy
	order  []string
}

// NewRegistry registers strategies in order.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	r := &Registry{byName: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry holds Balanced and StarsAndScrubs.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(Balanced{}, StarsAndScrubs{})
	return r
}

// Register adds s. Names must be unique after normalization.
func (r *Registry) Register(s Strategy) error {
	key := NormalizeName(s.Name())
	if key == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownStrategy)
	}
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateStrategy, key)
	}
	r.byName[key] = s
	r.order = append(r.order, key)
	return nil
}

// Lookup finds a strategy by name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.byName[NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
