package scenario

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rshade/fleetcarbon/internal/carbon"
)

// FactorSet is the per-gas emission factors of one fuel, effective from a date.
type FactorSet struct {
	Fuel string

	// EffectiveFrom is the first instant the set applies. The zero time means
	// the set has always applied.
	EffectiveFrom time.Time

	// Scope is Scope1 for combustion fuels and Scope2 for grid electricity.
	Scope carbon.Scope

	// Factors is kg of each gas per litre or per kWh.
	Factors carbon.PerGas
}

// FactorRegistry resolves the factor set in force for a fuel at a point in time.
//
// A registry is populated before use and is then safe for concurrent reads.
type FactorRegistry struct {
	sets map[string][]FactorSet
}

// NewFactorRegistry creates a registry holding sets.
func NewFactorRegistry(sets ...FactorSet) *FactorRegistry {
	r := &FactorRegistry{sets: make(map[string][]FactorSet)}
	for _, set := range sets {
		r.Add(set)
	}
	return r
}

// Add registers a factor set. Among sets of the same fuel with the same
// EffectiveFrom, the one added last wins.
func (r *FactorRegistry) Add(set FactorSet) {
	key := fuelKey(set.Fuel)
	sets := append(r.sets[key], set)
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].EffectiveFrom.Before(sets[j].EffectiveFrom)
	})
	r.sets[key] = sets
}

// Resolve returns the set of fuel with the latest EffectiveFrom not after at.
// Fuel names are matched case-insensitively.
func (r *FactorRegistry) Resolve(fuel string, at time.Time) (FactorSet, error) {
	sets := r.sets[fuelKey(fuel)]
	idx := sort.Search(len(sets), func(i int) bool {
		return sets[i].EffectiveFrom.After(at)
	})
	if idx == 0 {
		return FactorSet{}, fmt.Errorf("%w: fuel %q at %s", ErrFactorNotFound, fuel, at.Format(time.DateOnly))
	}
	return sets[idx-1], nil
}

// Fuels returns the registered fuel keys in sorted order.
func (r *FactorRegistry) Fuels() []string {
	fuels := make([]string, 0, len(r.sets))
	for fuel := range r.sets {
		fuels = append(fuels, fuel)
	}
	sort.Strings(fuels)
	return fuels
}

func fuelKey(fuel string) string {
	return strings.ToLower(strings.TrimSpace(fuel))
}
