// File: methods_valves.go
// Role: Valve lifecycle and queries.
// Determinism:
//   - Valves() and Useful() return IDs sorted lex asc.
// Concurrency:
//   - Mutators take muValve (and muTunnel when touching tunnel buckets) for writing.

package core

import (
	"fmt"
	"sort"
)

// AddValve inserts a valve with the given ID and flow rate.
//
// Errors:
//   - ErrEmptyValveID if id is empty.
//   - ErrNegativeRate if rate < 0.
//   - ErrDuplicateValve if the ID already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddValve(id string, rate int) error {
	if id == "" {
		return ErrEmptyValveID
	}
	if rate < 0 {
		return fmt.Errorf("%w: %s rate=%d", ErrNegativeRate, id, rate)
	}

	g.muValve.Lock()
	defer g.muValve.Unlock()

	if _, exists := g.valves[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateValve, id)
	}
	g.valves[id] = &Valve{ID: id, Rate: rate}

	// Every valve owns a (possibly empty) tunnel bucket.
	g.muTunnel.Lock()
	g.tunnels[id] = make(map[string]struct{})
	g.muTunnel.Unlock()

	return nil
}

// HasValve reports whether a valve with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasValve(id string) bool {
	if id == "" {
		return false
	}
	g.muValve.RLock()
	defer g.muValve.RUnlock()
	_, exists := g.valves[id]

	return exists
}

// Valve returns a copy of the valve stored under id.
func (g *Graph) Valve(id string) (Valve, error) {
	if id == "" {
		return Valve{}, ErrEmptyValveID
	}
	g.muValve.RLock()
	defer g.muValve.RUnlock()
	v, ok := g.valves[id]
	if !ok {
		return Valve{}, fmt.Errorf("%w: %s", ErrValveNotFound, id)
	}

	return *v, nil
}

// Rate returns the flow rate of valve id.
// Complexity: O(1).
func (g *Graph) Rate(id string) (int, error) {
	v, err := g.Valve(id)
	if err != nil {
		return 0, err
	}

	return v.Rate, nil
}

// Valves returns all valve IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Valves() []string {
	g.muValve.RLock()
	defer g.muValve.RUnlock()

	out := make([]string, 0, len(g.valves))
	for id := range g.valves {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Useful returns the IDs of valves with a positive flow rate, sorted lexicographically.
// These are the only valves worth opening.
// Complexity: O(V log V).
func (g *Graph) Useful() []string {
	g.muValve.RLock()
	defer g.muValve.RUnlock()

	out := make([]string, 0, len(g.valves))
	for id, v := range g.valves {
		if v.Useful() {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// ValveCount returns the number of valves.
func (g *Graph) ValveCount() int {
	g.muValve.RLock()
	defer g.muValve.RUnlock()

	return len(g.valves)
}
