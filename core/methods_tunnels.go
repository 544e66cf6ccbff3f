// File: methods_tunnels.go
// Role: Tunnel lifecycle and neighborhood queries.
// Determinism:
//   - Tunnels(id) returns destination IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muValve then muTunnel read locks.

package core

import (
	"fmt"
	"sort"
)

// AddTunnel links valve from to valve to (one direction only).
//
// Both endpoints must already exist: a tunnel is never allowed to create a
// valve implicitly, so malformed inputs are caught here.
//
// Errors:
//   - ErrEmptyValveID if either endpoint is empty.
//   - ErrValveNotFound if either endpoint is missing.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrDuplicateTunnel if from→to already exists.
//
// Complexity: O(1).
func (g *Graph) AddTunnel(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyValveID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.muValve.RLock()
	defer g.muValve.RUnlock()
	if _, ok := g.valves[from]; !ok {
		return fmt.Errorf("%w: %s", ErrValveNotFound, from)
	}
	if _, ok := g.valves[to]; !ok {
		return fmt.Errorf("%w: %s", ErrValveNotFound, to)
	}

	g.muTunnel.Lock()
	defer g.muTunnel.Unlock()
	bucket := g.tunnels[from]
	if _, dup := bucket[to]; dup {
		return fmt.Errorf("%w: %s->%s", ErrDuplicateTunnel, from, to)
	}
	bucket[to] = struct{}{}

	return nil
}

// HasTunnel reports whether a from→to tunnel exists.
// Complexity: O(1).
func (g *Graph) HasTunnel(from, to string) bool {
	g.muTunnel.RLock()
	defer g.muTunnel.RUnlock()
	_, ok := g.tunnels[from][to]

	return ok
}

// Tunnels returns the destinations reachable in one step from id, sorted lexicographically.
//
// Errors:
//   - ErrEmptyValveID if id is empty.
//   - ErrValveNotFound if id does not exist.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Tunnels(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyValveID
	}
	g.muValve.RLock()
	defer g.muValve.RUnlock()
	if _, ok := g.valves[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrValveNotFound, id)
	}

	g.muTunnel.RLock()
	defer g.muTunnel.RUnlock()
	out := make([]string, 0, len(g.tunnels[id]))
	for to := range g.tunnels[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// TunnelCount returns the number of directed tunnels.
func (g *Graph) TunnelCount() int {
	g.muTunnel.RLock()
	defer g.muTunnel.RUnlock()
	n := 0
	for _, bucket := range g.tunnels {
		n += len(bucket)
	}

	return n
}
