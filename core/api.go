package core

// Looped reports whether self-tunnels are permitted by policy.
func (g *Graph) Looped() bool {
	g.muValve.RLock()
	defer g.muValve.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of catalog sizes.
//
// The valve phase and the tunnel phase are read under separate locks; the
// snapshot is consistent per phase if the graph is mutated concurrently.
//
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.muValve.RLock()
	stats := GraphStats{
		ValveCount:  len(g.valves),
		AllowsLoops: g.allowLoops,
	}
	for _, v := range g.valves {
		if v.Useful() {
			stats.UsefulCount++
			stats.TotalRate += v.Rate
		}
	}
	g.muValve.RUnlock()

	stats.TunnelCount = g.TunnelCount()

	return &stats
}

// Clone returns a deep copy of the Graph: configuration, valves and tunnels.
// Complexity: O(V + T).
func (g *Graph) Clone() *Graph {
	var opts []GraphOption
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	g.muValve.RLock()
	defer g.muValve.RUnlock()
	g.muTunnel.RLock()
	defer g.muTunnel.RUnlock()

	for id, v := range g.valves {
		clone.valves[id] = &Valve{ID: v.ID, Rate: v.Rate}
		bucket := make(map[string]struct{}, len(g.tunnels[id]))
		for to := range g.tunnels[id] {
			bucket[to] = struct{}{}
		}
		clone.tunnels[id] = bucket
	}

	return clone
}
