// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore valves in non-decreasing distance (tunnel count) from a start valve.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from valve → distance (tunnels) from start
//   - Parent: map from valve → its predecessor in the BFS tree
//   - Depth is fixed the first time a valve is discovered (at enqueue time),
//     so a valve queued twice can never be recorded at a larger distance.
//   - Optional hooks, neighbor filtering and depth limiting.
//
// Determinism
//
//	core.Graph.Tunnels returns destinations sorted by ID and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Valves|, T = |Tunnels|)
//
//   - Time:   O(V + T)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "AA")
//	d, ok := res.Depth["JJ"]
//
//	res, err = bfs.BFS(g, "AA",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "ZZ" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start valve does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if tunnel lookup fails for a valve.
//   - Wrapped errors returned by OnVisit, and ctx.Err() on cancellation.
package bfs
