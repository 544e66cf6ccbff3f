// Package distance precomputes the hop-count table the search engine reads.
//
// Only two kinds of valves matter to the search:
//
//   - useful valves (Rate > 0), the only worthwhile targets;
//   - origins, the valves agents start from.
//
// Build assigns a deterministic index to each of them: useful valves sorted by
// ID take indices 0..k-1 (index i doubles as bit i of an opened-valve mask),
// then origins that are not useful are appended in sorted order. The table is
// dense: Hop(i, j) answers in O(1) for every row i and every useful column j.
//
// Every row is computed eagerly. The search performs millions of lookups and
// must never fall back to a traversal.
//
// Methods:
//
//	MethodBFS            one bfs.BFS per row, O(R·(V+T)) (default)
//	MethodFloydWarshall  dense all-pairs closure over every valve, O(V³)
//
// Unreachable pairs are stored as Unreachable (-1) and are absent from From().
// A row's own column (a useful origin) is 0.
package distance
