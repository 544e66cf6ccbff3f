// Package core provides the thread-safe in-memory valve network used by every
// other valvenet package.
//
// A Graph G = (V,T) holds:
//
//   - Valves: unique string IDs, each with a non-negative flow Rate.
//   - Tunnels: directed From→To links between existing valves. Puzzle inputs list
//     every tunnel in both directions, but the graph stores exactly what it is told.
//
// Why a dedicated type?
//
//   - Strict integrity: AddTunnel never creates valves implicitly, so a dangling
//     reference surfaces as ErrValveNotFound instead of a silent zero-rate valve.
//   - Deterministic iteration: Valves(), Useful() and Tunnels() return sorted IDs.
//   - Separate sync.RWMutex for valves (muValve) and tunnels (muTunnel) so a built
//     graph can be shared read-only across goroutines.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-tunnels (from == to); otherwise AddTunnel(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddValve(id string, rate int) error   // O(1)
//	AddTunnel(from, to string) error      // O(1)
//	HasValve(id string) bool              // O(1)
//	Rate(id string) (int, error)          // O(1)
//	Valves() []string                     // O(V log V)
//	Useful() []string                     // O(V log V)
//	Tunnels(id string) ([]string, error)  // O(d log d)
//	Stats() *GraphStats                   // O(V)
//
// Errors:
//
//	ErrEmptyValveID, ErrNegativeRate, ErrDuplicateValve, ErrValveNotFound,
//	ErrLoopNotAllowed, ErrDuplicateTunnel.
package core
