// Package valvenet finds the best order to open pressure valves in a
// network of tunnels, for one agent or for a team working in parallel.
//
// A valve network is read one record per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Opening a valve costs one minute and walking a tunnel costs one minute.
// An opened valve releases its flow rate every remaining minute. The goal
// is the largest total release before time runs out.
//
// Everything is organized in small packages, one per pipeline stage:
//
//	parse/     record lines → parse.Record
//	core/      thread-safe valve graph (valves, directed tunnels)
//	builder/   records → core.Graph, with reference checks
//	bfs/       breadth-first traversal with depths and parents
//	distance/  hop-count table between useful valves (BFS or Floyd–Warshall)
//	search/    memoized exact search (single agent, team), greedy and stepwise references
//	render/    Graphviz DOT/SVG diagrams with plan highlighting
//	config/    YAML run configuration
//
// Quick example:
//
//	    AA(0)───BB(10)
//
// With 3 minutes one agent walks to BB (1), opens it (1) and it releases
// 10 in the last minute: the answer is 10.
//
//	go install github.com/katalvlaran/valvenet/cmd/valvenet@latest
package valvenet
