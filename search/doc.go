// Package search finds the maximum pressure a valve network can release
// within a time budget.
//
// Model
//
//	An agent stands on a valve with some minutes left. A move picks an unopened
//	useful valve at hop distance d, walks there (d minutes), opens it (1 minute)
//	and from then on the valve releases Rate per remaining minute. The move is
//	worth (left - d - 1) × Rate, credited immediately. A move is legal only if
//	it leaves at least one minute of release (d + 1 < left). With no legal move
//	the branch is worth 0.
//
// Single agent
//
//	State (position, minutes left, opened mask). Memoized depth-first search
//	over distance.Table rows; the memo belongs to one call and is dropped
//	afterwards.
//
// Teams
//
//	State (agent tuple, opened mask) where each agent is (position, own minutes
//	left). One agent moves per step. Agents are interchangeable, so the tuple is
//	sorted by (position, minutes left) before it is used as a memo key; identical
//	agents are expanded once. WithoutSymmetryReduction keeps the tuple in agent
//	order instead (same answers, larger memo).
//
// Other solvers
//
//	Greedy     repeatedly takes the move with the largest immediate release; a
//	           fast lower bound for the exact search.
//	Stepwise   minute-by-minute search directly on the graph (open the current
//	           valve or walk one tunnel); a slow reference for testing.
//
// Entry points
//
//	Solve(g, budget, opts...)              single agent from the start valve
//	SolveTeam(g, agents, budget, opts...)  identical agents from the start valve
//	SolveAgents(g, []Agent, opts...)       agents with own start and budget
//	New(table, opts...)                    Engine reusing one distance.Table
//
// Options
//
// New takes Options: WithContext and WithoutSymmetryReduction. The Solve
// helpers build their own table and take SolveOptions, which add WithStart
// and WithDistanceMethod. Every Option is also a SolveOption.
//
// Errors
//
//	ErrGraphNil, ErrTableNil, ErrInvalidTimeBudget, ErrInvalidAgentCount,
//	ErrStartNotFound, plus ctx.Err() when WithContext is cancelled.
package search
