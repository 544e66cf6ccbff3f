package search

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/distance"
)

// Solve returns the best release of a single agent starting on the start
// valve (DefaultStart unless WithStart) with budget minutes.
func Solve(g *core.Graph, budget int, opts ...SolveOption) (int, error) {
	o := newSolveOptions(opts...)
	res, err := SolveAgents(g, []Agent{{Start: o.start, Budget: budget}}, opts...)
	return res.Score, err
}

// SolveTeam returns the best combined release of agents identical agents,
// all starting on the start valve with budget minutes each.
func SolveTeam(g *core.Graph, agents, budget int, opts ...SolveOption) (int, error) {
	if agents < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAgentCount, agents)
	}
	o := newSolveOptions(opts...)
	team := make([]Agent, agents)
	for i := range team {
		team[i] = Agent{Start: o.start, Budget: budget}
	}
	res, err := SolveAgents(g, team, opts...)
	return res.Score, err
}

// SolveAgents builds a distance table for g and runs the exact search.
// One agent uses the single-agent memo; more use the team search.
// An agent with an empty Start begins on the start valve (DefaultStart
// unless WithStart).
func SolveAgents(g *core.Graph, agents []Agent, opts ...SolveOption) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if len(agents) < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidAgentCount, len(agents))
	}
	o := newSolveOptions(opts...)

	agents = append([]Agent(nil), agents...)
	origins := make([]string, 0, len(agents))
	for i, a := range agents {
		if a.Start == "" {
			agents[i].Start = o.start
		}
		if a.Budget < 0 {
			return Result{}, fmt.Errorf("%w: %d", ErrInvalidTimeBudget, a.Budget)
		}
		if !g.HasValve(agents[i].Start) {
			return Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, agents[i].Start)
		}
		origins = append(origins, agents[i].Start)
	}

	t, err := distance.Build(g, origins,
		distance.WithMethod(o.method), distance.WithContext(newOptions(o.engine...).ctx))
	if err != nil {
		return Result{}, err
	}

	e := New(t, o.engine...)

	if len(agents) == 1 {
		return e.Single(agents[0].Start, agents[0].Budget)
	}
	return e.Multi(agents)
}
