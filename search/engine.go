package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/distance"
)

// Engine runs searches over one immutable distance table.
// Each call owns a fresh memo, so an Engine may be reused and shared.
type Engine struct {
	table *distance.Table
	opts  options
}

// New returns an Engine for t. Starts are passed per call.
func New(t *distance.Table, opts ...Option) *Engine {
	return &Engine{table: t, opts: newOptions(opts...)}
}

// Table returns the engine's distance table.
func (e *Engine) Table() *distance.Table { return e.table }

// origin resolves a start valve to its table row.
func (e *Engine) origin(id string) (int, error) {
	i, ok := e.table.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStartNotFound, id)
	}
	return i, nil
}

func (e *Engine) check(budget int) error {
	if e.table == nil {
		return ErrTableNil
	}
	if budget < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeBudget, budget)
	}
	return e.opts.ctx.Err()
}

// Single returns the best release for one agent starting on start with budget minutes.
func (e *Engine) Single(start string, budget int) (Result, error) {
	if err := e.check(budget); err != nil {
		return Result{}, err
	}
	pos, err := e.origin(start)
	if err != nil {
		return Result{}, err
	}

	s := newSolo(e.table, &control{ctx: e.opts.ctx})
	score := s.best(pos, budget, 0)
	if s.ctl.stopped() {
		return Result{}, s.ctl.err
	}

	return Result{
		Score: score,
		Plan:  s.plan(pos, budget),
		Stats: Stats{States: len(s.memo), Expansions: s.ctl.expansions},
	}, nil
}

// Multi returns the best combined release of agents opening valves in parallel.
// Agents may differ in start valve and budget.
func (e *Engine) Multi(agents []Agent) (Result, error) {
	if len(agents) < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidAgentCount, len(agents))
	}
	states := make([]agentState, len(agents))
	for i, a := range agents {
		if err := e.check(a.Budget); err != nil {
			return Result{}, err
		}
		pos, err := e.origin(a.Start)
		if err != nil {
			return Result{}, err
		}
		states[i] = agentState{pos: pos, left: a.Budget}
	}

	tm := newTeam(e.table, &control{ctx: e.opts.ctx}, e.opts.canonical)
	score := tm.best(append([]agentState(nil), states...), 0)
	if tm.ctl.stopped() {
		return Result{}, tm.ctl.err
	}

	return Result{
		Score: score,
		Plan:  tm.plan(states, agents),
		Stats: Stats{States: len(tm.memo), Expansions: tm.ctl.expansions},
	}, nil
}

// sortPlan orders steps by minute, then agent.
func sortPlan(plan []Step) {
	sort.SliceStable(plan, func(i, j int) bool {
		if plan[i].Minute != plan[j].Minute {
			return plan[i].Minute < plan[j].Minute
		}
		return plan[i].Agent < plan[j].Agent
	})
}
