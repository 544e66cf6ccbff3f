package search

import (
	"context"
	"errors"
	"math/bits"

	"github.com/katalvlaran/valvenet/distance"
)

// Sentinel errors for the search engine.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrTableNil is returned if an Engine was built without a table.
	ErrTableNil = errors.New("search: distance table is nil")

	// ErrInvalidTimeBudget is returned for a negative budget.
	ErrInvalidTimeBudget = errors.New("search: invalid time budget")

	// ErrInvalidAgentCount is returned when fewer than one agent is requested.
	ErrInvalidAgentCount = errors.New("search: invalid agent count")

	// ErrStartNotFound is returned when an agent starts on a valve that is
	// not an origin of the distance table.
	ErrStartNotFound = errors.New("search: start valve not found")
)

// DefaultStart is the entry valve used when WithStart is not given.
const DefaultStart = "AA"

// Mask is a set of opened valves; bit i is useful valve i of the table.
type Mask uint64

// Has reports whether valve i is in the set.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// With returns the set plus valve i.
func (m Mask) With(i int) Mask { return m | 1<<uint(i) }

// Count returns the number of valves in the set.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Agent is one valve opener: where it starts and how many minutes it has.
type Agent struct {
	Start  string
	Budget int
}

// Step is one valve opening of a plan.
type Step struct {
	// Agent is the index of the agent in the request.
	Agent int
	// Valve is the opened valve.
	Valve string
	// Minute is the agent's elapsed time when the valve starts releasing.
	Minute int
	// Remaining is the number of minutes the valve releases.
	Remaining int
	// Release is Remaining × Rate.
	Release int
}

// Stats reports search effort.
type Stats struct {
	// States is the number of memo entries at the end of the search.
	States int
	// Expansions counts visited search states, memo hits excluded.
	Expansions int
}

// Result is the outcome of a search.
type Result struct {
	Score int
	Plan  []Step
	Stats Stats
}

// Option configures an Engine. Every Option is also a SolveOption.
type Option func(*options)

type options struct {
	ctx       context.Context
	canonical bool
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background(), canonical: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SolveOption configures Solve, SolveTeam and SolveAgents, which build
// their own distance table before searching.
type SolveOption interface {
	applySolve(*solveOptions)
}

type solveOptions struct {
	start  string
	method distance.Method
	engine []Option
}

func (o Option) applySolve(s *solveOptions) { s.engine = append(s.engine, o) }

type solveOption func(*solveOptions)

func (f solveOption) applySolve(s *solveOptions) { f(s) }

func newSolveOptions(opts ...SolveOption) solveOptions {
	s := solveOptions{start: DefaultStart, method: distance.MethodBFS}
	for _, opt := range opts {
		opt.applySolve(&s)
	}
	return s
}

// WithContext sets a context polled during the search.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithStart sets the entry valve for Solve and SolveTeam.
func WithStart(id string) SolveOption {
	return solveOption(func(s *solveOptions) {
		if id != "" {
			s.start = id
		}
	})
}

// WithoutSymmetryReduction keeps team tuples in agent order in memo keys.
func WithoutSymmetryReduction() Option {
	return func(o *options) { o.canonical = false }
}

// WithDistanceMethod selects how the Solve helpers build their distance table.
func WithDistanceMethod(m distance.Method) SolveOption {
	return solveOption(func(s *solveOptions) { s.method = m })
}
