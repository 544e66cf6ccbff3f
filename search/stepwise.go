package search

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/distance"
)

// stepKey is the minute-by-minute memo key; at indexes every valve.
type stepKey struct {
	at     int
	left   int
	opened Mask
}

// stepper searches directly on the graph, one minute at a time.
type stepper struct {
	ctl   *control
	nbrs  [][]int
	bit   []int // valve index → useful bit, -1 for zero-rate valves
	rates []int
	all   Mask
	memo  map[stepKey]int
}

// Stepwise returns the best single-agent release by spending each minute
// either opening the current valve or walking one tunnel. It explores far
// more states than Solve and is kept as an independent reference.
func Stepwise(g *core.Graph, start string, budget int, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTimeBudget, budget)
	}
	o := newOptions(opts...)
	if err := o.ctx.Err(); err != nil {
		return 0, err
	}

	valves := g.Valves()
	index := make(map[string]int, len(valves))
	for i, id := range valves {
		index[id] = i
	}
	from, ok := index[start]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	useful := g.Useful()
	if len(useful) > distance.MaxUseful {
		return 0, fmt.Errorf("%w: %d", distance.ErrTooManyValves, len(useful))
	}

	s := &stepper{
		ctl:   &control{ctx: o.ctx},
		nbrs:  make([][]int, len(valves)),
		bit:   make([]int, len(valves)),
		rates: make([]int, len(valves)),
		memo:  make(map[stepKey]int),
	}
	for i := range s.bit {
		s.bit[i] = -1
	}
	for b, id := range useful {
		s.bit[index[id]] = b
		s.all = s.all.With(b)
	}
	for i, id := range valves {
		s.rates[i], _ = g.Rate(id)
		targets, err := g.Tunnels(id)
		if err != nil {
			return 0, err
		}
		for _, to := range targets {
			s.nbrs[i] = append(s.nbrs[i], index[to])
		}
	}

	score := s.best(from, budget, 0)
	if s.ctl.stopped() {
		return 0, s.ctl.err
	}
	return score, nil
}

func (s *stepper) best(at, left int, opened Mask) int {
	if left == 0 || opened == s.all {
		return 0
	}
	k := stepKey{at: at, left: left, opened: opened}
	if v, ok := s.memo[k]; ok {
		return v
	}
	if s.ctl.tick() {
		return 0
	}

	left--
	best := 0
	if b := s.bit[at]; b >= 0 && !opened.Has(b) {
		best = left*s.rates[at] + s.best(at, left, opened.With(b))
	}
	for _, nb := range s.nbrs[at] {
		if v := s.best(nb, left, opened); v > best {
			best = v
		}
	}

	if !s.ctl.stopped() {
		s.memo[k] = best
	}
	return best
}
