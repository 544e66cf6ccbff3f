package search

import "github.com/katalvlaran/valvenet/distance"

// soloKey is the single-agent memo key.
type soloKey struct {
	pos    int
	left   int
	opened Mask
}

// solo is the state of one single-agent search invocation.
type solo struct {
	t    *distance.Table
	ctl  *control
	memo map[soloKey]int
}

func newSolo(t *distance.Table, ctl *control) *solo {
	return &solo{t: t, ctl: ctl, memo: make(map[soloKey]int)}
}

// best returns the maximum additional release from (pos, left, opened).
func (s *solo) best(pos, left int, opened Mask) int {
	k := soloKey{pos: pos, left: left, opened: opened}
	if v, ok := s.memo[k]; ok {
		return v
	}
	if s.ctl.tick() {
		return 0
	}

	best := 0
	for col, n := 0, s.t.UsefulCount(); col < n; col++ {
		rem, ok := s.move(pos, left, opened, col)
		if !ok {
			continue
		}
		if v := rem*s.t.Rate(col) + s.best(col, rem, opened.With(col)); v > best {
			best = v
		}
	}

	if !s.ctl.stopped() {
		s.memo[k] = best
	}
	return best
}

// move reports the minutes left after walking from pos to col and opening it.
func (s *solo) move(pos, left int, opened Mask, col int) (int, bool) {
	if opened.Has(col) {
		return 0, false
	}
	d := s.t.Hop(pos, col)
	if d == distance.Unreachable || d+1 >= left {
		return 0, false
	}
	return left - d - 1, true
}

// plan replays the memo from the root to recover one optimal sequence.
func (s *solo) plan(pos, budget int) []Step {
	var (
		out    []Step
		left   = budget
		opened Mask
	)
	target := s.best(pos, left, opened)
	for target > 0 {
		col, rem, rest, ok := s.next(pos, left, opened, target)
		if !ok {
			break
		}
		release := rem * s.t.Rate(col)
		out = append(out, Step{
			Valve:     s.t.ID(col),
			Minute:    budget - rem,
			Remaining: rem,
			Release:   release,
		})
		pos, left, opened, target = col, rem, opened.With(col), rest
	}
	return out
}

// next finds the first move from (pos, left, opened) whose release plus
// the best continuation equals target.
func (s *solo) next(pos, left int, opened Mask, target int) (col, rem, rest int, ok bool) {
	for col, n := 0, s.t.UsefulCount(); col < n; col++ {
		rem, legal := s.move(pos, left, opened, col)
		if !legal {
			continue
		}
		rest = s.best(col, rem, opened.With(col))
		if rem*s.t.Rate(col)+rest == target {
			return col, rem, rest, true
		}
	}
	return 0, 0, 0, false
}
