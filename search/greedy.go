package search

import "github.com/katalvlaran/valvenet/distance"

// Greedy plays one agent that always takes the move with the largest
// immediate release (ties go to the lower table index). It never beats
// Single and is meant as a quick lower bound.
func (e *Engine) Greedy(start string, budget int) (Result, error) {
	if err := e.check(budget); err != nil {
		return Result{}, err
	}
	pos, err := e.origin(start)
	if err != nil {
		return Result{}, err
	}

	var (
		res    Result
		left   = budget
		opened Mask
		t      = e.table
	)
	for {
		pick, pickRem, pickGain := -1, 0, 0
		for col, n := 0, t.UsefulCount(); col < n; col++ {
			if opened.Has(col) {
				continue
			}
			d := t.Hop(pos, col)
			if d == distance.Unreachable || d+1 >= left {
				continue
			}
			rem := left - d - 1
			if gain := rem * t.Rate(col); gain > pickGain {
				pick, pickRem, pickGain = col, rem, gain
			}
		}
		if pick < 0 {
			break
		}
		res.Stats.Expansions++
		res.Score += pickGain
		res.Plan = append(res.Plan, Step{
			Valve:     t.ID(pick),
			Minute:    budget - pickRem,
			Remaining: pickRem,
			Release:   pickGain,
		})
		pos, left, opened = pick, pickRem, opened.With(pick)
	}
	return res, nil
}
