package search

import "context"

// pollEvery is the number of expansions between context checks.
const pollEvery = 4096

// control counts expansions and latches the first context error.
type control struct {
	ctx        context.Context
	expansions int
	err        error
}

// tick records one expansion and reports whether the search must unwind.
// A stopped search returns 0 up the stack and must not write the memo.
func (c *control) tick() bool {
	if c.err != nil {
		return true
	}
	c.expansions++
	if c.expansions%pollEvery == 0 {
		c.err = c.ctx.Err()
	}
	return c.err != nil
}

func (c *control) stopped() bool { return c.err != nil }
