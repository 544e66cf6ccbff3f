package search

import (
	"encoding/binary"
	"sort"

	"github.com/katalvlaran/valvenet/distance"
)

// agentState is one agent's position (table row) and minutes left.
type agentState struct {
	pos  int
	left int
}

func (a agentState) less(b agentState) bool {
	if a.pos != b.pos {
		return a.pos < b.pos
	}
	return a.left < b.left
}

// team is the state of one multi-agent search invocation.
type team struct {
	t         *distance.Table
	ctl       *control
	canonical bool
	memo      map[string]int
	buf       []byte
}

func newTeam(t *distance.Table, ctl *control, canonical bool) *team {
	return &team{t: t, ctl: ctl, canonical: canonical, memo: make(map[string]int)}
}

// normalize sorts agents in place when symmetry reduction is on.
func (m *team) normalize(agents []agentState) {
	if m.canonical {
		sort.Slice(agents, func(i, j int) bool { return agents[i].less(agents[j]) })
	}
}

// key encodes the agent tuple and the opened mask.
func (m *team) key(agents []agentState, opened Mask) string {
	b := m.buf[:0]
	for _, a := range agents {
		b = binary.AppendUvarint(b, uint64(a.pos))
		b = binary.AppendUvarint(b, uint64(a.left))
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(opened))
	m.buf = b
	return string(b)
}

// best returns the maximum additional release from (agents, opened).
// agents must be owned by the caller frame; it is normalized in place.
func (m *team) best(agents []agentState, opened Mask) int {
	m.normalize(agents)
	k := m.key(agents, opened)
	if v, ok := m.memo[k]; ok {
		return v
	}
	if m.ctl.tick() {
		return 0
	}

	best := 0
	for a := range agents {
		if m.duplicate(agents, a) {
			continue
		}
		cur := agents[a]
		for col, n := 0, m.t.UsefulCount(); col < n; col++ {
			rem, ok := m.move(cur, opened, col)
			if !ok {
				continue
			}
			next := replaced(agents, a, agentState{pos: col, left: rem})
			if v := rem*m.t.Rate(col) + m.best(next, opened.With(col)); v > best {
				best = v
			}
		}
	}

	if !m.ctl.stopped() {
		m.memo[k] = best
	}
	return best
}

// duplicate reports whether agent a has the same sub-state as the agent
// before it in a normalized tuple; its moves were already explored.
func (m *team) duplicate(agents []agentState, a int) bool {
	return m.canonical && a > 0 && agents[a] == agents[a-1]
}

func (m *team) move(cur agentState, opened Mask, col int) (int, bool) {
	if opened.Has(col) {
		return 0, false
	}
	d := m.t.Hop(cur.pos, col)
	if d == distance.Unreachable || d+1 >= cur.left {
		return 0, false
	}
	return cur.left - d - 1, true
}

// replaced returns a copy of agents with agents[a] set to s.
func replaced(agents []agentState, a int, s agentState) []agentState {
	next := make([]agentState, len(agents))
	copy(next, agents)
	next[a] = s
	return next
}

// member tracks which request agent a tuple slot belongs to during replay.
type member struct {
	state agentState
	agent int
}

// plan replays the memo to recover one optimal sequence of openings.
// Slots are normalized the same way best does so that movers are tried in
// the same order; ties keep request order.
func (m *team) plan(start []agentState, agents []Agent) []Step {
	slots := make([]member, len(start))
	for i, s := range start {
		slots[i] = member{state: s, agent: i}
	}

	var (
		out    []Step
		opened Mask
	)
	target := m.best(states(slots), opened)
	for target > 0 {
		if m.canonical {
			sort.SliceStable(slots, func(i, j int) bool { return slots[i].state.less(slots[j].state) })
		}
		step, rest, ok := m.next(slots, opened, target)
		if !ok {
			break
		}
		step.Minute = agents[step.Agent].Budget - step.Remaining
		out = append(out, step)
		col, _ := m.t.Index(step.Valve)
		for i := range slots {
			if slots[i].agent == step.Agent {
				slots[i].state = agentState{pos: col, left: step.Remaining}
			}
		}
		opened, target = opened.With(col), rest
	}

	sortPlan(out)
	return out
}

// next finds the first (mover, valve) pair whose release plus the best
// continuation equals target.
func (m *team) next(slots []member, opened Mask, target int) (Step, int, bool) {
	cur := states(slots)
	for a, slot := range slots {
		if m.duplicate(cur, a) {
			continue
		}
		for col, n := 0, m.t.UsefulCount(); col < n; col++ {
			rem, ok := m.move(slot.state, opened, col)
			if !ok {
				continue
			}
			release := rem * m.t.Rate(col)
			rest := m.best(replaced(cur, a, agentState{pos: col, left: rem}), opened.With(col))
			if release+rest == target {
				return Step{Agent: slot.agent, Valve: m.t.ID(col), Remaining: rem, Release: release}, rest, true
			}
		}
	}
	return Step{}, 0, false
}

func states(slots []member) []agentState {
	out := make([]agentState, len(slots))
	for i, s := range slots {
		out[i] = s.state
	}
	return out
}
