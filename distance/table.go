package distance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// Table is the immutable origin × useful-valve hop-count table.
type Table struct {
	ids    []string       // index → valve ID
	index  map[string]int // valve ID → index
	rates  []int          // rates[i] for i < useful
	useful int
	hops   [][]int // hops[row][col], col < useful
}

// Build computes the table for g. Every useful valve is a row; origins add
// rows of their own when they are not useful.
func Build(g *core.Graph, origins []string, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{method: MethodBFS}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := newLayout(g, origins)
	if err != nil {
		return nil, err
	}

	switch o.method {
	case MethodBFS:
		err = t.fillBFS(g, o)
	case MethodFloydWarshall:
		err = t.fillFloydWarshall(g)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownMethod, o.method)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// newLayout assigns indices: useful valves first (sorted), then remaining origins (sorted).
func newLayout(g *core.Graph, origins []string) (*Table, error) {
	useful := g.Useful()
	if len(useful) > MaxUseful {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(useful), MaxUseful)
	}

	t := &Table{
		index:  make(map[string]int, len(useful)+len(origins)),
		useful: len(useful),
	}
	for _, id := range useful {
		t.add(id)
		rate, _ := g.Rate(id)
		t.rates = append(t.rates, rate)
	}

	extra := make([]string, 0, len(origins))
	for _, id := range origins {
		if !g.HasValve(id) {
			return nil, fmt.Errorf("%w: %q", ErrOriginNotFound, id)
		}
		if _, seen := t.index[id]; !seen {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		if _, seen := t.index[id]; !seen {
			t.add(id)
		}
	}

	t.hops = make([][]int, len(t.ids))
	for i := range t.hops {
		row := make([]int, t.useful)
		for j := range row {
			row[j] = Unreachable
		}
		t.hops[i] = row
	}

	return t, nil
}

func (t *Table) add(id string) {
	t.index[id] = len(t.ids)
	t.ids = append(t.ids, id)
}

// fillBFS runs one traversal per row.
func (t *Table) fillBFS(g *core.Graph, o options) error {
	var bopts []bfs.Option
	if o.ctx != nil {
		bopts = append(bopts, bfs.WithContext(o.ctx))
	}
	for row, id := range t.ids {
		res, err := bfs.BFS(g, id, bopts...)
		if err != nil {
			return fmt.Errorf("distance: row %q: %w", id, err)
		}
		for col := 0; col < t.useful; col++ {
			if d, ok := res.Depth[t.ids[col]]; ok {
				t.hops[row][col] = d
			}
		}
	}
	return nil
}

// Len returns the number of rows (useful valves plus extra origins).
func (t *Table) Len() int { return len(t.ids) }

// UsefulCount returns the number of useful valves (table columns).
func (t *Table) UsefulCount() int { return t.useful }

// ID returns the valve ID stored at index i.
func (t *Table) ID(i int) string { return t.ids[i] }

// Index returns the index assigned to valve id.
func (t *Table) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Rate returns the flow rate of index i; rows past the useful block report 0.
func (t *Table) Rate(i int) int {
	if i < t.useful {
		return t.rates[i]
	}
	return 0
}

// Hop returns the hop count from row to the useful valve col, or Unreachable.
func (t *Table) Hop(row, col int) int { return t.hops[row][col] }

// Useful returns the useful valve IDs in index order.
func (t *Table) Useful() []string {
	out := make([]string, t.useful)
	copy(out, t.ids[:t.useful])
	return out
}

// Origins returns every row ID in index order.
func (t *Table) Origins() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Dist returns the hop count from valve from to useful valve to.
// ok is false when either valve is not in the table or to is unreachable.
func (t *Table) Dist(from, to string) (int, bool) {
	row, ok := t.index[from]
	if !ok {
		return 0, false
	}
	col, ok := t.index[to]
	if !ok || col >= t.useful {
		return 0, false
	}
	d := t.hops[row][col]
	if d == Unreachable {
		return 0, false
	}
	return d, true
}

// From returns the reachable useful valves of row from with their hop counts.
// A nil map means from is not a row of the table.
func (t *Table) From(from string) map[string]int {
	row, ok := t.index[from]
	if !ok {
		return nil
	}
	out := make(map[string]int, t.useful)
	for col, d := range t.hops[row] {
		if d != Unreachable {
			out[t.ids[col]] = d
		}
	}
	return out
}
