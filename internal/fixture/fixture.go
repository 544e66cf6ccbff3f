// Package fixture holds valve networks shared by the test suites.
package fixture

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/core"
)

// Sample is the ten-valve reference network.
// Best single-agent release in 30 minutes is SampleSolo; a team of two
// with 26 minutes each reaches SampleTeam.
const Sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Expected answers for Sample.
const (
	SampleSolo = 1651
	SampleTeam = 1707
)

// SampleGraph builds Sample.
func SampleGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.FromReader(strings.NewReader(Sample), builder.WithStart("AA"))
	if err != nil {
		t.Fatalf("fixture: sample: %v", err)
	}
	return g
}

// Network builds a graph from valve rates and two-way corridors.
// Valves named only in corridors get rate 0.
func Network(t testing.TB, rates map[string]int, corridors ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	add := func(id string) {
		if g.HasValve(id) {
			return
		}
		if err := g.AddValve(id, rates[id]); err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}
	for id := range rates {
		add(id)
	}
	for _, c := range corridors {
		add(c[0])
		add(c[1])
		for _, pair := range [][2]string{c, {c[1], c[0]}} {
			if g.HasTunnel(pair[0], pair[1]) {
				continue
			}
			if err := g.AddTunnel(pair[0], pair[1]); err != nil {
				t.Fatalf("fixture: %v", err)
			}
		}
	}
	return g
}

// Random builds a connected random network of n valves named V00..; the
// first useful valves get rates in [1,25]. Valve V00 has rate 0 and is
// meant as the start. extra adds that many random corridors on top of a
// random spanning tree.
func Random(t testing.TB, seed int64, n, useful, extra int) *core.Graph {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	rates := make(map[string]int, n)
	name := func(i int) string { return fmt.Sprintf("V%02d", i) }
	for i := 0; i < n; i++ {
		rates[name(i)] = 0
		if i >= 1 && i <= useful {
			rates[name(i)] = 1 + rnd.Intn(25)
		}
	}
	var corridors [][2]string
	for i := 1; i < n; i++ {
		corridors = append(corridors, [2]string{name(rnd.Intn(i)), name(i)})
	}
	for k := 0; k < extra; k++ {
		a, b := rnd.Intn(n), rnd.Intn(n)
		if a != b {
			corridors = append(corridors, [2]string{name(a), name(b)})
		}
	}
	return Network(t, rates, corridors...)
}
