package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valvenet/builder"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/search"
)

const network = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
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

func ExampleSolve() {
	g, err := builder.FromReader(strings.NewReader(network))
	if err != nil {
		fmt.Println(err)
		return
	}
	solo, _ := search.Solve(g, 30)
	pair, _ := search.SolveTeam(g, 2, 26)
	fmt.Println(solo, pair)
	// Output: 1651 1707
}

func ExampleEngine_Greedy() {
	g, _ := builder.FromReader(strings.NewReader(network))
	tb, _ := distance.Build(g, []string{"AA"})
	e := search.New(tb)

	exact, _ := e.Single("AA", 30)
	quick, _ := e.Greedy("AA", 30)
	fmt.Println(exact.Score, quick.Score <= exact.Score)
	// Output: 1651 true
}
