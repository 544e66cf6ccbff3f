// SPDX-License-Identifier: MIT
// Package: valvenet/distance

package distance

import (
	"math"

	"github.com/katalvlaran/valvenet/core"
)

// fillFloydWarshall computes all-pairs hop counts over every valve of g and
// projects them onto the table rows and columns.
//
// Loop order is fixed (k → i → j). Time O(V³), space O(V²).
func (t *Table) fillFloydWarshall(g *core.Graph) error {
	all := g.Valves()
	n := len(all)
	pos := make(map[string]int, n)
	for i, id := range all {
		pos[id] = i
	}

	const inf = math.MaxInt32
	data := make([]int, n*n)
	for i := range data {
		data[i] = inf
	}
	for i, id := range all {
		data[i*n+i] = 0
		targets, err := g.Tunnels(id)
		if err != nil {
			return err
		}
		for _, to := range targets {
			if j := pos[to]; j != i {
				data[i*n+j] = 1
			}
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	for row, id := range t.ids {
		src := pos[id]
		for col := 0; col < t.useful; col++ {
			if d := data[src*n+pos[t.ids[col]]]; d != inf {
				t.hops[row][col] = d
			}
		}
	}
	return nil
}
