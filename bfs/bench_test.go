package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/valvenet/bfs"
)

// BenchmarkBFS_Grid runs BFS on an M×M grid of corridors.
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 60
	var corridors [][2]string
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < M {
				corridors = append(corridors, [2]string{id, fmt.Sprintf("%d_%d", i+1, j)})
			}
			if j+1 < M {
				corridors = append(corridors, [2]string{id, fmt.Sprintf("%d_%d", i, j+1)})
			}
		}
	}
	g := network(b, corridors...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0_0")
	}
}
