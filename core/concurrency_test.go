package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/valvenet/core"
)

// TestGraph_ConcurrentReaders runs many readers against a built graph.
// Run with -race to check the locking model.
func TestGraph_ConcurrentReaders(t *testing.T) {
	const n = 50
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddValve(fmt.Sprintf("V%02d", i), i)
	}
	for i := 0; i+1 < n; i++ {
		_ = g.AddTunnel(fmt.Sprintf("V%02d", i), fmt.Sprintf("V%02d", i+1))
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := g.Tunnels(fmt.Sprintf("V%02d", i)); err != nil {
				errs <- err
			}
			_ = g.Useful()
			_ = g.Stats()
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Tunnels: %v", err)
	}
}
