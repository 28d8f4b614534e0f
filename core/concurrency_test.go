// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReadersAndWriter mixes AddEdge/RemoveEdge with concurrent
// readers to verify no races or panics occur (run with -race).
func TestConcurrentReadersAndWriter(t *testing.T) {
	const n = 64
	g := newAgents(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n, 0.5))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = g.AddEdge(i, (i+2)%n, 0.25)
			_ = g.RemoveEdge(i, (i+2)%n)
		}
	}()

	const readers = 8
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_ = g.Successors(i)
				_ = g.Neighbours(i)
				_ = g.InStrength(i)
				_ = g.Stats()
			}
		}()
	}
	wg.Wait()

	// The ring survives untouched.
	assert.Equal(t, n, g.EdgeCount())
}
