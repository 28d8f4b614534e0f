// SPDX-License-Identifier: MIT
// Package: rewire/builder
//
// impl_ring.go - Cycle(n), Path(n), Star(n) and Complete(n): small
// reciprocal fixtures with known bridge structure.
//
//   • Cycle:    ties i⇄(i+1)%n; no tie is a bridge.
//   • Path:     ties i⇄(i+1);   every tie is a bridge.
//   • Star:     ties 0⇄i;       every tie is a bridge.
//   • Complete: ties i⇄j, i<j.
//
// Agents are 0..n-1; ties are emitted in ascending (i, j) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rewire/core"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Cycle returns a Constructor for the reciprocal ring C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return ties(methodCycle, n, minCycleNodes, func(emit func(u, v int) error) error {
		for i := 0; i < n; i++ {
			if err := emit(i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	})
}

// Path returns a Constructor for the reciprocal path P_n (n ≥ 2).
func Path(n int) Constructor {
	return ties(methodPath, n, minPathNodes, func(emit func(u, v int) error) error {
		for i := 1; i < n; i++ {
			if err := emit(i-1, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// Star returns a Constructor for the reciprocal star centred on agent 0 (n ≥ 2).
func Star(n int) Constructor {
	return ties(methodStar, n, minStarNodes, func(emit func(u, v int) error) error {
		for i := 1; i < n; i++ {
			if err := emit(0, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// Complete returns a Constructor for the reciprocal complete graph K_n (n ≥ 1).
func Complete(n int) Constructor {
	return ties(methodComplete, n, minCompleteNodes, func(emit func(u, v int) error) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ties is the shared skeleton: validate n, add agents, emit ties.
func ties(method string, n, minN int, body func(emit func(u, v int) error) error) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
		}
		addAgents(g, n)

		return body(func(u, v int) error {
			return tie(g, cfg, method, u, v)
		})
	}
}
