// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// impl_chain.go - Chain(first, n, labels...) constructor.
//
// Contract:
//   - first ≥ 0 and n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i -> i+1 for i=first..first+n-2 in increasing order.
//   - Endpoints are registered without labels; combine with Vertices to label them.
//
// Complexity:
//   - Time: O(n · len(labels)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// Chain returns a Constructor that links n consecutive indices starting at
// first with directed edges carrying labels.
func Chain(first, n int, labels ...string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodChain, "first", first, MinIndex); err != nil {
			return err
		}
		if err := validateMin(methodChain, "n", n, MinChainNodes); err != nil {
			return err
		}

		var o, d string
		for i := first + 1; i < first+n; i++ {
			o = cfg.idFn(i - 1)
			d = cfg.idFn(i)
			if err := g.AddEdge(o, d, labels...); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, o, d, err)
			}
		}

		return nil
	}
}
