// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// impl_anchor.go - Anchor(hub, first, n, labels...) constructor.
//
// Contract:
//   - hub ≥ 0, first ≥ 0 and n ≥ 1 (else ErrTooFewVertices).
//   - Emits leaf -> hub for every index in first..first+n-1, ascending.
//   - The hub index itself is skipped when it falls inside the range, so no
//     self-loop is produced.

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// Anchor returns a Constructor that points the indices first..first+n-1 at
// the hub vertex with edges carrying labels.
// Complexity: O(n · len(labels)).
func Anchor(hub, first, n int, labels ...string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodAnchor, "hub", hub, MinIndex); err != nil {
			return err
		}
		if err := validateMin(methodAnchor, "first", first, MinIndex); err != nil {
			return err
		}
		if err := validateMin(methodAnchor, "n", n, MinVertices); err != nil {
			return err
		}

		hubID := cfg.idFn(hub)
		var leafID string
		for i := first; i < first+n; i++ {
			if i == hub {
				continue
			}
			leafID = cfg.idFn(i)
			if err := g.AddEdge(leafID, hubID, labels...); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodAnchor, leafID, hubID, err)
			}
		}

		return nil
	}
}
