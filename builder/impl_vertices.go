// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// impl_vertices.go - Vertices(first, n, labels...) and Edge(from, to, labels...).
//
// Contract:
//   - first ≥ 0 and n ≥ 1 (else ErrTooFewVertices); Edge needs from, to ≥ 0.
//   - IDs come from cfg.idFn in ascending index order.
//   - Every label becomes a LabeledVertex (or LabeledEdge) fact.

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// Vertices returns a Constructor that adds the vertices with indices
// first..first+n-1, each carrying all of labels.
// Complexity: O(n · len(labels)).
func Vertices(first, n int, labels ...string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodVertices, "first", first, MinIndex); err != nil {
			return err
		}
		if err := validateMin(methodVertices, "n", n, MinVertices); err != nil {
			return err
		}
		for i := first; i < first+n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id, labels...); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodVertices, id, err)
			}
		}

		return nil
	}
}

// Edge returns a Constructor that adds one edge from → to per label.
// Both endpoints are registered as vertices.
func Edge(from, to int, labels ...string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodEdge, "from", from, MinIndex); err != nil {
			return err
		}
		if err := validateMin(methodEdge, "to", to, MinIndex); err != nil {
			return err
		}
		o, d := cfg.idFn(from), cfg.idFn(to)
		if err := g.AddEdge(o, d, labels...); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodEdge, o, d, err)
		}

		return nil
	}
}
