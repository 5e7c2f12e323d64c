// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// impl_random_labeled.go - RandomLabeled(n, p, vertexLabels, edgeLabels).
//
// Model:
//   - Every vertex 0..n-1 receives one label drawn uniformly from vertexLabels.
//   - Every ordered pair (i, j), i ≠ j, gets an edge with probability p; the
//     edge label is drawn uniformly from edgeLabels.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - vertexLabels non-empty, edgeLabels non-empty when p > 0 (else ErrConstructFailed).
//
// Determinism:
//   - Vertex draws in index order, then edge trials for i asc, j asc.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// RandomLabeled returns a Constructor that samples a labeled digraph.
func RandomLabeled(n int, p float64, vertexLabels, edgeLabels []string) Constructor {
	return func(g *lgraph.Graph, cfg builderConfig) error {
		// 1) Validate parameters before touching g.
		if err := validateMin(methodRandomLabeled, "n", n, MinVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomLabeled, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomLabeled, ErrNeedRandSource)
		}
		if len(vertexLabels) == 0 {
			return fmt.Errorf("%s: no vertex labels: %w", methodRandomLabeled, ErrConstructFailed)
		}
		if p > 0 && len(edgeLabels) == 0 {
			return fmt.Errorf("%s: no edge labels: %w", methodRandomLabeled, ErrConstructFailed)
		}

		rng := cfg.rng

		// 2) Vertices with one drawn label each.
		var id string
		for i := 0; i < n; i++ {
			id = cfg.idFn(i)
			if err := g.AddVertex(id, vertexLabels[rng.Intn(len(vertexLabels))]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomLabeled, id, err)
			}
		}

		// 3) Ordered-pair Bernoulli trials; Float64 < 1 so p=1 keeps every pair.
		var o, d string
		for i := 0; i < n; i++ {
			o = cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j || rng.Float64() >= p {
					continue
				}
				d = cfg.idFn(j)
				if err := g.AddEdge(o, d, edgeLabels[rng.Intn(len(edgeLabels))]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomLabeled, o, d, err)
				}
			}
		}

		return nil
	}
}
