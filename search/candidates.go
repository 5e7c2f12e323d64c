// SPDX-License-Identifier: MIT
//
// File: candidates.go
// Role: the candidate generator: potential edge matches and the best next couples.
//
// Determinism:
//   - Pairs are enumerated in the sorted cross product V1 × V2; ties keep that order.

package search

import (
	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
	"github.com/katalvlaran/analogy/maxima"
)

// evaluation caches the two keys that rank an unused pair.
type evaluation struct {
	couple    mapping.Couple
	score     int // Score(m ∪ {couple})
	potential int // len(PotentialNewMatchingEdges(couple, m))
}

// PotentialNewMatchingEdges returns the edges that could become matched in a
// later step if c were added to m.
//
// Implementation:
//   - Stage 1: Collect g1 edges leaving c.A whose label also leaves c.B in g2,
//     and g1 edges entering c.A whose label also enters c.B in g2.
//   - Stage 2: Symmetrically collect g2 edges at c.B with a same-label,
//     same-side counterpart at c.A in g1.
//   - Stage 3: Remove every edge already matched, in either direction, under
//     m ∪ {c}.
//
// The result is sorted. g1 and g2 must be non-nil.
// Complexity: O(deg(c.A) + deg(c.B) + scoring of m ∪ {c}).
func PotentialNewMatchingEdges(c mapping.Couple, m *mapping.Mapping, g1, g2 *lgraph.Graph) []lgraph.LabeledEdge {
	return potentialEdges(c, m.With(c), g1, g2)
}

// potentialEdges is PotentialNewMatchingEdges with m ∪ {c} already built.
func potentialEdges(c mapping.Couple, extended *mapping.Mapping, g1, g2 *lgraph.Graph) []lgraph.LabeledEdge {
	set := make(map[lgraph.LabeledEdge]struct{})
	collect(set, g1.OutEdges(c.A), g2.OutEdges(c.B))
	collect(set, g1.InEdges(c.A), g2.InEdges(c.B))
	collect(set, g2.OutEdges(c.B), g1.OutEdges(c.A))
	collect(set, g2.InEdges(c.B), g1.InEdges(c.A))
	if len(set) == 0 {
		return nil
	}

	for _, le := range mapping.MatchedLabeledEdges(g1, g2, extended) {
		delete(set, le)
	}
	for _, le := range mapping.MatchedLabeledEdges(g2, g1, extended) {
		delete(set, le)
	}
	if len(set) == 0 {
		return nil
	}

	out := make([]lgraph.LabeledEdge, 0, len(set))
	for le := range set {
		out = append(out, le)
	}
	lgraph.SortLabeledEdges(out)

	return out
}

// collect adds every edge of from whose label appears on some edge of counterpart.
func collect(set map[lgraph.LabeledEdge]struct{}, from, counterpart []lgraph.LabeledEdge) {
	if len(from) == 0 || len(counterpart) == 0 {
		return
	}
	labels := make(map[string]struct{}, len(counterpart))
	for _, le := range counterpart {
		labels[le.Label] = struct{}{}
	}
	for _, le := range from {
		if _, ok := labels[le.Label]; ok {
			set[le] = struct{}{}
		}
	}
}

// PotentialNewCouples returns the unused pairs of V1 × V2 that maximize
// Score(m ∪ {c}) and, among those, the number of potential new matching
// edges. Ties are all kept, in cross-product order. It returns nil when every
// pair is already in m.
//
// g1 and g2 must be non-nil; m may be nil (empty mapping).
// Complexity: O(V1 · V2 · scoring).
func PotentialNewCouples(m *mapping.Mapping, g1, g2 *lgraph.Graph) []mapping.Couple {
	evals := evaluate(m, crossProduct(g1, g2), g1, g2)

	return couplesOf(best(evals))
}

// crossProduct lists V1 × V2 in sorted order.
func crossProduct(g1, g2 *lgraph.Graph) []mapping.Couple {
	v1, v2 := g1.Vertices(), g2.Vertices()
	out := make([]mapping.Couple, 0, len(v1)*len(v2))
	for _, a := range v1 {
		for _, b := range v2 {
			out = append(out, mapping.Couple{A: a, B: b})
		}
	}

	return out
}

// evaluate ranks every pair not yet in m.
func evaluate(m *mapping.Mapping, pairs []mapping.Couple, g1, g2 *lgraph.Graph) []evaluation {
	evals := make([]evaluation, 0, len(pairs))
	for _, c := range pairs {
		if m.Contains(c) {
			continue
		}
		extended := m.With(c)
		evals = append(evals, evaluation{
			couple:    c,
			score:     mapping.Score(g1, g2, extended),
			potential: len(potentialEdges(c, extended, g1, g2)),
		})
	}

	return evals
}

// best narrows evals to the score maxima, then to the potential-edge maxima.
func best(evals []evaluation) []evaluation {
	top := maxima.Maxima(evals, func(e evaluation) int { return e.score })

	return maxima.Maxima(top, func(e evaluation) int { return e.potential })
}

// promising reports whether some evaluation beats current or opens a
// potential edge match; Greedy halts otherwise.
func promising(evals []evaluation, current int) bool {
	for _, e := range evals {
		if e.score > current || e.potential > 0 {
			return true
		}
	}

	return false
}

func couplesOf(evals []evaluation) []mapping.Couple {
	if len(evals) == 0 {
		return nil
	}
	out := make([]mapping.Couple, len(evals))
	for i, e := range evals {
		out[i] = e.couple
	}

	return out
}
