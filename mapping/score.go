// SPDX-License-Identifier: MIT
//
// File: score.go
// Role: the scoring engine: matched facts, integer score, similarity ratio.
//
// Contracts:
//   - Graphs and the mapping are read-only here.
//   - A nil *Mapping scores as the empty mapping.
//   - Matched* return sorted slices; the count* helpers are the
//     allocation-light versions used on the search hot path.

package mapping

import (
	"github.com/katalvlaran/analogy/lgraph"
)

// MatchedLabeledVertices returns the LabeledVertex facts (v, l) of g1 such
// that some vertex in m.Targets(v) carries label l in g2.
//
// Complexity: O(LV1 · k) where k bounds |Targets(v)|.
func MatchedLabeledVertices(g1, g2 *lgraph.Graph, m *Mapping) []lgraph.LabeledVertex {
	var out []lgraph.LabeledVertex
	for _, lv := range g1.LabeledVertices() {
		if vertexMatched(lv, g2, m) {
			out = append(out, lv)
		}
	}

	return out
}

// MatchedLabeledEdges returns the LabeledEdge facts (o, d, l) of g1 such that
// g2 has an edge (o', d', l) with o' ∈ m.Targets(o) and d' ∈ m.Targets(d).
// Origin maps to origin and destination to destination.
//
// Complexity: O(LE1 · k²) where k bounds |Targets(v)|.
func MatchedLabeledEdges(g1, g2 *lgraph.Graph, m *Mapping) []lgraph.LabeledEdge {
	var out []lgraph.LabeledEdge
	for _, le := range g1.LabeledEdges() {
		if edgeMatched(le, g2, m) {
			out = append(out, le)
		}
	}

	return out
}

func vertexMatched(lv lgraph.LabeledVertex, in *lgraph.Graph, m *Mapping) bool {
	for t := range m.targets(lv.Vertex) {
		if in.HasLabel(t, lv.Label) {
			return true
		}
	}

	return false
}

func edgeMatched(le lgraph.LabeledEdge, in *lgraph.Graph, m *Mapping) bool {
	origins := m.targets(le.Origin)
	if len(origins) == 0 {
		return false
	}
	destinations := m.targets(le.Destination)
	if len(destinations) == 0 {
		return false
	}
	var o, d string
	for o = range origins {
		for d = range destinations {
			if in.HasEdge(o, d, le.Label) {
				return true
			}
		}
	}

	return false
}

func countMatchedVertices(g1, g2 *lgraph.Graph, m *Mapping) int {
	n := 0
	for _, lv := range g1.LabeledVertices() {
		if vertexMatched(lv, g2, m) {
			n++
		}
	}

	return n
}

func countMatchedEdges(g1, g2 *lgraph.Graph, m *Mapping) int {
	n := 0
	for _, le := range g1.LabeledEdges() {
		if edgeMatched(le, g2, m) {
			n++
		}
	}

	return n
}

// Score returns
//
//	|mv(g1→g2)| + |mv(g2→g1)| + |me(g1→g2)| + |me(g2→g1)| − SplitCount(m)
//
// The empty mapping scores 0. The result is negative whenever split
// penalties exceed matches.
//
// g1 and g2 must be non-nil; Similarity and Explain validate for callers
// that cannot guarantee it.
func Score(g1, g2 *lgraph.Graph, m *Mapping) int {
	if m.Len() == 0 {
		return 0
	}

	return countMatchedVertices(g1, g2, m) +
		countMatchedVertices(g2, g1, m) +
		countMatchedEdges(g1, g2, m) +
		countMatchedEdges(g2, g1, m) -
		m.SplitCount()
}

// Denominator returns |LV1| + |LE1| + |LV2| + |LE2|, the maximum number of
// facts a mapping can match.
func Denominator(g1, g2 *lgraph.Graph) int {
	return g1.FactCount() + g2.FactCount()
}

// Similarity returns Score(g1, g2, m) / Denominator(g1, g2).
//
// Errors:
//   - ErrNilGraph if g1 or g2 is nil.
//   - ErrNoLabeledFacts if the denominator is zero; the ratio is reported as 0.
func Similarity(g1, g2 *lgraph.Graph, m *Mapping) (float64, error) {
	if g1 == nil || g2 == nil {
		return 0, ErrNilGraph
	}
	den := Denominator(g1, g2)
	if den == 0 {
		return 0, ErrNoLabeledFacts
	}

	return float64(Score(g1, g2, m)) / float64(den), nil
}
