// SPDX-License-Identifier: MIT
//
// File: explain.go
// Role: fact-level diff of two graphs under a mapping.

package mapping

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/analogy/lgraph"
)

// Report is the fact-level account of one mapping between a source graph
// (g1) and a target graph (g2).
//
// Matched* hold facts credited by the score in each direction. Deleted*
// hold source facts left unmatched, Added* target facts left unmatched, so
// for every direction matched + unmatched equals the graph's fact count.
type Report struct {
	Couples []Couple

	MatchedSourceVertices []lgraph.LabeledVertex
	MatchedTargetVertices []lgraph.LabeledVertex
	MatchedSourceEdges    []lgraph.LabeledEdge
	MatchedTargetEdges    []lgraph.LabeledEdge

	DeletedVertices []lgraph.LabeledVertex
	DeletedEdges    []lgraph.LabeledEdge
	AddedVertices   []lgraph.LabeledVertex
	AddedEdges      []lgraph.LabeledEdge

	SplitVertices []string

	Score       int
	Denominator int
	Similarity  float64
}

// Explain builds the Report for m.
//
// Errors:
//   - ErrNilGraph if g1 or g2 is nil.
//   - ErrNoLabeledFacts if neither graph has facts (the report is still filled).
//
// Complexity: same order as Score plus O(LV + LE) for the unmatched sets.
func Explain(g1, g2 *lgraph.Graph, m *Mapping) (Report, error) {
	if g1 == nil || g2 == nil {
		return Report{}, ErrNilGraph
	}

	r := Report{
		Couples:               m.Couples(),
		MatchedSourceVertices: MatchedLabeledVertices(g1, g2, m),
		MatchedTargetVertices: MatchedLabeledVertices(g2, g1, m),
		MatchedSourceEdges:    MatchedLabeledEdges(g1, g2, m),
		MatchedTargetEdges:    MatchedLabeledEdges(g2, g1, m),
		SplitVertices:         m.SplitVertices(),
		Denominator:           Denominator(g1, g2),
	}
	r.DeletedVertices = vertexComplement(g1.LabeledVertices(), r.MatchedSourceVertices)
	r.AddedVertices = vertexComplement(g2.LabeledVertices(), r.MatchedTargetVertices)
	r.DeletedEdges = edgeComplement(g1.LabeledEdges(), r.MatchedSourceEdges)
	r.AddedEdges = edgeComplement(g2.LabeledEdges(), r.MatchedTargetEdges)

	r.Score = len(r.MatchedSourceVertices) + len(r.MatchedTargetVertices) +
		len(r.MatchedSourceEdges) + len(r.MatchedTargetEdges) - len(r.SplitVertices)

	if r.Denominator == 0 {
		return r, ErrNoLabeledFacts
	}
	r.Similarity = float64(r.Score) / float64(r.Denominator)

	return r, nil
}

func vertexComplement(all, matched []lgraph.LabeledVertex) []lgraph.LabeledVertex {
	seen := make(map[lgraph.LabeledVertex]struct{}, len(matched))
	for _, lv := range matched {
		seen[lv] = struct{}{}
	}
	var out []lgraph.LabeledVertex
	for _, lv := range all {
		if _, ok := seen[lv]; !ok {
			out = append(out, lv)
		}
	}

	return out
}

func edgeComplement(all, matched []lgraph.LabeledEdge) []lgraph.LabeledEdge {
	seen := make(map[lgraph.LabeledEdge]struct{}, len(matched))
	for _, le := range matched {
		seen[le] = struct{}{}
	}
	var out []lgraph.LabeledEdge
	for _, le := range all {
		if _, ok := seen[le]; !ok {
			out = append(out, le)
		}
	}

	return out
}

// String renders the report as indented sections; empty sections are skipped.
func (r Report) String() string {
	var sb strings.Builder
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&sb, "%s (%d):\n", title, len(items))
		for _, it := range items {
			sb.WriteString("  ")
			sb.WriteString(it)
			sb.WriteByte('\n')
		}
	}

	section("couples", stringsOf(r.Couples))
	section("matched source vertices", stringsOf(r.MatchedSourceVertices))
	section("matched target vertices", stringsOf(r.MatchedTargetVertices))
	section("matched source edges", stringsOf(r.MatchedSourceEdges))
	section("matched target edges", stringsOf(r.MatchedTargetEdges))
	section("deleted vertices", stringsOf(r.DeletedVertices))
	section("deleted edges", stringsOf(r.DeletedEdges))
	section("added vertices", stringsOf(r.AddedVertices))
	section("added edges", stringsOf(r.AddedEdges))
	section("split vertices", r.SplitVertices)
	fmt.Fprintf(&sb, "score: %d / %d\n", r.Score, r.Denominator)
	fmt.Fprintf(&sb, "similarity: %.2f%%", r.Similarity*100)

	return sb.String()
}

func stringsOf[T fmt.Stringer](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}

	return out
}
