// Package mapping holds vertex correspondences between two labeled graphs and
// the scoring engine that evaluates them.
//
// A Couple (a, b) hypothesizes that vertex a of the source graph corresponds
// to vertex b of the target graph. A Mapping is a set of Couples with no
// one-to-one constraint: the same vertex may appear in several Couples. Such
// "splits" are legal intermediate states of a search and are penalized by
// SplitCount.
//
// Lookup is symmetric: a Couple (a, b) maps a to b and b to a, so the same
// Mapping scores facts of either graph against the other. The Mapping keeps
// an explicit bidirectional index (vertex → paired vertices) that is updated
// on every Add, so Targets is O(1) regardless of Mapping size.
//
// Scoring:
//
//	MatchedLabeledVertices(g1, g2, m)  facts (v,l) of g1 with some target of v labeled l in g2
//	MatchedLabeledEdges(g1, g2, m)     facts (o,d,l) of g1 with an edge (o',d',l) in g2,
//	                                   o' ∈ Targets(o), d' ∈ Targets(d); direction is kept
//	SplitCount(m)                      identifiers (both sides pooled) present in ≥ 2 Couples
//	Score = mv(g1→g2) + mv(g2→g1) + me(g1→g2) + me(g2→g1) − SplitCount
//	Similarity = Score / (|LV1| + |LE1| + |LV2| + |LE2|)
//
// Score is an integer and may be negative. Similarity returns ErrNoLabeledFacts
// when both graphs carry no facts at all, instead of dividing by zero.
//
// Explain produces the full fact-level report for a Mapping: which facts
// matched in each direction, which source facts were lost, which target facts
// were introduced, and which vertices are split.
//
// Concurrency:
//
//	A Mapping is owned by one goroutine at a time and is not synchronized.
//	Clone it before handing it to another goroutine.
package mapping
