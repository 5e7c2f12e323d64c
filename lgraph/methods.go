// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: fact insertion and read-only queries.
//
// Determinism:
//   - Every slice-returning query is sorted (vertices lexicographically,
//     facts by their fields in declaration order).
//
// Concurrency:
//   - Insertions hold mu for writing; queries hold mu for reading.

package lgraph

import (
	"cmp"
	"fmt"
	"slices"
)

// AddVertex inserts id into the vertex set and one LabeledVertex per label.
//
// Implementation:
//   - Stage 1: Validate id and every label before touching storage, so a
//     rejected call leaves the graph unchanged.
//   - Stage 2: Under the write lock register the vertex, then its facts.
//
// Behavior highlights:
//   - Idempotent: repeated vertices and repeated labels are no-ops.
//   - A vertex with no labels is legal; it still takes part in the vertex
//     cross product of a search.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrEmptyLabel if any label == "".
//
// Complexity:
//   - Time O(|labels|) amortized, Space O(|labels|).
func (g *Graph) AddVertex(id string, labels ...string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	var l string
	for _, l = range labels {
		if l == "" {
			return fmt.Errorf("AddVertex(%s): %w", id, ErrEmptyLabel)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
	for _, l = range labels {
		lv := LabeledVertex{Vertex: id, Label: l}
		if _, ok := g.lvs[lv]; ok {
			continue
		}
		g.lvs[lv] = struct{}{}
		g.labels[id][l] = struct{}{}
		g.lvSorted = nil
	}

	return nil
}

// AddEdge inserts one LabeledEdge origin→destination per label.
//
// Implementation:
//   - Stage 1: Validate endpoints and labels.
//   - Stage 2: Under the write lock register missing endpoints (keeps the
//     vertex-set invariant), then store each new fact in les, out and in.
//
// Behavior highlights:
//   - Idempotent per (origin, destination, label).
//   - Self-loops are accepted; they are ordinary facts for scoring.
//
// Errors:
//   - ErrEmptyVertexID if origin or destination is empty.
//   - ErrEmptyLabel if any label == "".
//
// Complexity:
//   - Time O(|labels|) amortized, Space O(|labels|).
func (g *Graph) AddEdge(origin, destination string, labels ...string) error {
	if origin == "" || destination == "" {
		return fmt.Errorf("AddEdge(%q→%q): %w", origin, destination, ErrEmptyVertexID)
	}
	var l string
	for _, l = range labels {
		if l == "" {
			return fmt.Errorf("AddEdge(%s→%s): %w", origin, destination, ErrEmptyLabel)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(origin)
	g.ensureVertex(destination)
	for _, l = range labels {
		le := LabeledEdge{Origin: origin, Destination: destination, Label: l}
		if _, ok := g.les[le]; ok {
			continue
		}
		g.les[le] = struct{}{}
		g.out[origin] = append(g.out[origin], le)
		g.in[destination] = append(g.in[destination], le)
		g.leSorted = nil
	}

	return nil
}

// ensureVertex registers id and its label bucket. Caller holds mu for writing.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.labels[id] = make(map[string]struct{})
}

// Vertices returns all vertex identifiers sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// LabeledVertices returns every LabeledVertex fact, sorted by (Vertex, Label).
// Complexity: O(LV) on a warm cache, O(LV log LV) after an insertion.
func (g *Graph) LabeledVertices() []LabeledVertex {
	g.mu.RLock()
	if g.lvSorted != nil || len(g.lvs) == 0 {
		out := slices.Clone(g.lvSorted)
		g.mu.RUnlock()
		return out
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.lvSorted == nil {
		g.lvSorted = make([]LabeledVertex, 0, len(g.lvs))
		for lv := range g.lvs {
			g.lvSorted = append(g.lvSorted, lv)
		}
		SortLabeledVertices(g.lvSorted)
	}

	return slices.Clone(g.lvSorted)
}

// LabeledEdges returns every LabeledEdge fact, sorted by (Origin, Destination, Label).
// Complexity: O(LE) on a warm cache, O(LE log LE) after an insertion.
func (g *Graph) LabeledEdges() []LabeledEdge {
	g.mu.RLock()
	if g.leSorted != nil || len(g.les) == 0 {
		out := slices.Clone(g.leSorted)
		g.mu.RUnlock()
		return out
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.leSorted == nil {
		g.leSorted = make([]LabeledEdge, 0, len(g.les))
		for le := range g.les {
			g.leSorted = append(g.leSorted, le)
		}
		SortLabeledEdges(g.leSorted)
	}

	return slices.Clone(g.leSorted)
}

// HasVertex reports whether id is in the vertex set.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// HasLabel reports whether vertex v carries label.
// Complexity: O(1).
func (g *Graph) HasLabel(v, label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.labels[v][label]

	return ok
}

// Labels returns the labels carried by v, sorted. Unknown v yields nil.
func (g *Graph) Labels(v string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.labels[v]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// HasEdge reports whether the fact origin→destination with label exists.
// Complexity: O(1).
func (g *Graph) HasEdge(origin, destination, label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.les[LabeledEdge{Origin: origin, Destination: destination, Label: label}]

	return ok
}

// OutEdges returns the labeled edges whose origin is v, sorted.
// Complexity: O(d log d) where d is the out-fact count of v.
func (g *Graph) OutEdges(v string) []LabeledEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedCopy(g.out[v])
}

// InEdges returns the labeled edges whose destination is v, sorted.
// Complexity: O(d log d) where d is the in-fact count of v.
func (g *Graph) InEdges(v string) []LabeledEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedCopy(g.in[v])
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// LabeledVertexCount returns |LV|.
func (g *Graph) LabeledVertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lvs)
}

// LabeledEdgeCount returns |LE|.
func (g *Graph) LabeledEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.les)
}

// FactCount returns |LV| + |LE|, this graph's share of the similarity denominator.
func (g *Graph) FactCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.lvs) + len(g.les)
}

func sortedCopy(src []LabeledEdge) []LabeledEdge {
	if len(src) == 0 {
		return nil
	}
	out := make([]LabeledEdge, len(src))
	copy(out, src)
	SortLabeledEdges(out)

	return out
}

// SortLabeledVertices sorts facts in place by (Vertex, Label).
func SortLabeledVertices(lvs []LabeledVertex) {
	slices.SortFunc(lvs, func(a, b LabeledVertex) int {
		if c := cmp.Compare(a.Vertex, b.Vertex); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
}

// SortLabeledEdges sorts facts in place by (Origin, Destination, Label).
func SortLabeledEdges(les []LabeledEdge) {
	slices.SortFunc(les, func(a, b LabeledEdge) int {
		if c := cmp.Compare(a.Origin, b.Origin); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Destination, b.Destination); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
}
