// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: LabeledVertex, LabeledEdge and Graph declarations, sentinel errors, constructor.

package lgraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates that a vertex identifier is the empty string.
	ErrEmptyVertexID = errors.New("lgraph: vertex ID is empty")

	// ErrEmptyLabel indicates that a vertex or edge label is the empty string.
	ErrEmptyLabel = errors.New("lgraph: label is empty")
)

// LabeledVertex is the fact "vertex Vertex carries label Label".
// It is a comparable value; equality covers both fields.
type LabeledVertex struct {
	Vertex string
	Label  string
}

// String renders the fact as "vertex:label".
func (lv LabeledVertex) String() string {
	return lv.Vertex + ":" + lv.Label
}

// LabeledEdge is the fact "the directed pair Origin→Destination carries label Label".
// It is a comparable value; equality covers all three fields.
type LabeledEdge struct {
	Origin      string
	Destination string
	Label       string
}

// String renders the fact as "origin-[label]->destination".
func (le LabeledEdge) String() string {
	return fmt.Sprintf("%s-[%s]->%s", le.Origin, le.Label, le.Destination)
}

// Graph holds one domain: a vertex set plus labeled-vertex and labeled-edge fact sets.
//
// Besides the three sets it keeps insertion-time indexes so that scoring can
// answer "does v carry label l" and "is there an edge o→d with label l" in O(1):
//   - labels[v]            = set of labels on v
//   - out[v] / in[v]       = labeled edges leaving / entering v
//
// Sorted fact snapshots are cached because scoring enumerates them many
// times per search while the graph no longer changes.
//
// mu guards every field.
type Graph struct {
	mu sync.RWMutex

	vertices map[string]struct{}
	lvs      map[LabeledVertex]struct{}
	les      map[LabeledEdge]struct{}

	labels map[string]map[string]struct{}
	out    map[string][]LabeledEdge
	in     map[string][]LabeledEdge

	// sorted snapshots, rebuilt lazily after the first read following an insertion
	lvSorted []LabeledVertex
	leSorted []LabeledEdge
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		lvs:      make(map[LabeledVertex]struct{}),
		les:      make(map[LabeledEdge]struct{}),
		labels:   make(map[string]map[string]struct{}),
		out:      make(map[string][]LabeledEdge),
		in:       make(map[string][]LabeledEdge),
	}
}
