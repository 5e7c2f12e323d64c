// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: lgraph ⇄ gonum simple.DirectedGraph and structural summaries.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/analogy/lgraph"
)

// ErrNilGraph indicates a nil input graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// Directed is a gonum view of an lgraph.Graph.
//
// IDs maps vertex identifiers to gonum node IDs (assigned 0..n-1 in sorted
// vertex order) and Names is the inverse.
type Directed struct {
	Graph     *simple.DirectedGraph
	IDs       map[string]int64
	Names     []string
	SelfLoops int
}

// ToGonum converts g into a simple.DirectedGraph.
// Complexity: O(V + LE).
func ToGonum(g *lgraph.Graph) (*Directed, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilGraph)
	}

	d := &Directed{
		Graph: simple.NewDirectedGraph(),
		IDs:   make(map[string]int64, g.VertexCount()),
		Names: g.Vertices(),
	}
	for i, v := range d.Names {
		d.IDs[v] = int64(i)
		d.Graph.AddNode(simple.Node(i))
	}

	for _, le := range g.LabeledEdges() {
		if le.Origin == le.Destination {
			d.SelfLoops++
			continue
		}
		from, to := d.IDs[le.Origin], d.IDs[le.Destination]
		if d.Graph.HasEdgeFromTo(from, to) {
			continue
		}
		d.Graph.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	return d, nil
}

// FromGonum converts a gonum directed graph into an lgraph.Graph. Vertex IDs
// come from name; every edge carries label. Nodes are visited in ID order.
func FromGonum(g graph.Directed, name func(id int64) string, label string) (*lgraph.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilGraph)
	}

	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int { return compareInt64(a.ID(), b.ID()) })

	out := lgraph.NewGraph()
	for _, n := range nodes {
		if err := out.AddVertex(name(n.ID())); err != nil {
			return nil, fmt.Errorf("FromGonum: node %d: %w", n.ID(), err)
		}
	}
	for _, n := range nodes {
		succ := graph.NodesOf(g.From(n.ID()))
		slices.SortFunc(succ, func(a, b graph.Node) int { return compareInt64(a.ID(), b.ID()) })
		for _, s := range succ {
			if err := out.AddEdge(name(n.ID()), name(s.ID()), label); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d→%d: %w", n.ID(), s.ID(), err)
			}
		}
	}

	return out, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Summary describes the shape of one labeled graph.
type Summary struct {
	Vertices        int
	LabeledVertices int
	LabeledEdges    int
	SelfLoops       int
	// Components lists weakly connected components, each sorted, ordered by
	// their first vertex.
	Components [][]string
	// Acyclic reports whether the graph, self-loops aside, has no directed cycle.
	Acyclic bool
}

// Summarize computes the Summary of g using gonum's topology package.
func Summarize(g *lgraph.Graph) (Summary, error) {
	d, err := ToGonum(g)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Vertices:        g.VertexCount(),
		LabeledVertices: g.LabeledVertexCount(),
		LabeledEdges:    g.LabeledEdgeCount(),
		SelfLoops:       d.SelfLoops,
	}

	for _, comp := range topo.ConnectedComponents(graph.Undirect{G: d.Graph}) {
		names := make([]string, len(comp))
		for i, n := range comp {
			names[i] = d.Names[n.ID()]
		}
		slices.Sort(names)
		s.Components = append(s.Components, names)
	}
	slices.SortFunc(s.Components, func(a, b []string) int { return slices.Compare(a, b) })

	_, err = topo.Sort(d.Graph)
	s.Acyclic = err == nil

	return s, nil
}
