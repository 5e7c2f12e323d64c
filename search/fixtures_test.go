package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analogy/builder"
	"github.com/katalvlaran/analogy/lgraph"
)

// beamsPair returns beams a..d on walls e, f and beams 1..4 on wall 5.
// profile labels are added to every beam ("I" on the source side, "U" on the
// target side) when withProfiles is set.
func beamsPair(t *testing.T, withProfiles bool) (*lgraph.Graph, *lgraph.Graph) {
	t.Helper()

	var p1, p2 []string
	if withProfiles {
		p1, p2 = []string{"I"}, []string{"U"}
	}
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLetterIDs()}, builder.BeamsOnWalls(4, 2, p1...))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOneBasedIDs()}, builder.BeamsOnWalls(4, 1, p2...))
	require.NoError(t, err)

	return g1, g2
}

// disjointPair shares no label between the two graphs.
func disjointPair(t *testing.T) (*lgraph.Graph, *lgraph.Graph) {
	t.Helper()

	g1 := lgraph.NewGraph()
	require.NoError(t, g1.AddVertex("a", "red"))
	require.NoError(t, g1.AddVertex("b", "blue"))
	require.NoError(t, g1.AddEdge("a", "b", "left-of"))
	g2 := lgraph.NewGraph()
	require.NoError(t, g2.AddVertex("1", "round"))
	require.NoError(t, g2.AddVertex("2", "square"))
	require.NoError(t, g2.AddEdge("1", "2", "above"))

	return g1, g2
}

// onePair is a beam on a wall on each side.
func onePair(t *testing.T) (*lgraph.Graph, *lgraph.Graph) {
	t.Helper()

	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLetterIDs()}, builder.BeamsOnWalls(1, 1))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOneBasedIDs()}, builder.BeamsOnWalls(1, 1))
	require.NoError(t, err)

	return g1, g2
}
