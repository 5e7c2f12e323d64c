package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
)

func TestScore_Reference(t *testing.T) {
	g1, g2 := beamsPair(t)
	m := beamsReference()

	// Vertex facts: the four beam labels and both walls on the source side,
	// the four beam labels and the wall on the target side. I and U never match.
	assert.Len(t, mapping.MatchedLabeledVertices(g1, g2, m), 6)
	assert.Len(t, mapping.MatchedLabeledVertices(g2, g1, m), 5)
	assert.Len(t, mapping.MatchedLabeledEdges(g1, g2, m), 7)
	assert.Len(t, mapping.MatchedLabeledEdges(g2, g1, m), 7)
	assert.Equal(t, 1, m.SplitCount())

	assert.Equal(t, 24, mapping.Score(g1, g2, m))
	assert.Equal(t, 33, mapping.Denominator(g1, g2))

	sim, err := mapping.Similarity(g1, g2, m)
	require.NoError(t, err)
	assert.InDelta(t, 24.0/33.0, sim, 1e-12)
}

func TestScore_EmptyMapping(t *testing.T) {
	g1, g2 := beamsPair(t)

	assert.Equal(t, 0, mapping.Score(g1, g2, mapping.New()))
	assert.Equal(t, 0, mapping.Score(g1, g2, nil))

	sim, err := mapping.Similarity(g1, g2, mapping.New())
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestScore_MatchedBounds(t *testing.T) {
	g1, g2 := beamsPair(t)
	m := mapping.New()
	for _, a := range g1.Vertices() {
		for _, b := range g2.Vertices() {
			m.Add(mapping.Couple{A: a, B: b})
		}
	}

	assert.LessOrEqual(t, len(mapping.MatchedLabeledVertices(g1, g2, m)), g1.LabeledVertexCount())
	assert.LessOrEqual(t, len(mapping.MatchedLabeledVertices(g2, g1, m)), g2.LabeledVertexCount())
	assert.LessOrEqual(t, len(mapping.MatchedLabeledEdges(g1, g2, m)), g1.LabeledEdgeCount())
	assert.LessOrEqual(t, len(mapping.MatchedLabeledEdges(g2, g1, m)), g2.LabeledEdgeCount())
	assert.Equal(t, g1.VertexCount()+g2.VertexCount(), m.SplitCount())
}

func TestScore_AddCanIncrease(t *testing.T) {
	g1, g2 := beamsPair(t)
	m := mapping.New()

	up := m.With(mapping.Couple{A: "a", B: "1"})
	assert.Equal(t, 2, mapping.Score(g1, g2, up)) // a:beam and 1:beam
	assert.Greater(t, mapping.Score(g1, g2, up), mapping.Score(g1, g2, m))
}

func TestScore_AddCanDecrease(t *testing.T) {
	g1, g2 := beamsPair(t)
	m := mapping.New(mapping.Couple{A: "a", B: "1"})

	down := m.With(mapping.Couple{A: "a", B: "5"}) // beam vs wall, a becomes split
	assert.Equal(t, 1, mapping.Score(g1, g2, down))
	assert.Less(t, mapping.Score(g1, g2, down), mapping.Score(g1, g2, m))
}

func TestScore_DecreaseWhileMatchesGrow(t *testing.T) {
	g1 := lgraph.NewGraph()
	require.NoError(t, g1.AddVertex("x", "p", "q"))
	require.NoError(t, g1.AddVertex("y", "q"))
	g2 := lgraph.NewGraph()
	require.NoError(t, g2.AddVertex("1", "p"))
	require.NoError(t, g2.AddVertex("2", "q"))

	m := mapping.New(mapping.Couple{A: "x", B: "1"}, mapping.Couple{A: "y", B: "2"})
	grown := m.With(mapping.Couple{A: "x", B: "2"})

	matched := func(m *mapping.Mapping) int {
		return len(mapping.MatchedLabeledVertices(g1, g2, m)) + len(mapping.MatchedLabeledVertices(g2, g1, m))
	}
	assert.Equal(t, 4, matched(m))
	assert.Equal(t, 5, matched(grown)) // x:q now reaches 2:q
	assert.Equal(t, 4, mapping.Score(g1, g2, m))
	assert.Equal(t, 3, mapping.Score(g1, g2, grown)) // x and 2 both split
}

func TestScore_EdgeDirection(t *testing.T) {
	g1 := lgraph.NewGraph()
	require.NoError(t, g1.AddEdge("a", "b", "on"))
	g2 := lgraph.NewGraph()
	require.NoError(t, g2.AddEdge("2", "1", "on"))

	forward := mapping.New(mapping.Couple{A: "a", B: "1"}, mapping.Couple{A: "b", B: "2"})
	assert.Empty(t, mapping.MatchedLabeledEdges(g1, g2, forward))

	swapped := mapping.New(mapping.Couple{A: "a", B: "2"}, mapping.Couple{A: "b", B: "1"})
	assert.Len(t, mapping.MatchedLabeledEdges(g1, g2, swapped), 1)
	assert.Len(t, mapping.MatchedLabeledEdges(g2, g1, swapped), 1)
	assert.Equal(t, 2, mapping.Score(g1, g2, swapped))
}

func TestScore_DisjointVocabularies(t *testing.T) {
	g1 := lgraph.NewGraph()
	require.NoError(t, g1.AddVertex("a", "red"))
	require.NoError(t, g1.AddEdge("a", "b", "left-of"))
	g2 := lgraph.NewGraph()
	require.NoError(t, g2.AddVertex("1", "round"))
	require.NoError(t, g2.AddEdge("1", "2", "above"))

	tests := []*mapping.Mapping{
		mapping.New(mapping.Couple{A: "a", B: "1"}),
		mapping.New(mapping.Couple{A: "a", B: "1"}, mapping.Couple{A: "a", B: "2"}),
		mapping.New(mapping.Couple{A: "a", B: "1"}, mapping.Couple{A: "b", B: "1"}, mapping.Couple{A: "b", B: "2"}),
	}
	for _, m := range tests {
		assert.Equal(t, -m.SplitCount(), mapping.Score(g1, g2, m), m.Render())
	}
}

func TestSimilarity_Errors(t *testing.T) {
	g := lgraph.NewGraph()
	require.NoError(t, g.AddVertex("lonely"))

	_, err := mapping.Similarity(g, lgraph.NewGraph(), mapping.New())
	assert.ErrorIs(t, err, mapping.ErrNoLabeledFacts)

	_, err = mapping.Similarity(nil, g, mapping.New())
	assert.ErrorIs(t, err, mapping.ErrNilGraph)
}
