package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analogy/builder"
	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
)

// beamsPair returns four I-beams on two walls (a..f) and four U-beams on one
// wall (1..5).
func beamsPair(t *testing.T) (*lgraph.Graph, *lgraph.Graph) {
	t.Helper()

	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLetterIDs()}, builder.BeamsOnWalls(4, 2, "I"))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOneBasedIDs()}, builder.BeamsOnWalls(4, 1, "U"))
	require.NoError(t, err)

	return g1, g2
}

// beamsReference is the intended analogy: beams in order, both walls onto one.
func beamsReference() *mapping.Mapping {
	return mapping.New(
		mapping.Couple{A: "a", B: "1"},
		mapping.Couple{A: "b", B: "2"},
		mapping.Couple{A: "c", B: "3"},
		mapping.Couple{A: "d", B: "4"},
		mapping.Couple{A: "e", B: "5"},
		mapping.Couple{A: "f", B: "5"},
	)
}
