package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
	"github.com/katalvlaran/analogy/search"
)

func TestPotentialNewMatchingEdges_FromEmpty(t *testing.T) {
	g1, g2 := beamsPair(t, true)

	got := search.PotentialNewMatchingEdges(mapping.Couple{A: "a", B: "1"}, mapping.New(), g1, g2)
	want := []lgraph.LabeledEdge{
		{Origin: "1", Destination: "2", Label: "next-to"},
		{Origin: "1", Destination: "5", Label: "on"},
		{Origin: "a", Destination: "b", Label: "next-to"},
		{Origin: "a", Destination: "e", Label: "on"},
	}
	assert.Equal(t, want, got)
}

func TestPotentialNewMatchingEdges_SubtractsMatched(t *testing.T) {
	g1, g2 := beamsPair(t, true)
	m := mapping.New(mapping.Couple{A: "a", B: "1"}, mapping.Couple{A: "b", B: "2"})

	got := search.PotentialNewMatchingEdges(mapping.Couple{A: "e", B: "5"}, m, g1, g2)
	want := []lgraph.LabeledEdge{
		{Origin: "3", Destination: "5", Label: "on"},
		{Origin: "4", Destination: "5", Label: "on"},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 2, m.Len(), "m must not be modified")
}

func TestPotentialNewMatchingEdges_NoSharedLabels(t *testing.T) {
	g1, g2 := disjointPair(t)

	assert.Empty(t, search.PotentialNewMatchingEdges(mapping.Couple{A: "a", B: "1"}, mapping.New(), g1, g2))
}

func TestPotentialNewCouples_FirstStep(t *testing.T) {
	g1, g2 := beamsPair(t, true)

	want := []mapping.Couple{
		{A: "b", B: "2"}, {A: "b", B: "3"},
		{A: "c", B: "2"}, {A: "c", B: "3"},
		{A: "e", B: "5"}, {A: "f", B: "5"},
	}
	assert.Equal(t, want, search.PotentialNewCouples(mapping.New(), g1, g2))
	assert.Equal(t, want, search.PotentialNewCouples(nil, g1, g2))
}

func TestPotentialNewCouples_Exhausted(t *testing.T) {
	g1, g2 := onePair(t)
	m := mapping.New()
	for _, a := range g1.Vertices() {
		for _, b := range g2.Vertices() {
			m.Add(mapping.Couple{A: a, B: b})
		}
	}

	assert.Nil(t, search.PotentialNewCouples(m, g1, g2))
}
