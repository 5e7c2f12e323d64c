package maxima_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/analogy/maxima"
)

func TestMaxima(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", nil, nil},
		{"single", []int{7}, []int{7}},
		{"unique max", []int{1, 5, 3}, []int{5}},
		{"ties keep order", []int{4, 1, 4, 2, 4}, []int{4, 4, 4}},
		{"negatives", []int{-3, -1, -1, -2}, []int{-1, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := maxima.Maxima(tc.in, func(v int) int { return v })
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMaxima_KeyOncePerElement guards the single-evaluation contract.
func TestMaxima_KeyOncePerElement(t *testing.T) {
	calls := 0
	words := []string{"go", "rust", "zig", "java"}
	got := maxima.Maxima(words, func(s string) int {
		calls++
		return len(s)
	})
	assert.Equal(t, []string{"rust", "java"}, got)
	assert.Equal(t, len(words), calls)
}

// TestMaxima_ChainedPasses mirrors the two-level candidate ranking.
func TestMaxima_ChainedPasses(t *testing.T) {
	words := []string{"beam", "wall", "on", "next", "bead"}
	first := maxima.Maxima(words, func(s string) int { return len(s) })
	second := maxima.Maxima(first, func(s string) int { return strings.Count(s, "e") })
	assert.Equal(t, []string{"beam", "wall", "next", "bead"}, first)
	assert.Equal(t, []string{"beam", "next", "bead"}, second)
}
