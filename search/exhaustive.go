// SPDX-License-Identifier: MIT
//
// File: exhaustive.go
// Role: reference search over every subset of the pair cross product.
//
// Order:
//   - Subset sizes 0..P ascending; within a size, index combinations of the
//     sorted cross product in lexicographic order.
//   - The first subset reaching the maximum score wins (strict improvement only).

package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
)

// ctxCheckEvery is how many subsets are scored between context checks.
const ctxCheckEvery = 1024

// Exhaustive returns the maximum-similarity mapping over all subsets of
// V1 × V2. It is exponential in |V1|·|V2| and intended for small inputs.
//
// Errors:
//   - ErrNilGraph for nil graphs.
//   - ErrSearchSpaceTooLarge when |V1|·|V2| > MaxExhaustivePairs and
//     WithAllowLarge was not given.
//   - ctx.Err() when cancelled mid-enumeration.
//
// Complexity: O(2^P · scoring), P = |V1|·|V2|.
func Exhaustive(ctx context.Context, g1, g2 *lgraph.Graph, opts ...Option) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, fmt.Errorf("Exhaustive: %w", ErrNilGraph)
	}

	return exhaustive(ctx, g1, g2, resolve(opts))
}

func exhaustive(ctx context.Context, g1, g2 *lgraph.Graph, o Options) (Result, error) {
	pairs := crossProduct(g1, g2)
	if len(pairs) > o.MaxExhaustivePairs && !o.AllowLarge {
		return Result{}, fmt.Errorf("Exhaustive: %d pairs > max %d: %w",
			len(pairs), o.MaxExhaustivePairs, ErrSearchSpaceTooLarge)
	}

	res := Result{Algorithm: AlgorithmExhaustive, Mapping: mapping.New(), Evaluated: 1}
	idx := make([]int, 0, len(pairs))
	subset := make([]mapping.Couple, 0, len(pairs))

	for k := 1; k <= len(pairs); k++ {
		idx = idx[:k]
		for i := range idx {
			idx[i] = i
		}
		for {
			if res.Evaluated%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return Result{}, fmt.Errorf("Exhaustive: %w", err)
				}
			}

			subset = subset[:0]
			for _, i := range idx {
				subset = append(subset, pairs[i])
			}
			m := mapping.New(subset...)
			res.Evaluated++
			if s := mapping.Score(g1, g2, m); s > res.Score {
				res.Score = s
				res.Mapping = m
			}

			if !nextCombination(idx, len(pairs)) {
				break
			}
		}
	}
	res.Similarity = similarity(g1, g2, res.Mapping)

	o.Logger.Info("exhaustive search finished",
		slog.Int("pairs", len(pairs)),
		slog.Int("evaluated", res.Evaluated),
		slog.Int("score", res.Score),
		slog.Float64("similarity", res.Similarity),
	)

	return res, nil
}

// nextCombination advances idx, a strictly increasing k-subset of 0..n-1,
// to its lexicographic successor. It reports false after the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return true
}
