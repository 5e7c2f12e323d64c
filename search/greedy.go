// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: randomized greedy construction with optional parallel restarts.
//
// Contracts:
//   - A run never fails on valid graphs; only nil graphs and ctx cancellation
//     surface as errors.
//   - A run performs at most |V1|·|V2| insertions.
//   - The working mapping may lose score after an insertion (a pair is taken
//     for its potential edges); the best mapping seen is what is returned.

package search

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/analogy/lgraph"
	"github.com/katalvlaran/analogy/mapping"
)

// run is the outcome of one Greedy run.
type run struct {
	best       *mapping.Mapping
	score      int
	iterations int
	evaluated  int
}

// Greedy searches for a high-similarity mapping by repeatedly inserting one
// of the best next couples, chosen uniformly at random among ties.
//
// Implementation:
//   - Stage 1: Validate graphs and resolve options.
//   - Stage 2: One run on the base RNG, or Options.Restarts runs on derived
//     streams spread over Options.Workers goroutines.
//   - Stage 3: Keep the highest-scoring run (lowest restart index on ties).
//
// Complexity: O(Restarts · V1·V2 · V1·V2 · scoring) worst case.
func Greedy(ctx context.Context, g1, g2 *lgraph.Graph, opts ...Option) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, fmt.Errorf("Greedy: %w", ErrNilGraph)
	}

	return greedy(ctx, g1, g2, resolve(opts))
}

func greedy(ctx context.Context, g1, g2 *lgraph.Graph, o Options) (Result, error) {
	base := baseRNG(o)

	runs := make([]run, o.Restarts)
	if o.Restarts == 1 {
		r, err := greedyRun(ctx, g1, g2, base, o.Logger)
		if err != nil {
			return Result{}, fmt.Errorf("Greedy: %w", err)
		}
		runs[0] = r
	} else {
		// Streams are derived up front, in order, so each restart sees the same
		// RNG regardless of scheduling.
		rngs := make([]*rand.Rand, o.Restarts)
		for i := range rngs {
			rngs[i] = deriveRNG(base, uint64(i))
		}

		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(o.Workers)
		for i := range runs {
			eg.Go(func() error {
				r, err := greedyRun(egCtx, g1, g2, rngs[i], o.Logger.With(slog.Int("restart", i)))
				if err != nil {
					return err
				}
				runs[i] = r

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Result{}, fmt.Errorf("Greedy: %w", err)
		}
	}

	res := Result{Algorithm: AlgorithmGreedy, Restarts: make([]RestartStat, len(runs))}
	winner := 0
	for i, r := range runs {
		res.Evaluated += r.evaluated
		res.Restarts[i] = RestartStat{
			Index:      i,
			Score:      r.score,
			Similarity: similarity(g1, g2, r.best),
			Iterations: r.iterations,
		}
		if r.score > runs[winner].score {
			winner = i
		}
	}
	res.Mapping = runs[winner].best
	res.Score = runs[winner].score
	res.Similarity = res.Restarts[winner].Similarity
	res.Iterations = runs[winner].iterations
	res.Stats = summarize(res.Restarts)

	o.Logger.Info("greedy search finished",
		slog.Int("restarts", len(runs)),
		slog.Int("winner", winner),
		slog.Int("score", res.Score),
		slog.Float64("similarity", res.Similarity),
		slog.Int("evaluated", res.Evaluated),
	)

	return res, nil
}

// greedyRun performs one randomized greedy construction.
//
// Implementation:
//   - Stage 1: Rank every unused pair by Score(m ∪ {c}) and potential edges.
//   - Stage 2: Halt if no pair beats the current score or opens an edge match.
//   - Stage 3: Insert a random pair among the double maxima.
//   - Stage 4: Snapshot m when it beats the best score so far.
func greedyRun(ctx context.Context, g1, g2 *lgraph.Graph, rng *rand.Rand, logger *slog.Logger) (run, error) {
	pairs := crossProduct(g1, g2)
	m := mapping.New()
	r := run{best: mapping.New()}
	current := 0

	for r.iterations < len(pairs) {
		if err := ctx.Err(); err != nil {
			return run{}, err
		}

		evals := evaluate(m, pairs, g1, g2)
		r.evaluated += len(evals)
		if !promising(evals, current) {
			break
		}

		candidates := best(evals)
		pick := candidates[rng.Intn(len(candidates))]
		m.Add(pick.couple)
		current = pick.score
		r.iterations++

		logger.Debug("greedy step",
			slog.Int("iteration", r.iterations),
			slog.String("couple", pick.couple.String()),
			slog.Int("ties", len(candidates)),
			slog.Int("score", current),
			slog.Int("potential_edges", pick.potential),
		)

		if current > r.score {
			r.best = m.Clone()
			r.score = current
		}
	}

	return r, nil
}

// similarity is mapping.Similarity with the no-facts case reported as 0.
func similarity(g1, g2 *lgraph.Graph, m *mapping.Mapping) float64 {
	s, err := mapping.Similarity(g1, g2, m)
	if err != nil {
		return 0
	}

	return s
}
