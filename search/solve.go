// Package search - unified dispatcher for the search drivers.
//
// Solve validates inputs once, routes on Options.Algorithm and wraps the run
// in telemetry. Greedy and Exhaustive remain callable directly.
package search

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/analogy/lgraph"
)

// Solve runs the driver selected by Options.Algorithm.
//
// Errors: ErrNilGraph, ErrUnsupportedAlgorithm, and those of the selected driver.
//
// Complexity: per chosen driver (see Greedy, Exhaustive).
func Solve(ctx context.Context, g1, g2 *lgraph.Graph, opts ...Option) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilGraph)
	}
	o := resolve(opts)

	ctx, span := startSolveSpan(ctx, o.Algorithm, g1.VertexCount(), g2.VertexCount())
	defer span.End()
	start := time.Now()

	var (
		res Result
		err error
	)
	switch o.Algorithm {
	case AlgorithmGreedy:
		res, err = greedy(ctx, g1, g2, o)
	case AlgorithmExhaustive:
		res, err = exhaustive(ctx, g1, g2, o)
	default:
		err = fmt.Errorf("Solve: %v: %w", o.Algorithm, ErrUnsupportedAlgorithm)
	}

	recordSolveMetrics(ctx, o.Algorithm, time.Since(start), res, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	setSolveSpanResult(span, res)

	return res, nil
}
