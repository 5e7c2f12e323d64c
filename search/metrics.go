// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: OpenTelemetry tracer, meter and instruments for search runs.
//
// No provider is installed here; without one the global no-op provider
// makes every call below free.

package search

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for search operations.
var (
	tracer = otel.Tracer("analogy.search")
	meter  = otel.Meter("analogy.search")
)

// Instruments for search runs.
var (
	searchDuration   metric.Float64Histogram
	searchRuns       metric.Int64Counter
	searchIterations metric.Int64Histogram
	searchSimilarity metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchDuration, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of mapping searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchRuns, err = meter.Int64Counter(
			"search_runs_total",
			metric.WithDescription("Total number of mapping searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchIterations, err = meter.Int64Histogram(
			"search_iterations",
			metric.WithDescription("Couples inserted by the winning greedy run"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchSimilarity, err = meter.Float64Histogram(
			"search_similarity",
			metric.WithDescription("Similarity of the best mapping found"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startSolveSpan creates the span for one Solve call.
func startSolveSpan(ctx context.Context, algo Algorithm, v1, v2 int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search.Solve",
		trace.WithAttributes(
			attribute.String("search.algorithm", algo.String()),
			attribute.Int("search.source_vertices", v1),
			attribute.Int("search.target_vertices", v2),
		),
	)
}

// setSolveSpanResult sets the result attributes on a Solve span.
func setSolveSpanResult(span trace.Span, res Result) {
	span.SetAttributes(
		attribute.Int("search.score", res.Score),
		attribute.Float64("search.similarity", res.Similarity),
		attribute.Int("search.couples", res.Mapping.Len()),
		attribute.Int("search.evaluated", res.Evaluated),
	)
}

// recordSolveMetrics records metrics for one Solve call.
func recordSolveMetrics(ctx context.Context, algo Algorithm, duration time.Duration, res Result, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("algorithm", algo.String()),
		attribute.Bool("success", success),
	)

	searchDuration.Record(ctx, duration.Seconds(), attrs)
	searchRuns.Add(ctx, 1, attrs)
	if !success {
		return
	}
	searchIterations.Record(ctx, int64(res.Iterations), attrs)
	searchSimilarity.Record(ctx, res.Similarity, attrs)
}
