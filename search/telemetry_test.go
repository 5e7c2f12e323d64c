package search_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/analogy/search"
)

// The global providers are installed once for the package: instruments are
// created lazily on the first Solve and stay bound to the first provider.
var (
	spanRecorder = tracetest.NewSpanRecorder()
	metricReader = sdkmetric.NewManualReader()
)

func TestMain(m *testing.M) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader))
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	code := m.Run()

	_ = tp.Shutdown(context.Background())
	_ = mp.Shutdown(context.Background())
	os.Exit(code)
}

// solveSpans runs fn and returns the spans it ended.
func solveSpans(t *testing.T, fn func()) []sdktrace.ReadOnlySpan {
	t.Helper()
	before := len(spanRecorder.Ended())
	fn()

	return spanRecorder.Ended()[before:]
}

func collectMetrics(t *testing.T) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, metricReader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != "analogy.search" {
			continue
		}
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func attrsOf(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestSolve_EmitsSpanAndMetrics(t *testing.T) {
	g1, g2 := onePair(t)

	var res search.Result
	spans := solveSpans(t, func() {
		var err error
		res, err = search.Solve(context.Background(), g1, g2, search.WithAlgorithm(search.AlgorithmExhaustive))
		require.NoError(t, err)
	})

	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "search.Solve", span.Name())
	assert.NotEqual(t, codes.Error, span.Status().Code)

	attrs := attrsOf(span)
	assert.Equal(t, "exhaustive", attrs["search.algorithm"].AsString())
	assert.Equal(t, int64(g1.VertexCount()), attrs["search.source_vertices"].AsInt64())
	assert.Equal(t, int64(res.Score), attrs["search.score"].AsInt64())
	assert.Equal(t, int64(res.Mapping.Len()), attrs["search.couples"].AsInt64())
	assert.InDelta(t, res.Similarity, attrs["search.similarity"].AsFloat64(), 1e-12)

	metrics := collectMetrics(t)
	for _, name := range []string{
		"search_duration_seconds",
		"search_runs_total",
		"search_iterations",
		"search_similarity",
	} {
		assert.Contains(t, metrics, name)
	}
}

func TestSolve_FailureMarksSpan(t *testing.T) {
	g1, g2 := onePair(t)

	spans := solveSpans(t, func() {
		_, err := search.Solve(context.Background(), g1, g2, search.WithAlgorithm(search.Algorithm(42)))
		require.ErrorIs(t, err, search.ErrUnsupportedAlgorithm)
	})

	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Status().Description, "unsupported algorithm")
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)

	runs, ok := collectMetrics(t)["search_runs_total"]
	require.True(t, ok)
	sum, ok := runs.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	var failed int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value("success"); ok && !v.AsBool() {
			failed += dp.Value
		}
	}
	assert.GreaterOrEqual(t, failed, int64(1))
}
