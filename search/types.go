// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, Algorithm, Options and Result types.

package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/katalvlaran/analogy/mapping"
)

// Sentinel errors returned by the search drivers.
var (
	// ErrNilGraph indicates that a nil *lgraph.Graph was passed to a driver.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrSearchSpaceTooLarge indicates that Exhaustive was asked to enumerate
	// more pairs than Options.MaxExhaustivePairs without WithAllowLarge.
	ErrSearchSpaceTooLarge = errors.New("search: search space too large for exhaustive enumeration")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("search: unsupported algorithm")
)

// Algorithm selects the search driver used by Solve.
type Algorithm int

const (
	// AlgorithmGreedy runs Greedy.
	AlgorithmGreedy Algorithm = iota
	// AlgorithmExhaustive runs Exhaustive.
	AlgorithmExhaustive
)

// String returns the lowercase name used by the CLI and config files.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmGreedy:
		return "greedy"
	case AlgorithmExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "greedy" or "exhaustive" (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return AlgorithmGreedy, nil
	case "exhaustive":
		return AlgorithmExhaustive, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnsupportedAlgorithm)
	}
}

// Defaults applied by DefaultOptions.
const (
	DefaultMaxExhaustivePairs = 16
	DefaultRestarts           = 1
	DefaultWorkers            = 1
)

// Options configures a search run.
//
// Algorithm          – driver used by Solve (default AlgorithmGreedy).
// Seed               – seed for the tie-break RNG; 0 means defaultRNGSeed.
// Rand               – injected RNG; takes precedence over Seed.
// Restarts           – independent Greedy runs (≥ 1).
// Workers            – goroutines used for restarts (≥ 1).
// MaxExhaustivePairs – Exhaustive refuses larger pair products unless AllowLarge.
// AllowLarge         – lift the Exhaustive size guard.
// Logger             – receives run summaries (Info) and choices (Debug).
type Options struct {
	Algorithm          Algorithm
	Seed               int64
	Rand               *rand.Rand
	Restarts           int
	Workers            int
	MaxExhaustivePairs int
	AllowLarge         bool
	Logger             *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults: greedy, seed 0, one restart, one
// worker, a 16-pair exhaustive guard and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Algorithm:          AlgorithmGreedy,
		Restarts:           DefaultRestarts,
		Workers:            DefaultWorkers,
		MaxExhaustivePairs: DefaultMaxExhaustivePairs,
		Logger:             slog.New(slog.DiscardHandler),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAlgorithm selects the driver used by Solve. Unknown values are
// rejected by Solve with ErrUnsupportedAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithSeed sets the tie-break seed (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects the tie-break RNG. The RNG is used by one goroutine only;
// restarts derive their own streams from it. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("search: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithRestarts runs n independent Greedy restarts. Panics if n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithRestarts(%d): must be ≥ 1", n))
	}
	return func(o *Options) {
		o.Restarts = n
	}
}

// WithWorkers bounds the goroutines used for restarts. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithWorkers(%d): must be ≥ 1", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxExhaustivePairs sets the Exhaustive size guard. Panics if n < 1.
func WithMaxExhaustivePairs(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithMaxExhaustivePairs(%d): must be ≥ 1", n))
	}
	return func(o *Options) {
		o.MaxExhaustivePairs = n
	}
}

// WithAllowLarge lifts the Exhaustive size guard.
func WithAllowLarge() Option {
	return func(o *Options) {
		o.AllowLarge = true
	}
}

// WithLogger routes run logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// RestartStat describes one Greedy restart.
type RestartStat struct {
	Index      int
	Score      int
	Similarity float64
	Iterations int
}

// Summary aggregates restart similarities.
type Summary struct {
	Runs   int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Result is the outcome of a search.
//
// Mapping    – best mapping found (never nil; may be empty).
// Score      – integer score of Mapping.
// Similarity – Score over the fact denominator; 0 when both graphs have no facts.
// Iterations – couples inserted by the winning Greedy run; 0 for Exhaustive.
// Evaluated  – mappings scored across the whole search.
// Algorithm  – driver that produced the result.
// Restarts   – per-restart statistics (Greedy only, in restart order).
// Stats      – Summary over Restarts.
type Result struct {
	Mapping    *mapping.Mapping
	Score      int
	Similarity float64
	Iterations int
	Evaluated  int
	Algorithm  Algorithm
	Restarts   []RestartStat
	Stats      Summary
}
