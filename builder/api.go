// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/analogy/lgraph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and never panic.
type Constructor func(g *lgraph.Graph, cfg builderConfig) error

// BuildGraph creates a new lgraph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; no partial graph is
// returned.
//
// Complexity: O(len(bopts)) to resolve options plus Σ cost of constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*lgraph.Graph, error) {
	g := lgraph.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// MustBuildGraph is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuildGraph(bopts []BuilderOption, cons ...Constructor) *lgraph.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
