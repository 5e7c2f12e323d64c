// Package builder provides reusable "functional-options" style constructors
// for labeled graphs. It keeps fixtures for tests, examples and benchmarks
// deterministic and composable.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates an *lgraph.Graph and applies Constructors in order.
//     – Constructor:       a closure that mutates the graph using the resolved config.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the vertex-ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – OneBasedIDFn:      decimal strings starting at one ("1","2",…).
//     – LetterIDFn:        lowercase spreadsheet columns ("a","z","aa",…).
//     – ExcelColumnIDFn:   uppercase spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Constructors:
//     – Vertices:          labeled vertices over an index range.
//     – Chain:             consecutive indices joined by labeled edges.
//     – Anchor:            an index range pointing at one hub vertex.
//     – Edge:              a single labeled edge between two indices.
//     – BeamsOnWalls:      the beams/walls fixture used throughout the tests.
//     – RandomLabeled:     Erdős–Rényi-like labeled digraph.
//
// Guarantees:
//
//   - Idempotent construction: lgraph facts are sets, so re-running a
//     constructor on the same graph adds nothing.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, …)
//     wrapped with the constructor name.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
