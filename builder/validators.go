// SPDX-License-Identifier: MIT
// Package: analogy/builder
//
// validators.go - parameter checks shared by the constructors.
//
// Each check returns a sentinel-wrapped error prefixed with the constructor
// name, so callers branch with errors.Is.

package builder

import "fmt"

// validateMin ensures got ≥ min for the parameter called name.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
