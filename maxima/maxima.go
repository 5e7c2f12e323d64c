// Package maxima selects every element tied for the best key.
//
// The candidate generator ranks couples in two passes, each keeping all
// elements whose key equals the maximum. That selection does not depend on
// the element type, so it lives here as a generic free function.
package maxima

import "cmp"

// Maxima returns the sub-sequence of elems whose key equals the maximum key,
// preserving input order.
//
// Contracts:
//   - key is evaluated exactly once per element.
//   - An empty (or nil) elems yields nil.
//   - The result never aliases elems.
//
// Complexity: O(n) key evaluations, O(n) extra space.
func Maxima[E any, K cmp.Ordered](elems []E, key func(E) K) []E {
	if len(elems) == 0 {
		return nil
	}

	keys := make([]K, len(elems))
	var i int
	for i = range elems {
		keys[i] = key(elems[i])
	}

	best := keys[0]
	for i = 1; i < len(keys); i++ {
		if keys[i] > best {
			best = keys[i]
		}
	}

	out := make([]E, 0, len(elems))
	for i = range elems {
		if keys[i] == best {
			out = append(out, elems[i])
		}
	}

	return out
}
