// Package search finds a Mapping between two labeled graphs that maximizes
// the structural similarity computed by package mapping.
//
// Two drivers are provided:
//
//	Greedy      grows one mapping couple by couple. At each step every unused
//	            (source, target) pair is evaluated; the candidates are those
//	            that maximize the score of the extended mapping and, among
//	            them, the number of potential new matching edges. One is picked
//	            uniformly at random. The run stops when no unused pair raises
//	            the score or opens a potential edge match, and returns the best
//	            mapping seen on the way.
//	Exhaustive  scores every subset of the pair cross product (sizes 0..n,
//	            lexicographic within a size) and returns the first maximum.
//
// Solve dispatches on Options.Algorithm and wraps the run in an OpenTelemetry
// span with duration, run, iteration and similarity metrics.
//
// Randomness:
//
//	The only random draw is the Greedy tie-break. The source is injected via
//	WithRand or derived from WithSeed (seed 0 means the default seed 1), so a
//	fixed seed reproduces the same best mapping. With WithRestarts(n) the
//	search runs n independent Greedy restarts on derived RNG streams, spread
//	over WithWorkers goroutines; the winner is the highest score with the
//	lowest restart index, so the result does not depend on scheduling.
//
// Complexity (V1, V2 vertex counts; P = V1·V2 pairs):
//
//	PotentialNewCouples   O(P · scoring)
//	Greedy                at most P iterations of PotentialNewCouples
//	Exhaustive            O(2^P · scoring); guarded by MaxExhaustivePairs
//
// Errors:
//
//	ErrNilGraph              a nil graph was passed.
//	ErrSearchSpaceTooLarge   Exhaustive over more than MaxExhaustivePairs pairs
//	                         without WithAllowLarge.
//	ErrUnsupportedAlgorithm  Solve received an unknown Algorithm.
//	ctx.Err()                the context was cancelled mid-run.
package search
