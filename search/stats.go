package search

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summarize computes mean, sample standard deviation and range of the
// restart similarities. The deviation of a single run is 0.
func summarize(restarts []RestartStat) Summary {
	if len(restarts) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(restarts))
	for i, r := range restarts {
		xs[i] = r.Similarity
	}

	s := Summary{
		Runs: len(xs),
		Mean: stat.Mean(xs, nil),
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}

	return s
}
