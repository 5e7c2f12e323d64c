// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Couple, Mapping, sentinel errors and constructors.

package mapping

import "errors"

// Sentinel errors for scoring.
var (
	// ErrNilGraph indicates that a nil *lgraph.Graph was passed to a scoring function.
	ErrNilGraph = errors.New("mapping: graph is nil")

	// ErrNoLabeledFacts indicates that both graphs carry no labeled vertex or
	// edge facts, which leaves the similarity ratio undefined.
	ErrNoLabeledFacts = errors.New("mapping: graphs have no labeled facts")
)

// Couple is one hypothesized correspondence: vertex A of the source graph
// with vertex B of the target graph. It is a comparable value.
type Couple struct {
	A string
	B string
}

// String renders the couple as "A -> B".
func (c Couple) String() string {
	return c.A + " -> " + c.B
}

// Mapping is a set of Couples plus the indexes that make symmetric lookup
// and split counting O(1) per query.
//
//   - couples[c]      membership
//   - index[v]        vertices paired with v through any Couple, either position
//   - occurrences[v]  number of Couple positions holding v (both sides pooled)
//   - splits          number of v with occurrences[v] ≥ 2
//
// The zero value is not usable; call New.
type Mapping struct {
	couples     map[Couple]struct{}
	index       map[string]map[string]struct{}
	occurrences map[string]int
	splits      int
}

// New returns a Mapping holding the given couples (duplicates collapse).
// Complexity: O(len(couples)).
func New(couples ...Couple) *Mapping {
	m := &Mapping{
		couples:     make(map[Couple]struct{}, len(couples)),
		index:       make(map[string]map[string]struct{}),
		occurrences: make(map[string]int),
	}
	for _, c := range couples {
		m.Add(c)
	}

	return m
}
