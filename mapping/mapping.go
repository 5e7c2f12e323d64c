// SPDX-License-Identifier: MIT
//
// File: mapping.go
// Role: Mapping mutation (Add only), symmetric lookup, split counting, rendering.
//
// Determinism:
//   - Couples() and Targets() return sorted slices; Render orders by A then B.

package mapping

import (
	"cmp"
	"slices"
	"strings"
)

// Add inserts c and reports whether it was new.
//
// Implementation:
//   - Stage 1: Skip if c is already present (set semantics).
//   - Stage 2: Link c.A ↔ c.B in the bidirectional index.
//   - Stage 3: Bump the occurrence count of both identifiers; a count
//     reaching 2 creates a new split.
//
// A Couple whose two sides carry the same identifier counts that identifier
// twice, exactly as two positions holding it.
//
// Complexity: O(1) amortized.
func (m *Mapping) Add(c Couple) bool {
	if _, ok := m.couples[c]; ok {
		return false
	}
	m.couples[c] = struct{}{}

	m.link(c.A, c.B)
	m.link(c.B, c.A)

	m.occur(c.A)
	m.occur(c.B)

	return true
}

func (m *Mapping) link(from, to string) {
	set, ok := m.index[from]
	if !ok {
		set = make(map[string]struct{}, 1)
		m.index[from] = set
	}
	set[to] = struct{}{}
}

func (m *Mapping) occur(v string) {
	m.occurrences[v]++
	if m.occurrences[v] == 2 {
		m.splits++
	}
}

// Contains reports whether c is in the mapping.
func (m *Mapping) Contains(c Couple) bool {
	if m == nil {
		return false
	}
	_, ok := m.couples[c]

	return ok
}

// Len returns the number of couples.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.couples)
}

// Targets returns the vertices paired with v in either position of any
// couple, sorted. Unknown v yields nil.
// Complexity: O(k log k) for k targets.
func (m *Mapping) Targets(v string) []string {
	set := m.targets(v)
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	slices.Sort(out)

	return out
}

// targets is the allocation-free view used by scoring.
func (m *Mapping) targets(v string) map[string]struct{} {
	if m == nil {
		return nil
	}

	return m.index[v]
}

// SplitCount returns how many distinct identifiers, pooled across both
// positions, occur in two or more couples.
// Complexity: O(1).
func (m *Mapping) SplitCount() int {
	if m == nil {
		return 0
	}

	return m.splits
}

// SplitVertices returns the identifiers counted by SplitCount, sorted.
func (m *Mapping) SplitVertices() []string {
	if m == nil {
		return nil
	}
	var out []string
	for v, n := range m.occurrences {
		if n >= 2 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// Couples returns all couples sorted by (A, B).
func (m *Mapping) Couples() []Couple {
	if m == nil {
		return nil
	}
	out := make([]Couple, 0, len(m.couples))
	for c := range m.couples {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCouples)

	return out
}

// Clone returns an independent copy; later Adds on either side do not leak.
// Complexity: O(|m|).
func (m *Mapping) Clone() *Mapping {
	if m == nil {
		return New()
	}
	out := &Mapping{
		couples:     make(map[Couple]struct{}, len(m.couples)),
		index:       make(map[string]map[string]struct{}, len(m.index)),
		occurrences: make(map[string]int, len(m.occurrences)),
		splits:      m.splits,
	}
	for c := range m.couples {
		out.couples[c] = struct{}{}
	}
	for v, set := range m.index {
		cp := make(map[string]struct{}, len(set))
		for t := range set {
			cp[t] = struct{}{}
		}
		out.index[v] = cp
	}
	for v, n := range m.occurrences {
		out.occurrences[v] = n
	}

	return out
}

// With returns a copy of m extended by c; m itself is left untouched.
func (m *Mapping) With(c Couple) *Mapping {
	out := m.Clone()
	out.Add(c)

	return out
}

// Render returns one "A -> B" line per couple, ordered by A ascending (then
// B), without a trailing newline. The empty mapping renders as "".
func (m *Mapping) Render() string {
	couples := m.Couples()
	var sb strings.Builder
	for i, c := range couples {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

// String implements fmt.Stringer via Render.
func (m *Mapping) String() string {
	return m.Render()
}

func compareCouples(a, b Couple) int {
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}
	return cmp.Compare(a.B, b.B)
}
