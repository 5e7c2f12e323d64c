// Package converters provides two-way adapters between lgraph.Graph and
// gonum/graph, plus a structural summary computed with gonum's topology
// algorithms.
//
// Labels do not survive the trip to gonum: every labeled edge (o, d, l)
// collapses into one plain directed edge o → d, and vertex labels are
// dropped. Self-loops are skipped because simple.DirectedGraph rejects them;
// ToGonum reports how many it skipped.
package converters
