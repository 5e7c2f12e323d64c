// Package lgraph defines the labeled graph that structure mapping operates on.
//
// A Graph G = (V, LV, LE) is a set of vertex identifiers V together with two
// sets of atomic facts:
//
//   - LabeledVertex (v, label)         — a label attached to a vertex
//   - LabeledEdge   (o, d, label)      — a label attached to the directed pair o→d
//
// A vertex with several labels is simply several LabeledVertex facts sharing
// the same identifier; the same holds for parallel labels on one directed
// pair. Facts are stored as sets: inserting a fact twice is a no-op.
//
// Invariant:
//
//	Every vertex referenced by a LabeledVertex or as an edge endpoint is a
//	member of V. AddVertex registers the identifier before its labels, and
//	AddEdge registers missing endpoints before its labels.
//
// Lifecycle:
//
//	Graphs are built once (by hand, by package builder, or by package loader)
//	and then only read. All query methods return sorted copies so callers
//	observe a deterministic enumeration order.
//
// Core Methods:
//
//	AddVertex(id string, labels ...string) error              // O(|labels|)
//	AddEdge(origin, destination string, labels ...string) error // O(|labels|)
//	Vertices() []string                                         // O(V log V)
//	LabeledVertices() []LabeledVertex                           // O(LV log LV)
//	LabeledEdges() []LabeledEdge                                // O(LE log LE)
//	HasLabel(v, label string) bool                              // O(1)
//	HasEdge(origin, destination, label string) bool             // O(1)
//	OutEdges(v) / InEdges(v) []LabeledEdge                      // O(d log d)
//	FactCount() int                                             // O(1)
//
// Concurrency:
//
//	A single sync.RWMutex guards all storage. Writers take the write lock,
//	queries take the read lock, so one built graph may be scored from several
//	goroutines at once.
//
// Errors:
//
//	ErrEmptyVertexID - a vertex identifier is the empty string.
//	ErrEmptyLabel    - a label is the empty string.
package lgraph
