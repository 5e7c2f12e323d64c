// Package analogy finds structure mappings between labeled graphs.
//
// Two graphs describe two situations as facts: a vertex carries labels
// ("sun" is "massive") and a directed edge carries labels ("planet" orbits
// "sun"). A mapping pairs vertices of the source graph with vertices of the
// target graph; it is scored by how many facts it carries across in both
// directions, minus a penalty for every vertex paired more than once.
//
// Packages:
//
//	lgraph/      — labeled multigraph: vertices, vertex labels, labeled edges
//	mapping/     — Couple, Mapping, the scoring engine and fact-level reports
//	maxima/      — all-maximal selection used to break ties
//	search/      — candidate generation, greedy and exhaustive search
//	builder/     — deterministic and random fixture graphs
//	loader/      — YAML/TOML documents holding two graphs and a mapping
//	converterts/ — adapters to gonum/graph and structural summaries
//	config/      — CLI configuration from TOML, .env and the environment
//	cmd/analogy/ — the command-line tool
//
// Quick example:
//
//	solar := lgraph.NewGraph()
//	_ = solar.AddVertex("sun", "massive", "hot")
//	_ = solar.AddVertex("planet", "small")
//	_ = solar.AddEdge("planet", "sun", "orbits", "attracted-by")
//
//	atom := lgraph.NewGraph()
//	_ = atom.AddVertex("nucleus", "massive")
//	_ = atom.AddVertex("electron", "small")
//	_ = atom.AddEdge("electron", "nucleus", "orbits", "attracted-by")
//
//	res, _ := search.Solve(ctx, solar, atom)
//	fmt.Println(res.Mapping.Render())  // planet -> electron, sun -> nucleus
//	fmt.Printf("%.2f%%\n", res.Similarity*100) // 88.89%
//
// Search is deterministic for a fixed seed, including restarts run in
// parallel.
package analogy
