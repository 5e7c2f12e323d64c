// Package builder defines shared constants used by the labeled-graph
// constructors.
package builder

//-----------------------------------------------------------------------------
// Method names, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph    = "BuildGraph"
	methodVertices      = "Vertices"
	methodChain         = "Chain"
	methodAnchor        = "Anchor"
	methodEdge          = "Edge"
	methodBeamsOnWalls  = "BeamsOnWalls"
	methodRandomLabeled = "RandomLabeled"
)

//-----------------------------------------------------------------------------
// Fixture vocabulary
//-----------------------------------------------------------------------------

const (
	// LabelBeam marks a beam vertex.
	LabelBeam = "beam"
	// LabelWall marks a wall vertex.
	LabelWall = "wall"
	// LabelOn marks a beam → wall edge.
	LabelOn = "on"
	// LabelNextTo marks a beam → next beam edge.
	LabelNextTo = "next-to"
)

//-----------------------------------------------------------------------------
// Minimum sizes and probability bounds
//-----------------------------------------------------------------------------

// MinChainNodes is the smallest chain that emits an edge.
const MinChainNodes = 2

// MinIndex is the smallest vertex index an IDFn accepts.
const MinIndex = 0

// MinVertices is the smallest accepted count for Vertices, Anchor and
// RandomLabeled.
const MinVertices = 1

// MinProbability is the inclusive lower bound for RandomLabeled's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomLabeled's p.
const MaxProbability = 1.0
