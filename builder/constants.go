// Package builder defines shared constants used by graph builders, ensuring
// consistent minima and method tags across all topology constructors.
package builder

// Method tags prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Minimum node counts.
const (
	// MinCycleNodes: a ring needs three nodes without multi-edges.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinStarNodes: center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: ring of three plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated qubit.
	MinCompleteNodes = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinPartition: each side of K_{a,b} needs one node.
	MinPartition = 1
	// MinRandomSparseNodes: G(n,p) is defined for n ≥ 1.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
