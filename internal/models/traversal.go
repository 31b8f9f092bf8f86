package models

// Direction selects which way import edges are followed during traversal.
type Direction string

// Traversal directions. Forward follows from_file→to_file (what a file
// imports); Reverse follows to_file→from_file (what imports a file); Both is
// accepted only by the neighborhood composer, which runs one traversal per
// concrete direction.
const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
	DirectionBoth    Direction = "both"
)

// Valid reports whether d is a concrete traversal direction.
func (d Direction) Valid() bool {
	return d == DirectionForward || d == DirectionReverse
}

// TraversalResult is one file discovered by a traversal. Depth is the minimum
// number of edge hops from the origin across all explored paths; Direction is
// fixed per traversal call.
type TraversalResult struct {
	File      string    `json:"file"`
	Depth     int       `json:"depth"`
	Direction Direction `json:"direction"`
}

// BoundaryResult holds the entry points or leaf nodes of the dependency graph,
// sorted lexicographically.
type BoundaryResult struct {
	Files []string `json:"files"`
}

// AdjacencyResult is the full forward adjacency view of the edge relation.
// Parallel edges are preserved: a target appears once per edge row.
type AdjacencyResult struct {
	Adjacency map[string][]string `json:"adjacency"`
}
