package client

import "time"

// TraversalResult is one file discovered by a traversal.
type TraversalResult struct {
	File      string `json:"file"`
	Depth     int    `json:"depth"`
	Direction string `json:"direction"`
}

// TraversalResponse is the payload of the traversal endpoints.
type TraversalResponse struct {
	File    string            `json:"file"`
	Depth   int               `json:"max_depth"`
	Results []TraversalResult `json:"results"`
}

// BoundaryResult holds entry points or leaf nodes, sorted lexicographically.
type BoundaryResult struct {
	Files []string `json:"files"`
}

// AdjacencyResult is the full forward adjacency view of the edge relation.
type AdjacencyResult struct {
	Adjacency map[string][]string `json:"adjacency"`
}

// Document is an indexed file in the corpus.
type Document struct {
	FilePath    string         `json:"file_path"`
	Title       string         `json:"title"`
	ContentHash string         `json:"content_hash"`
	Frontmatter map[string]any `json:"frontmatter"`
	IndexedAt   time.Time      `json:"indexed_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Dependency is a directed import-style edge between two files.
type Dependency struct {
	FromFile   string    `json:"from_file"`
	ToFile     string    `json:"to_file"`
	ImportType string    `json:"import_type"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// DocumentList is a paginated collection of documents.
type DocumentList struct {
	Items   []Document `json:"items"`
	HasMore bool       `json:"has_more"`
}

// DependencyList is a paginated collection of edges.
type DependencyList struct {
	Items   []Dependency `json:"items"`
	HasMore bool         `json:"has_more"`
}

// IngestResult summarizes one corpus scan.
type IngestResult struct {
	Scanned  int           `json:"scanned"`
	Indexed  int           `json:"indexed"`
	Skipped  int           `json:"skipped"`
	Edges    int           `json:"edges"`
	Duration time.Duration `json:"duration"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadinessResponse is the readiness check payload.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatsResponse holds index size counters.
type StatsResponse struct {
	Documents    int `json:"documents"`
	Dependencies int `json:"dependencies"`
}
