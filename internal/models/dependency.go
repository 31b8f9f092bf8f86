package models

import "time"

// Dependency is a directed import-style edge between two files.
// The ImportType tag records how the reference was expressed; traversal
// reachability never consults it.
type Dependency struct {
	FromFile   string    `json:"from_file"`
	ToFile     string    `json:"to_file"`
	ImportType string    `json:"import_type"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// DependencyInput is a dependency row as produced by ingestion, before the
// store assigns timestamps.
type DependencyInput struct {
	ToFile     string `json:"to_file"`
	ImportType string `json:"import_type"`
}

// Validate checks that required fields are present.
func (d *DependencyInput) Validate() error {
	if d.ToFile == "" {
		return ErrMissingTarget
	}

	if len(d.ToFile) > 1024 {
		return ErrFieldTooLong("to_file", 1024)
	}

	return nil
}
