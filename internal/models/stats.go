package models

// StatsResult summarizes the size of the index.
type StatsResult struct {
	Documents    int `json:"documents"`
	Dependencies int `json:"dependencies"`
}
