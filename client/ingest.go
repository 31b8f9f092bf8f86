package client

import "context"

// IngestService handles corpus indexing operations.
type IngestService struct {
	c *Client
}

// scanRequest is the POST /api/v1/ingest payload.
type scanRequest struct {
	Root string `json:"root,omitempty"`
}

// Scan walks root on the server and refreshes the index. An empty root uses
// the server's configured corpus root.
func (s *IngestService) Scan(ctx context.Context, root string) (*IngestResult, error) {
	var resp IngestResult
	if err := s.c.post(ctx, "/api/v1/ingest", scanRequest{Root: root}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
