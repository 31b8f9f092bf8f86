package api

import "github.com/docgraphhq/docgraph/internal/domain"

// Handler dependencies are the canonical domain interfaces. Aliases keep the
// handler signatures short and make the required surface explicit per handler.
type (
	// GraphRepository is the graph query surface the graph handler depends on.
	GraphRepository = domain.GraphService

	// DocumentRepository is the catalog surface the document handler depends on.
	DocumentRepository = domain.DocumentService

	// IngestRepository is the indexing surface the ingest handler depends on.
	IngestRepository = domain.IngestService
)
