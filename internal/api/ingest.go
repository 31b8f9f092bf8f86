package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/metrics"
)

// IngestHandler serves the corpus indexing endpoint.
type IngestHandler struct {
	repo     IngestRepository
	log      *logrus.Logger
	docsRoot string
}

// NewIngestHandler creates an IngestHandler. docsRoot is the default corpus
// root when the request body omits one.
func NewIngestHandler(repo IngestRepository, log *logrus.Logger, docsRoot string) *IngestHandler {
	return &IngestHandler{repo: repo, log: log, docsRoot: docsRoot}
}

// ingestRequest is the JSON payload for POST /api/v1/ingest.
type ingestRequest struct {
	Root string `json:"root"`
}

// Scan handles POST /api/v1/ingest — walks the corpus root and refreshes the
// index. Scans are synchronous; the response carries the scan summary.
func (h *IngestHandler) Scan(c *gin.Context) {
	var req ingestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

			return
		}
	}

	root := req.Root
	if root == "" {
		root = h.docsRoot
	}

	result, err := h.repo.Scan(c.Request.Context(), root)
	if err != nil {
		h.log.WithError(err).WithField("root", root).Error("corpus scan failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "scan failed")

		return
	}

	metrics.IngestDuration.Observe(result.Duration.Seconds())

	c.JSON(http.StatusOK, result)
}
