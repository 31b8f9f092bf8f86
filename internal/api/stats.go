package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/metrics"
)

// StatsHandler serves the index statistics endpoint.
type StatsHandler struct {
	repo DocumentRepository
	log  *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given dependencies.
func NewStatsHandler(repo DocumentRepository, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{repo: repo, log: log}
}

// GetStats handles GET /api/v1/stats — returns index size counters.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("collecting stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	// Refresh Prometheus gauges while we have fresh counts.
	metrics.DocumentCount.Set(float64(stats.Documents))
	metrics.DependencyCount.Set(float64(stats.Dependencies))

	c.JSON(http.StatusOK, stats)
}
