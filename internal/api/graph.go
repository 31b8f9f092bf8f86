package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/models"
)

// defaultTraversalDepth is used when the depth query parameter is absent.
const defaultTraversalDepth = 3

// GraphHandler serves dependency-graph query endpoints.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given repository and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// traversalResponse is the JSON payload for traversal endpoints.
type traversalResponse struct {
	File    string                   `json:"file"`
	Depth   int                      `json:"max_depth"`
	Results []models.TraversalResult `json:"results"`
}

// Forward handles GET /api/v1/graph/forward?file=&depth= — transitive imports.
func (h *GraphHandler) Forward(c *gin.Context) {
	h.traverse(c, models.DirectionForward)
}

// Reverse handles GET /api/v1/graph/reverse?file=&depth= — transitive importers.
func (h *GraphHandler) Reverse(c *gin.Context) {
	h.traverse(c, models.DirectionReverse)
}

func (h *GraphHandler) traverse(c *gin.Context, direction models.Direction) {
	file, ok := requireFile(c)
	if !ok {
		return
	}

	depth, err := parseDepth(c.Query("depth"), defaultTraversalDepth)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var results []models.TraversalResult
	if direction == models.DirectionForward {
		results, err = h.repo.ForwardDeps(c.Request.Context(), file, depth)
	} else {
		results, err = h.repo.ReverseDeps(c.Request.Context(), file, depth)
	}

	if err != nil {
		h.log.WithError(err).Error("traversing graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, traversalResponse{File: file, Depth: depth, Results: results})
}

// Related handles GET /api/v1/graph/related?file=&direction=&depth=.
// Direction defaults to both.
func (h *GraphHandler) Related(c *gin.Context) {
	file, ok := requireFile(c)
	if !ok {
		return
	}

	depth, err := parseDepth(c.Query("depth"), defaultTraversalDepth)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	direction := models.Direction(c.Query("direction"))

	results, err := h.repo.Related(c.Request.Context(), file, direction, depth)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDirection) {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest,
				"direction must be forward, reverse, or both")

			return
		}

		h.log.WithError(err).Error("finding related files")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, traversalResponse{File: file, Depth: depth, Results: results})
}

// Adjacency handles GET /api/v1/graph/adjacency — the full forward adjacency map.
func (h *GraphHandler) Adjacency(c *gin.Context) {
	adjacency, err := h.repo.Adjacency(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("materializing adjacency")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, models.AdjacencyResult{Adjacency: adjacency})
}

// EntryPoints handles GET /api/v1/graph/entrypoints.
func (h *GraphHandler) EntryPoints(c *gin.Context) {
	files, err := h.repo.EntryPoints(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("finding entry points")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, models.BoundaryResult{Files: files})
}

// LeafNodes handles GET /api/v1/graph/leaves.
func (h *GraphHandler) LeafNodes(c *gin.Context) {
	files, err := h.repo.LeafNodes(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("finding leaf nodes")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, models.BoundaryResult{Files: files})
}
