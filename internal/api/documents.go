package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/models"
)

// DocumentHandler serves document catalog endpoints.
type DocumentHandler struct {
	repo DocumentRepository
	log  *logrus.Logger
}

// NewDocumentHandler creates a DocumentHandler with the given repository and logger.
func NewDocumentHandler(repo DocumentRepository, log *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{repo: repo, log: log}
}

// listResponse wraps a paginated collection.
type listResponse[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"has_more"`
}

// List handles GET /api/v1/documents?limit=&offset=.
func (h *DocumentHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.Query("offset"))

	docs, hasMore, err := h.repo.ListDocuments(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing documents")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, listResponse[models.Document]{Items: docs, HasMore: hasMore})
}

// Show handles GET /api/v1/documents/show?file=.
func (h *DocumentHandler) Show(c *gin.Context) {
	file, ok := requireFile(c)
	if !ok {
		return
	}

	doc, err := h.repo.GetDocument(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("getting document")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/v1/documents?file=. The document's edges go with it.
func (h *DocumentHandler) Delete(c *gin.Context) {
	file, ok := requireFile(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteDocument(c.Request.Context(), file); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("deleting document")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}

// Dependencies handles GET /api/v1/dependencies?from=&to=&limit=&offset= —
// the raw edge relation with optional endpoint filters.
func (h *DocumentHandler) Dependencies(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.Query("offset"))

	deps, hasMore, err := h.repo.ListDependencies(c.Request.Context(),
		c.Query("from"), c.Query("to"), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing dependencies")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, listResponse[models.Dependency]{Items: deps, HasMore: hasMore})
}
