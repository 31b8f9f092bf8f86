package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/middleware"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxPaginationLimit caps the maximum number of items per page.
const maxPaginationLimit = 1000

// maxPaginationOffset caps the maximum offset for paginated queries.
const maxPaginationOffset = 100000

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxPaginationLimit {
		return maxPaginationLimit
	}

	return v
}

func parseOffset(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}

	if v > maxPaginationOffset {
		return maxPaginationOffset
	}

	return v
}

// maxTraversalDepth caps the depth query parameter. The engine is safe at any
// depth, but deep traversals over large corpora are expensive; reject early.
const maxTraversalDepth = 25

// parseDepth validates the depth query parameter. Unlike pagination, an
// invalid depth is a client error, not a value to silently clamp.
func parseDepth(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("depth must be an integer")
	}

	if v < 1 {
		return 0, fmt.Errorf("depth must be >= 1")
	}

	if v > maxTraversalDepth {
		return 0, fmt.Errorf("depth must be <= %d", maxTraversalDepth)
	}

	return v, nil
}

// requireFile extracts the file query parameter, rejecting the request when
// it is missing or oversized. File paths carry slashes, so they travel as a
// query parameter rather than a path segment.
func requireFile(c *gin.Context) (string, bool) {
	file := c.Query("file")
	if file == "" {
		respondError(c, 400, ErrCodeInvalidRequest, "file query parameter is required")

		return "", false
	}

	if len(file) > 1024 {
		respondError(c, 400, ErrCodeInvalidRequest, "file exceeds maximum length of 1024")

		return "", false
	}

	return file, true
}
