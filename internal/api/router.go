package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/dbpool"
	"github.com/docgraphhq/docgraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Graph       GraphRepository
	Documents   DocumentRepository
	Ingest      IngestRepository
	CORSOrigins []string
	Version     string
	DocsRoot    string
	RatePerSec  int
	RateBurst   int
}

// maxBodySize limits request bodies; the API only accepts small JSON payloads.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, deps.RatePerSec, deps.RateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint lives outside the versioned API group.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, log, deps.Version)
	graph := NewGraphHandler(deps.Graph, log)
	documents := NewDocumentHandler(deps.Documents, log)
	ingest := NewIngestHandler(deps.Ingest, log, deps.DocsRoot)
	stats := NewStatsHandler(deps.Documents, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Graph queries. File paths contain slashes, so the file travels as a
	// query parameter rather than a path segment.
	api.GET("/graph/forward", graph.Forward)
	api.GET("/graph/reverse", graph.Reverse)
	api.GET("/graph/related", graph.Related)
	api.GET("/graph/adjacency", graph.Adjacency)
	api.GET("/graph/entrypoints", graph.EntryPoints)
	api.GET("/graph/leaves", graph.LeafNodes)

	// Document catalog.
	api.GET("/documents", documents.List)
	api.GET("/documents/show", documents.Show)
	api.DELETE("/documents", documents.Delete)
	api.GET("/dependencies", documents.Dependencies)

	// Indexing.
	api.POST("/ingest", ingest.Scan)

	// Stats.
	api.GET("/stats", stats.GetStats)
}

// NewRouter creates and configures the gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
