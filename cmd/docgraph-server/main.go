// Command docgraph-server runs the dependency-graph index HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/api"
	"github.com/docgraphhq/docgraph/internal/config"
	"github.com/docgraphhq/docgraph/internal/db"
	"github.com/docgraphhq/docgraph/internal/db/migrations"
	"github.com/docgraphhq/docgraph/internal/dbpool"
	"github.com/docgraphhq/docgraph/internal/service"
	"github.com/docgraphhq/docgraph/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger) error {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	documents := store.NewDocumentStore(base)
	dependencies := store.NewDependencyStore(base)

	deps := &api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Graph:       service.NewGraphService(dependencies, log),
		Documents:   service.NewDocumentService(documents, dependencies, log),
		Ingest:      service.NewIngestService(documents, dependencies, cfg.IngestWorkers, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		DocsRoot:    cfg.DocsRoot,
		RatePerSec:  cfg.RatePerSec,
		RateBurst:   cfg.RateBurst,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("docgraph server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
