// Package ingest builds the dependency index from a corpus of markdown files.
//
// The scanner walks a root directory, parses each markdown file (frontmatter,
// title, content hash, outgoing references), and hands results to a Sink.
// Parsing fans out across a bounded worker group; the Sink decouples the
// scanner from the database so it can be tested against an in-memory fake.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/docgraphhq/docgraph/internal/models"
)

const defaultWorkers = 4

// Sink receives parsed documents and their dependency edges.
type Sink interface {
	// ExistingHash returns the stored content hash for a file, or "" when the
	// file has not been indexed yet.
	ExistingHash(ctx context.Context, filePath string) (string, error)
	UpsertDocument(ctx context.Context, req models.UpsertDocumentRequest) error
	ReplaceDependencies(ctx context.Context, fromFile string, deps []models.DependencyInput) error
}

// Result summarizes one scan run.
type Result struct {
	Scanned  int           `json:"scanned"`
	Indexed  int           `json:"indexed"`
	Skipped  int           `json:"skipped"`
	Edges    int           `json:"edges"`
	Duration time.Duration `json:"duration"`
}

// Scanner indexes a corpus root into a Sink.
type Scanner struct {
	Root    string
	Workers int
	Log     *logrus.Logger
	Sink    Sink
}

// Run walks the corpus root and indexes every markdown file. Files whose
// content hash is unchanged since the last run are skipped without writes.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving corpus root: %w", err)
	}

	files, err := collectMarkdownFiles(root)
	if err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	var (
		mu     sync.Mutex
		result Result
	)

	result.Scanned = len(files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, rel := range files {
		g.Go(func() error {
			indexed, edges, err := s.indexFile(gctx, root, rel)
			if err != nil {
				return fmt.Errorf("indexing %s: %w", rel, err)
			}

			mu.Lock()
			if indexed {
				result.Indexed++
				result.Edges += edges
			} else {
				result.Skipped++
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)

	s.Log.WithFields(logrus.Fields{
		"root":     root,
		"scanned":  result.Scanned,
		"indexed":  result.Indexed,
		"skipped":  result.Skipped,
		"edges":    result.Edges,
		"duration": result.Duration,
	}).Info("corpus scan complete")

	return &result, nil
}

// indexFile parses one file and writes it through the sink. Returns whether
// the file was (re)indexed and how many edges were recorded.
func (s *Scanner) indexFile(ctx context.Context, root, rel string) (bool, int, error) {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return false, 0, err
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	existing, err := s.Sink.ExistingHash(ctx, rel)
	if err != nil {
		return false, 0, err
	}

	if existing == hash {
		s.Log.WithField("file", rel).Debug("content unchanged, skipping")

		return false, 0, nil
	}

	doc, deps, err := parseDocument(rel, content, hash)
	if err != nil {
		return false, 0, err
	}

	if err := s.Sink.UpsertDocument(ctx, doc); err != nil {
		return false, 0, err
	}

	if err := s.Sink.ReplaceDependencies(ctx, rel, deps); err != nil {
		return false, 0, err
	}

	return true, len(deps), nil
}

// parseDocument extracts the indexable fields and dependency references from
// one file's content. Inline links carry import type "link", frontmatter
// imports/requires lists carry "frontmatter".
func parseDocument(rel string, content []byte, hash string) (models.UpsertDocumentRequest, []models.DependencyInput, error) {
	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return models.UpsertDocumentRequest{}, nil, err
	}

	doc := models.UpsertDocumentRequest{
		FilePath:    rel,
		Title:       documentTitle(meta, body, rel),
		ContentHash: hash,
		Frontmatter: meta,
	}

	var deps []models.DependencyInput

	for _, target := range extractLinks(rel, body) {
		deps = append(deps, models.DependencyInput{ToFile: target, ImportType: "link"})
	}

	for _, key := range []string{"imports", "requires"} {
		for _, target := range stringList(meta, key) {
			if resolved, ok := resolveTarget(rel, target); ok {
				deps = append(deps, models.DependencyInput{ToFile: resolved, ImportType: "frontmatter"})
			}
		}
	}

	return doc, deps, nil
}

// collectMarkdownFiles returns root-relative slash paths of all markdown
// files under root, skipping hidden directories.
func collectMarkdownFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus root: %w", err)
	}

	return files, nil
}
