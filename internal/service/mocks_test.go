package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/models"
)

// Hand-rolled func-field mocks: each test assigns only the methods it needs.

type mockDocumentStore struct {
	getFunc    func(ctx context.Context, filePath string) (*models.Document, error)
	listFunc   func(ctx context.Context, limit, offset int) ([]models.Document, bool, error)
	deleteFunc func(ctx context.Context, filePath string) error
	countFunc  func(ctx context.Context) (int, int, error)
	upsertFunc func(ctx context.Context, req models.UpsertDocumentRequest) (*models.Document, error)
}

func (m *mockDocumentStore) GetDocument(ctx context.Context, filePath string) (*models.Document, error) {
	return m.getFunc(ctx, filePath)
}

func (m *mockDocumentStore) ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error) {
	return m.listFunc(ctx, limit, offset)
}

func (m *mockDocumentStore) DeleteDocument(ctx context.Context, filePath string) error {
	return m.deleteFunc(ctx, filePath)
}

func (m *mockDocumentStore) CountIndex(ctx context.Context) (int, int, error) {
	return m.countFunc(ctx)
}

func (m *mockDocumentStore) UpsertDocument(ctx context.Context, req models.UpsertDocumentRequest) (*models.Document, error) {
	return m.upsertFunc(ctx, req)
}

type mockDependencyStore struct {
	listFunc    func(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error)
	replaceFunc func(ctx context.Context, fromFile string, deps []models.DependencyInput) error
}

func (m *mockDependencyStore) ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error) {
	return m.listFunc(ctx, fromFile, toFile, limit, offset)
}

func (m *mockDependencyStore) ReplaceForFile(ctx context.Context, fromFile string, deps []models.DependencyInput) error {
	return m.replaceFunc(ctx, fromFile, deps)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return log
}
