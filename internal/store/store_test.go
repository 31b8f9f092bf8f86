package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/dbpool"
	"github.com/docgraphhq/docgraph/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{pool: pool, log: log}

	return sharedEnv
}

// setupTestBase creates a Base over a clean corpus namespace. Test files are
// prefixed per test so parallel packages do not collide, and removed after.
func setupTestBase(t *testing.T) (store.Base, string) {
	t.Helper()

	env := getTestEnv(t)
	prefix := fmt.Sprintf("t-%d/", time.Now().UnixNano())

	t.Cleanup(func() {
		ctx := context.Background()
		env.pool.Exec(ctx, "DELETE FROM dependencies WHERE from_file LIKE $1 OR to_file LIKE $1", prefix+"%") //nolint:errcheck // best-effort cleanup
		env.pool.Exec(ctx, "DELETE FROM documents WHERE file_path LIKE $1", prefix+"%")                       //nolint:errcheck // best-effort cleanup
	})

	return store.Base{Pool: env.pool, Log: env.log}, prefix
}
