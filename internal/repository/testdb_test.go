package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/blogful/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testPool is shared by every integration test in the package. It stays nil
// when neither TEST_DATABASE_URL nor TEST_INTEGRATION is set.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	ctx := context.Background()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" && os.Getenv("TEST_INTEGRATION") != "" {
		container, err := postgres.Run(ctx,
			"docker.io/postgres:17-alpine",
			postgres.WithDatabase("blogful_test"),
			postgres.WithUsername("blogful"),
			postgres.WithPassword("test-password"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
			return 1
		}
		defer func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				fmt.Fprintf(os.Stderr, "failed to terminate postgres container: %v\n", err)
			}
		}()

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read container dsn: %v\n", err)
			return 1
		}
	}

	if dsn != "" {
		logger := zerolog.Nop()
		if err := database.MigrateDSN(ctx, &logger, dsn); err != nil {
			fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
			return 1
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open test pool: %v\n", err)
			return 1
		}
		defer pool.Close()
		testPool = pool
	}

	return m.Run()
}

// setupTestDB returns the shared pool with both tables emptied and their
// identities restarted, so ids start from 1. Tables are emptied again when
// the test ends.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testPool == nil {
		t.Skip("skipping integration test: set TEST_DATABASE_URL or TEST_INTEGRATION")
	}

	truncate := func() error {
		_, err := testPool.Exec(context.Background(),
			"TRUNCATE blogful_articles, shopping_list RESTART IDENTITY")
		return err
	}

	require.NoError(t, truncate())
	t.Cleanup(func() {
		if err := truncate(); err != nil {
			t.Logf("failed to truncate test tables: %v", err)
		}
	})

	return testPool
}
