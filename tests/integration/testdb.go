// Package integration runs the service against a real PostgreSQL started with
// testcontainers. The suites are skipped with -short.
package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pizzeria/backend/internal/infrastructure/config"
	"github.com/pizzeria/backend/internal/infrastructure/migration"
	"github.com/pizzeria/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var (
	sharedContainer    *tcpostgres.PostgresContainer
	sharedContainerCfg *config.DatabaseConfig
	sharedContainerMu  sync.Mutex
)

// TestDB is a migrated PostgreSQL database
type TestDB struct {
	*persistence.Database
	Config *config.DatabaseConfig
	t      *testing.T
}

// NewTestDB starts a dedicated PostgreSQL container, applies the migrations and
// terminates the container when the test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	skipIfShort(t)

	container, cfg := startPostgres(t, "pizzeria_test")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	migrateUp(t, cfg)
	return connect(t, cfg)
}

// NewSharedTestDB returns a connection to a container shared by the package.
// Tables are truncated before the test runs.
func NewSharedTestDB(t *testing.T) *TestDB {
	t.Helper()
	skipIfShort(t)

	sharedContainerMu.Lock()
	if sharedContainer == nil {
		sharedContainer, sharedContainerCfg = startPostgres(t, "pizzeria_shared_test")
		migrateUp(t, sharedContainerCfg)
	}
	cfg := *sharedContainerCfg
	sharedContainerMu.Unlock()

	tdb := connect(t, &cfg)
	tdb.CleanTables()
	return tdb
}

// CleanTables empties every table and resets the id sequences
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	err := tdb.DB.Exec("TRUNCATE TABLE orders, pizzas, customers RESTART IDENTITY CASCADE").Error
	require.NoError(tdb.t, err, "Failed to truncate tables")
}

func skipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
}

func startPostgres(t *testing.T, dbName string) (*tcpostgres.PostgresContainer, *config.DatabaseConfig) {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return container, &config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "postgres",
		DBName:          dbName,
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 1,
	}
}

func migrateUp(t *testing.T, cfg *config.DatabaseConfig) {
	t.Helper()

	m, err := migration.Open(cfg, zap.NewNop())
	require.NoError(t, err, "Failed to open migrator")
	defer func() { _ = m.Close() }()

	require.NoError(t, m.Up(), "Failed to run migrations")
}

func connect(t *testing.T, cfg *config.DatabaseConfig) *TestDB {
	t.Helper()

	db, err := persistence.NewDatabase(cfg, nil)
	require.NoError(t, err, fmt.Sprintf("Failed to connect to %s", cfg.DBName))
	t.Cleanup(func() { _ = db.Close() })

	return &TestDB{Database: db, Config: cfg, t: t}
}
