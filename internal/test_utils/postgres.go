package test_utils

import (
	"context"
	"sync"
	"testing"

	"github.com/daywheel/daywheel/internal/config"
	"github.com/daywheel/daywheel/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const snapshotName = "daywheel-test-snapshot"

var (
	containerOnce sync.Once
	container     *postgres.PostgresContainer
	containerCfg  config.Database
	containerErr  error
)

// SetupTestDB returns a connection pool to a migrated Postgres database with
// empty tables. One container is started per test binary; every call restores
// the post-migration snapshot, so tests must not rely on data surviving
// between them.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	containerOnce.Do(startContainer)
	if containerErr != nil {
		t.Fatalf("failed to prepare postgres container: %v", containerErr)
	}

	if err := container.Restore(ctx, postgres.WithSnapshotName(snapshotName)); err != nil {
		t.Fatalf("failed to restore database snapshot: %v", err)
	}

	pool, err := database.Open(containerCfg)
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// startContainer is invoked lazily so packages without repository tests never
// pay for docker.
func startContainer() {
	ctx := context.Background()

	dbName := "daywheel"
	dbUser := "test_daywheel"
	dbPassword := "test_daywheel"

	pgContainer, err := postgres.Run(
		ctx, "postgres:18.1-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		containerErr = err
		return
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		containerErr = err
		return
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		containerErr = err
		return
	}
	log.Infof("Postgres container started at %s:%d", host, port.Int())

	cfg := config.Database{
		Host:   host,
		Port:   port.Int(),
		User:   dbUser,
		Pass:   dbPassword,
		Name:   dbName,
		Schema: "public",
	}

	if err := database.Migrate(cfg); err != nil {
		containerErr = err
		return
	}

	if err := pgContainer.Snapshot(ctx, postgres.WithSnapshotName(snapshotName)); err != nil {
		containerErr = err
		return
	}

	container = pgContainer
	containerCfg = cfg
}
