//go:build integration

// Package testsupport spins up throwaway Postgres instances for
// integration tests.
package testsupport

import (
	"context"
	"testing"
	"time"

	"daylog/internal/db"

	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// StartPostgres runs a disposable Postgres container, applies the schema
// and returns a connected handle. The container dies with the test.
func StartPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("daylog"),
		postgrescontainer.WithUsername("daylog"),
		postgrescontainer.WithPassword("daylog"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb := waitForDatabase(t, dsn)
	require.NoError(t, db.AutoMigrateAndIndexes(gdb))
	return gdb
}

func waitForDatabase(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		gdb, err := db.Connect(dsn, 5, 2)
		if err == nil {
			sqlDB, derr := gdb.DB()
			if derr == nil && sqlDB.Ping() == nil {
				return gdb
			}
			lastErr = derr
		} else {
			lastErr = err
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("database not ready: %v", lastErr)
	return nil
}
