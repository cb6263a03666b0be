//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/content"
	"github.com/wolfeidau/taskseed/internal/generate"
	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/store"
	"github.com/wolfeidau/taskseed/internal/validate"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) (*Store, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	st, err := New(ctx, &Config{
		Pool:        PoolConfig{ConnString: connString},
		AutoMigrate: true,
	})
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = container.Terminate(ctx)
	}

	return st, cleanup
}

func generateDataset(t *testing.T, seed uint64) *models.Dataset {
	t.Helper()

	cfg := config.Default()
	cfg.Seed = &seed
	cfg.Counts.Organizations = 1
	cfg.Counts.Teams = 2
	cfg.Counts.Users = 25
	cfg.Counts.Projects = 5
	cfg.Counts.Tasks = 150

	ds, err := generate.New(cfg, content.NewFallback(nil, time.Second)).Run(context.Background())
	require.NoError(t, err)

	return ds
}

func TestIntegration_PublishAndLoad(t *testing.T) {
	ctx := context.Background()
	st, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	t.Run("load before publish reports not seeded", func(t *testing.T) {
		_, err := st.Load(ctx)
		require.ErrorIs(t, err, store.ErrNotSeeded)
	})

	ds := generateDataset(t, 42)

	t.Run("publish", func(t *testing.T) {
		require.NoError(t, st.Publish(ctx, ds))
	})

	t.Run("load returns every row", func(t *testing.T) {
		loaded, err := st.Load(ctx)
		require.NoError(t, err)

		require.Equal(t, ds.Seed, loaded.Seed)
		require.True(t, loaded.WindowStart.Equal(ds.WindowStart))
		require.True(t, loaded.WindowEnd.Equal(ds.WindowEnd))
		require.Equal(t, ds.Counts(), loaded.Counts())
	})

	t.Run("loaded dataset passes validation", func(t *testing.T) {
		loaded, err := st.Load(ctx)
		require.NoError(t, err)

		report := validate.Check(ctx, loaded)
		require.Empty(t, report.Findings)
	})

	t.Run("republish replaces rather than appends", func(t *testing.T) {
		replacement := generateDataset(t, 99)
		require.NoError(t, st.Publish(ctx, replacement))

		loaded, err := st.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, replacement.Seed, loaded.Seed)
		require.Equal(t, replacement.Counts(), loaded.Counts())
	})
}

func TestIntegration_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	// Reconnecting with AutoMigrate against an already-migrated database
	// must not fail or reapply anything.
	connString := st.pool.Config().ConnString()
	again, err := New(ctx, &Config{
		Pool:        PoolConfig{ConnString: connString},
		AutoMigrate: true,
	})
	require.NoError(t, err)
	again.Close()
}
