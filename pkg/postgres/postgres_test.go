package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/postgres"
	"github.com/Nik0lakt/cafeteria-project/pkg/testdb"
)

func TestConnect_AfterMigrations(t *testing.T) {
	dsn := testdb.PostgresDSN(t)

	require.NoError(t, postgres.UpMigrations(dsn))
	// A second run is a no-op.
	require.NoError(t, postgres.UpMigrations(dsn))
	require.NoError(t, postgres.Migrate(context.Background(), dsn, "status"))

	pool, err := postgres.Connect(context.Background(), dsn, 2)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	var exists bool

	err = pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')`).Scan(&exists)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestConnect_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := postgres.Connect(context.Background(), "postgres://%zz", 1)
	require.Error(t, err)
}
