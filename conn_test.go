package sqlconnect

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Live tests run only when a reachable database is configured through the
// environment, the same way the rest of the suite stays mock-only.

func livePostgresConfig(t *testing.T) *ConnConfig {
	t.Helper()
	if os.Getenv("TEST_PG_SERVER") == "" {
		t.Log("TEST_PG_SERVER is empty")
		t.SkipNow()
	}
	return &ConnConfig{
		Server:   os.Getenv("TEST_PG_SERVER"),
		Database: os.Getenv("TEST_PG_DATABASE"),
		User:     os.Getenv("TEST_PG_USER"),
		Password: os.Getenv("TEST_PG_PASSWORD"),
	}
}

func TestLivePostgres__Introspect(t *testing.T) {
	cfg := livePostgresConfig(t)
	for _, backend := range []Backend{BackendPGX, BackendPostgres} {
		t.Run(string(backend), func(t *testing.T) {
			db, err := NewDatabase(context.Background(), backend, cfg)
			require.NoError(t, err)
			defer func() {
				require.NoError(t, db.Close())
			}()

			schemas, err := db.SchemaNames(context.Background())
			require.NoError(t, err)
			require.Contains(t, schemas, "public")

			tables, err := db.TableNames(context.Background(), "public")
			require.NoError(t, err)
			for _, table := range tables {
				tbl, err := db.ReflectTable(context.Background(), table)
				require.NoError(t, err)
				require.NotEmpty(t, tbl.Columns)
			}
		})
	}
}
