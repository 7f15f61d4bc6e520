// Package sqlconnect is a thin convenience layer over pgx and go-mssqldb:
// it builds backend-appropriate connection strings, opens connections
// through a selectable backend, and reflects remote tables and views into
// in-memory metadata representations for later query building. All SQL
// generation and execution stays with the underlying drivers.
package sqlconnect

import (
	"context"
	"fmt"
)

// ConnConstructor, when set, overrides how Open builds a Conn for a backend.
// It is consulted after DSN validation, so invalid configurations still fail
// locally. Intended for substituting mock connections in tests.
var ConnConstructor func(ctx context.Context, backend Backend, cfg *ConnConfig) (Conn, error)

// Open validates cfg, builds the backend DSN and opens a live connection
// with the selected access library. Driver errors propagate unchanged; no
// retry is performed.
func Open(ctx context.Context, backend Backend, cfg *ConnConfig) (Conn, error) {
	dsn, err := cfg.DSN(backend)
	if err != nil {
		return nil, err
	}
	if ConnConstructor != nil {
		return ConnConstructor(ctx, backend, cfg)
	}
	return openConn(ctx, backend, dsn)
}

func openConn(ctx context.Context, backend Backend, dsn string) (Conn, error) {
	debugLogger.Printf("open %s: %s", backend, redactDSN(dsn))
	switch backend {
	case BackendPGX:
		return openPGXConn(ctx, dsn)
	case BackendPostgres:
		return openSQLConn(ctx, postgresDialect, dsn)
	case BackendSQLServer:
		return openSQLConn(ctx, sqlserverDialect, dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
}
