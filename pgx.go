package sqlconnect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxConn serves the native pgx backend. It shares the postgres dialect SQL
// with sqlConn but talks to the pool directly.
type pgxConn struct {
	pool *pgxpool.Pool
	dsn  string
}

func openPGXConn(ctx context.Context, dsn string) (*pgxConn, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		errLogger.Printf("ping pgx: %v", err)
		return nil, err
	}
	return &pgxConn{pool: pool, dsn: dsn}, nil
}

func (conn *pgxConn) Ping(ctx context.Context) error {
	return conn.pool.Ping(ctx)
}

func (conn *pgxConn) Close() error {
	conn.pool.Close()
	return nil
}

func (conn *pgxConn) DSN() string {
	return conn.dsn
}

func (conn *pgxConn) DefaultSchema() string {
	return postgresDialect.defaultSchema
}

func (conn *pgxConn) SchemaNames(ctx context.Context) ([]string, error) {
	return conn.queryNames(ctx, postgresDialect.schemaNames)
}

func (conn *pgxConn) TableNames(ctx context.Context, schema string) ([]string, error) {
	return conn.queryNames(ctx, postgresDialect.tableNames, schema)
}

func (conn *pgxConn) ViewNames(ctx context.Context, schema string) ([]string, error) {
	return conn.queryNames(ctx, postgresDialect.viewNames, schema)
}

func (conn *pgxConn) Columns(ctx context.Context, schema, name string) ([]Column, error) {
	rows, err := conn.pool.Query(ctx, postgresDialect.columns, schema, name)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var (
			col      Column
			nullable string
			primary  int
		)
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default, &col.OrdinalPos, &primary); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		col.IsNullable = nullable == "YES"
		col.IsPrimary = primary != 0
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func (conn *pgxConn) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := conn.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
