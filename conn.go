package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
)

// Conn is the opaque handle returned by Open. It exposes the metadata
// operations the reflection wrapper delegates to; everything else stays with
// the backend library that produced it. A Conn is not safe for concurrent
// use at this layer.
type Conn interface {
	Ping(ctx context.Context) error
	Close() error

	// DSN returns the connection string the handle was opened with.
	DSN() string
	// DefaultSchema returns the backend's conventional default schema.
	DefaultSchema() string

	// SchemaNames lists user schemas on the connected database.
	SchemaNames(ctx context.Context) ([]string, error)
	// TableNames lists base tables; an empty schema means all schemas.
	TableNames(ctx context.Context, schema string) ([]string, error)
	// ViewNames lists views; an empty schema means all schemas.
	ViewNames(ctx context.Context, schema string) ([]string, error)
	// Columns returns column metadata for one table or view.
	Columns(ctx context.Context, schema, name string) ([]Column, error)
}

// sqlConn serves the database/sql backends (postgres, sqlserver).
type sqlConn struct {
	db  *sql.DB
	d   *dialect
	dsn string
}

func openSQLConn(ctx context.Context, d *dialect, dsn string) (*sqlConn, error) {
	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		errLogger.Printf("ping %s: %v", d.name, err)
		return nil, err
	}
	return &sqlConn{db: db, d: d, dsn: dsn}, nil
}

func (conn *sqlConn) Ping(ctx context.Context) error {
	return conn.db.PingContext(ctx)
}

func (conn *sqlConn) Close() error {
	return conn.db.Close()
}

func (conn *sqlConn) DSN() string {
	return conn.dsn
}

func (conn *sqlConn) DefaultSchema() string {
	return conn.d.defaultSchema
}

func (conn *sqlConn) SchemaNames(ctx context.Context) ([]string, error) {
	return conn.queryNames(ctx, conn.d.schemaNames)
}

func (conn *sqlConn) TableNames(ctx context.Context, schema string) ([]string, error) {
	return conn.queryNames(ctx, conn.d.tableNames, schema)
}

func (conn *sqlConn) ViewNames(ctx context.Context, schema string) ([]string, error) {
	return conn.queryNames(ctx, conn.d.viewNames, schema)
}

func (conn *sqlConn) Columns(ctx context.Context, schema, name string) ([]Column, error) {
	rows, err := conn.db.QueryContext(ctx, conn.d.columns, schema, name)
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

func (conn *sqlConn) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := conn.db.QueryContext(ctx, query, args...)
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
