package sqlconnect

import (
	"context"
	"errors"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
)

// reservedAttrNames are the wrapper's own non-reflected attributes; binding
// a reflected object under one of them would shadow connection state.
var reservedAttrNames = map[string]struct{}{
	"conn":    {},
	"config":  {},
	"backend": {},
}

// Database owns one connection and a named collection of reflected tables
// and views. The connection is fixed at construction; there is no reconnect.
// Listing and reflection always query the live database, nothing is cached.
type Database struct {
	backend Backend
	cfg     *ConnConfig
	conn    Conn
	attrs   *orderedmap.OrderedMap
}

// NewDatabase opens a connection for cfg on the selected backend and wraps it.
func NewDatabase(ctx context.Context, backend Backend, cfg *ConnConfig) (*Database, error) {
	conn, err := Open(ctx, backend, cfg)
	if err != nil {
		return nil, err
	}
	return &Database{
		backend: backend,
		cfg:     cfg,
		conn:    conn,
		attrs:   orderedmap.New(),
	}, nil
}

// Conn returns the underlying connection handle.
func (db *Database) Conn() Conn {
	return db.conn
}

// Backend returns the backend the wrapper was opened with.
func (db *Database) Backend() Backend {
	return db.backend
}

// Close releases the underlying connection. Reflected tables stay usable as
// plain metadata afterwards.
func (db *Database) Close() error {
	return db.conn.Close()
}

// SchemaNames lists user schemas on the connected database.
func (db *Database) SchemaNames(ctx context.Context) ([]string, error) {
	return db.conn.SchemaNames(ctx)
}

// TableNames lists base tables; an empty schema means all schemas.
func (db *Database) TableNames(ctx context.Context, schema string) ([]string, error) {
	return db.conn.TableNames(ctx, schema)
}

// ViewNames lists views; an empty schema means all schemas.
func (db *Database) ViewNames(ctx context.Context, schema string) ([]string, error) {
	return db.conn.ViewNames(ctx, schema)
}

type reflectRequest struct {
	schema   string
	attrName string
}

// ReflectOption adjusts a single ReflectTable/ReflectView call.
type ReflectOption func(*reflectRequest)

// WithSchema overrides the backend's default schema for the lookup.
func WithSchema(schema string) ReflectOption {
	return func(req *reflectRequest) {
		req.schema = schema
	}
}

// WithAttrName overrides the attribute name the reflected object is bound
// under. The default is the remote object's own name.
func WithAttrName(name string) ReflectOption {
	return func(req *reflectRequest) {
		req.attrName = name
	}
}

// ReflectTable reflects a table from the live database and binds it on the
// wrapper. Reflecting again under the same attribute name overwrites the
// previous binding; a failed reflection leaves the attribute set untouched.
func (db *Database) ReflectTable(ctx context.Context, table string, opts ...ReflectOption) (*Table, error) {
	return db.reflect(ctx, table, false, opts)
}

// ReflectView reflects a view from the live database and binds it on the
// wrapper, with the same naming rules as ReflectTable.
func (db *Database) ReflectView(ctx context.Context, view string, opts ...ReflectOption) (*Table, error) {
	return db.reflect(ctx, view, true, opts)
}

func (db *Database) reflect(ctx context.Context, name string, isView bool, opts []ReflectOption) (*Table, error) {
	req := reflectRequest{
		schema:   db.conn.DefaultSchema(),
		attrName: name,
	}
	for _, opt := range opts {
		opt(&req)
	}
	if req.attrName == "" {
		return nil, errors.New("attribute name is empty")
	}
	if _, ok := reservedAttrNames[req.attrName]; ok {
		return nil, fmt.Errorf("%w: %q", ErrReservedAttrName, req.attrName)
	}

	schemas, err := db.conn.SchemaNames(ctx)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(schemas, req.schema) {
		return nil, fmt.Errorf("%w: %s in %s.%s", ErrMissingSchema, req.schema, db.cfg.Server, db.cfg.Database)
	}

	var names []string
	if isView {
		names, err = db.conn.ViewNames(ctx, req.schema)
	} else {
		names, err = db.conn.TableNames(ctx, req.schema)
	}
	if err != nil {
		return nil, err
	}
	if !lo.Contains(names, name) {
		missing := ErrMissingTable
		if isView {
			missing = ErrMissingView
		}
		return nil, fmt.Errorf("%w: %s in %s.%s.%s", missing, name, db.cfg.Server, db.cfg.Database, req.schema)
	}

	columns, err := db.conn.Columns(ctx, req.schema, name)
	if err != nil {
		return nil, err
	}
	tbl := &Table{
		Name:    name,
		Schema:  req.schema,
		IsView:  isView,
		Columns: columns,
	}
	db.attrs.Set(req.attrName, tbl)
	debugLogger.Printf("reflected %s as %q", tbl, req.attrName)
	return tbl, nil
}

// Table returns the reflected table or view bound under attr.
func (db *Database) Table(attr string) (*Table, bool) {
	v, ok := db.attrs.Get(attr)
	if !ok {
		return nil, false
	}
	return v.(*Table), true
}

// AttrNames returns the bound attribute names in binding order.
func (db *Database) AttrNames() []string {
	return db.attrs.Keys()
}

func (db *Database) String() string {
	return fmt.Sprintf("connection for %s.%s, reflected: %v", db.cfg.Server, db.cfg.Database, db.attrs.Keys())
}
