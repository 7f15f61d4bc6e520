package sqlconnect

import (
	"context"
	"errors"
)

type mockConn struct {
	PingFunc        func(ctx context.Context) error
	CloseFunc       func() error
	SchemaNamesFunc func(ctx context.Context) ([]string, error)
	TableNamesFunc  func(ctx context.Context, schema string) ([]string, error)
	ViewNamesFunc   func(ctx context.Context, schema string) ([]string, error)
	ColumnsFunc     func(ctx context.Context, schema, name string) ([]Column, error)
}

func (m *mockConn) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return errors.New("unexpected call Ping")
	}
	return m.PingFunc(ctx)
}

func (m *mockConn) Close() error {
	if m.CloseFunc == nil {
		return nil
	}
	return m.CloseFunc()
}

func (m *mockConn) DSN() string {
	return "mock://"
}

func (m *mockConn) DefaultSchema() string {
	return "dbo"
}

func (m *mockConn) SchemaNames(ctx context.Context) ([]string, error) {
	if m.SchemaNamesFunc == nil {
		return nil, errors.New("unexpected call SchemaNames")
	}
	return m.SchemaNamesFunc(ctx)
}

func (m *mockConn) TableNames(ctx context.Context, schema string) ([]string, error) {
	if m.TableNamesFunc == nil {
		return nil, errors.New("unexpected call TableNames")
	}
	return m.TableNamesFunc(ctx, schema)
}

func (m *mockConn) ViewNames(ctx context.Context, schema string) ([]string, error) {
	if m.ViewNamesFunc == nil {
		return nil, errors.New("unexpected call ViewNames")
	}
	return m.ViewNamesFunc(ctx, schema)
}

func (m *mockConn) Columns(ctx context.Context, schema, name string) ([]Column, error) {
	if m.ColumnsFunc == nil {
		return nil, errors.New("unexpected call Columns")
	}
	return m.ColumnsFunc(ctx, schema, name)
}
