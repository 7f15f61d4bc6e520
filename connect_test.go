package sqlconnect

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen__UnknownBackend(t *testing.T) {
	cfg := &ConnConfig{Server: "db01", Database: "sales"}
	_, err := Open(context.Background(), Backend("oracle"), cfg)
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen__ValidatesBeforeConstructor(t *testing.T) {
	called := false
	orig := ConnConstructor
	ConnConstructor = func(ctx context.Context, backend Backend, cfg *ConnConfig) (Conn, error) {
		called = true
		return &mockConn{}, nil
	}
	defer func() { ConnConstructor = orig }()

	cfg := &ConnConfig{Server: "db01", Database: "sales", User: "svc_report"}
	_, err := Open(context.Background(), BackendPostgres, cfg)
	require.ErrorIs(t, err, ErrPartialCredentials)
	require.False(t, called)
}

func TestOpen__MockConn(t *testing.T) {
	conn := &mockConn{
		PingFunc: func(ctx context.Context) error { return nil },
	}
	mockConns[t.Name()] = conn

	cfg := &ConnConfig{
		Server:   "db01",
		Database: "sales",
		Params:   url.Values{"mock": []string{t.Name()}},
	}
	got, err := Open(context.Background(), BackendPGX, cfg)
	require.NoError(t, err)
	require.Same(t, conn, got)
	require.NoError(t, got.Ping(context.Background()))
}

func TestNewDatabase__OpenFailure(t *testing.T) {
	cfg := &ConnConfig{Server: "db01", Database: "sales", Password: "hunter2"}
	_, err := NewDatabase(context.Background(), BackendSQLServer, cfg)
	require.ErrorIs(t, err, ErrPartialCredentials)
}
