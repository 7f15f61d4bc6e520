package sqlconnect

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Backend selects which access library handles the physical connection.
type Backend string

const (
	// BackendPGX connects with the native pgx pool.
	BackendPGX Backend = "pgx"
	// BackendPostgres connects through database/sql using the pgx stdlib adapter.
	BackendPostgres Backend = "postgres"
	// BackendSQLServer connects through database/sql using go-mssqldb.
	BackendSQLServer Backend = "sqlserver"
)

// ConnConfig describes one connection target. User and Password must be
// given together; when both are empty the DSN carries no userinfo and the
// driver falls back to integrated authentication.
type ConnConfig struct {
	Server   string
	Database string
	User     string
	Password string
	Params   url.Values
}

func (cfg *ConnConfig) validate() error {
	if cfg.Server == "" {
		return errors.New("server is empty")
	}
	if cfg.Database == "" {
		return errors.New("database is empty")
	}
	if (cfg.User == "") != (cfg.Password == "") {
		return ErrPartialCredentials
	}
	return nil
}

// DSN builds the connection string for the given backend. No network access;
// validation failures surface before any connection attempt.
func (cfg *ConnConfig) DSN(backend Backend) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	params := url.Values{}
	for key, value := range cfg.Params {
		params[key] = append([]string{}, value...)
	}
	u := &url.URL{
		Host: cfg.Server,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	switch backend {
	case BackendPGX, BackendPostgres:
		u.Scheme = "postgres"
		u.Path = "/" + cfg.Database
	case BackendSQLServer:
		u.Scheme = "sqlserver"
		params.Set("database", cfg.Database)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// ParseDSN is the inverse of DSN for the given backend.
func ParseDSN(backend Backend, dsn string) (*ConnConfig, error) {
	if dsn == "" {
		return nil, ErrDSNEmpty
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	cfg := &ConnConfig{
		Server: u.Host,
	}
	params := u.Query()
	switch backend {
	case BackendPGX, BackendPostgres:
		if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			return nil, fmt.Errorf("dsn scheme %q is not postgres", u.Scheme)
		}
		cfg.Database = strings.TrimPrefix(u.Path, "/")
	case BackendSQLServer:
		if u.Scheme != "sqlserver" {
			return nil, fmt.Errorf("dsn scheme %q is not sqlserver", u.Scheme)
		}
		cfg.Database = params.Get("database")
		params.Del("database")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}
	if cfg.Server == "" {
		return nil, errors.New("dsn server is empty")
	}
	if cfg.Database == "" {
		return nil, errors.New("dsn database is empty")
	}
	if u.User != nil {
		cfg.User = u.User.Username()
		pwd, ok := u.User.Password()
		if !ok || cfg.User == "" {
			return nil, ErrPartialCredentials
		}
		cfg.Password = pwd
	}
	if len(params) > 0 {
		cfg.Params = params
	}
	return cfg, nil
}

// redactDSN hides the password for log output.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<unparseable dsn>"
	}
	return u.Redacted()
}
