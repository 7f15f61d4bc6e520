package sqlconnect

import "errors"

var (
	ErrDSNEmpty           = errors.New("dsn is empty")
	ErrUnknownBackend     = errors.New("unknown backend")
	ErrPartialCredentials = errors.New("user and password must be given together")
	ErrMissingSchema      = errors.New("schema not found")
	ErrMissingTable       = errors.New("table not found")
	ErrMissingView        = errors.New("view not found")
	ErrReservedAttrName   = errors.New("attribute name is reserved")
)
