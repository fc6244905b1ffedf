package store

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Backends lists every supported backend name.
var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis}

type openOptions struct {
	keyPrefix string
}

// Option configures Open.
type Option func(*openOptions)

// WithKeyPrefix sets the key namespace used by the redis backend.
func WithKeyPrefix(prefix string) Option {
	return func(o *openOptions) { o.keyPrefix = prefix }
}

// Open returns the KV for backend. dsn is a file path for file and sqlite,
// a connection URL for postgres and redis, and ignored for memory.
func Open(ctx context.Context, backend, dsn string, opts ...Option) (KV, error) {
	o := openOptions{keyPrefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return NewFile(dsn)
	case BackendSQLite:
		return OpenSQLite(ctx, dsn)
	case BackendPostgres:
		return OpenPostgres(ctx, dsn)
	case BackendRedis:
		return OpenRedis(ctx, dsn, o.keyPrefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want one of %s)", backend, strings.Join(Backends, ", "))
	}
}
