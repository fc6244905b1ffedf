package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		backend string
		dsn     string
		want    any
	}{
		{"", "", &Memory{}},
		{"memory", "", &Memory{}},
		{"FILE", filepath.Join(dir, "jobfit.json"), &File{}},
		{"sqlite", filepath.Join(dir, "jobfit.db"), &SQLite{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			kv, err := Open(ctx, tt.backend, tt.dsn)
			require.NoError(t, err)
			defer kv.Close()
			assert.IsType(t, tt.want, kv)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "mongo", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown store backend "mongo"`)
}

func TestOpen_BadRedisURL(t *testing.T) {
	_, err := Open(context.Background(), BackendRedis, "not-a-url", WithKeyPrefix("t:"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.ParseURL")
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `jobfit:digest_`, escapeGlob("jobfit:digest_"))
	assert.Equal(t, `a\*b\?c\[d\]`, escapeGlob("a*b?c[d]"))
}
