//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegration_Redis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set, skipping integration test")
	}

	ctx := context.Background()
	r, err := OpenRedis(ctx, url, "jobfit-itest:")
	require.NoError(t, err)
	defer r.Close()

	keys, err := r.Keys(ctx, "")
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, r.Delete(ctx, k))
	}

	exerciseKV(t, r)
}

func TestIntegration_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	p, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	defer p.Close()

	for _, prefix := range []string{KeyPreferences, DigestKeyPrefix} {
		keys, err := p.Keys(ctx, prefix)
		require.NoError(t, err)
		for _, k := range keys {
			require.NoError(t, p.Delete(ctx, k))
		}
	}

	exerciseKV(t, p)
}
