package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
)

// Digests stores one digest per date. Stored digests never expire.
type Digests struct {
	kv KV
}

// SaveDigest writes d under its date, replacing any digest for that date.
func (d *Digests) SaveDigest(ctx context.Context, digest types.Digest) error {
	if digest.Jobs == nil {
		digest.Jobs = []types.ScoredJob{}
	}
	return putJSON(ctx, d.kv, DigestKey(digest.Date), schemas.Digest, digest)
}

// Load returns the digest stored for date, or ErrNotFound.
func (d *Digests) Load(ctx context.Context, date string) (types.Digest, error) {
	var digest types.Digest
	if err := getJSON(ctx, d.kv, DigestKey(date), &digest); err != nil {
		return types.Digest{}, err
	}
	return digest, nil
}

// Dates lists the dates that have a stored digest, oldest first.
func (d *Digests) Dates(ctx context.Context) ([]string, error) {
	keys, err := d.kv.Keys(ctx, DigestKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list digests: %w", err)
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, DigestKeyPrefix))
	}
	return dates, nil
}
