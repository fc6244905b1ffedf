// Package store persists tracker and resume-builder state in a pluggable key-value backend.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when a key is absent.
var ErrNotFound = errors.New("record not found")

// KV is a minimal key-value store of JSON documents.
type KV interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists the keys that start with prefix, sorted ascending.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Storage keys
const (
	KeyPreferences   = "jobTrackerPreferences"
	KeyStatuses      = "jobTrackerStatus"
	KeyStatusHistory = "jobTrackerStatusHistory"
	KeySavedJobs     = "savedJobs"
	KeyResume        = "resumeBuilderData"
	KeyTestStatus    = "jobTrackerTestStatus"
	KeyProofLinks    = "jobTrackerProof"
	KeySubmission    = "rb_final_submission"

	// DigestKeyPrefix is followed by the digest date, YYYY-MM-DD.
	DigestKeyPrefix = "digest_"
)

// DigestKey returns the key a digest for date is stored under.
func DigestKey(date string) string {
	return DigestKeyPrefix + date
}
