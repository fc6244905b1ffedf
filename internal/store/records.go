package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/jobfit/internal/schemas"
	"go.uber.org/zap"
)

// CorruptRecordError reports a stored value that no longer decodes.
type CorruptRecordError struct {
	Key   string
	Cause error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record %s: %v", e.Key, e.Cause)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Cause
}

// getJSON decodes the value at key into out. It returns ErrNotFound for an
// absent key and a CorruptRecordError when the value does not decode.
func getJSON(ctx context.Context, kv KV, key string, out any) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &CorruptRecordError{Key: key, Cause: err}
	}
	return nil
}

// putJSON validates v against schema and stores it under key.
func putJSON(ctx context.Context, kv KV, key, schema string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := schemas.Validate(schema, data); err != nil {
		return err
	}
	if err := kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// fallback reports whether err can be answered with a default value.
// Corrupt records are logged before falling back.
func fallback(log *zap.Logger, key string, err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var corrupt *CorruptRecordError
	if errors.As(err, &corrupt) {
		log.Warn("corrupt record, using default", zap.String("key", key), zap.Error(corrupt.Cause))
		return true
	}
	return false
}

// Stores bundles the typed stores over one KV.
type Stores struct {
	KV          KV
	Preferences *Preferences
	Statuses    *Statuses
	SavedJobs   *SavedJobs
	Digests     *Digests
	Resumes     *Resumes
	Proofs      *Proofs
}

// New builds every typed store on kv. A nil logger discards output.
func New(kv KV, log *zap.Logger) *Stores {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("store")
	return &Stores{
		KV:          kv,
		Preferences: &Preferences{kv: kv, log: log},
		Statuses:    &Statuses{kv: kv, log: log},
		SavedJobs:   &SavedJobs{kv: kv, log: log},
		Digests:     &Digests{kv: kv},
		Resumes:     &Resumes{kv: kv, log: log},
		Proofs:      &Proofs{kv: kv, log: log},
	}
}

// Close closes the underlying KV.
func (s *Stores) Close() error {
	return s.KV.Close()
}
