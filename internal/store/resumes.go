package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/jonathan/jobfit/internal/resume"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Resumes stores the resume builder document. Records are migrated to the
// current shape on every load.
type Resumes struct {
	kv  KV
	log *zap.Logger
}

// Load returns the stored document in its current shape. An absent or
// undecodable record yields the default document.
func (r *Resumes) Load(ctx context.Context) (types.ResumeDocument, error) {
	raw, err := r.kv.Get(ctx, KeyResume)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.DefaultResumeDocument(), nil
		}
		return types.ResumeDocument{}, fmt.Errorf("failed to load resume: %w", err)
	}

	doc, err := resume.Migrate(raw)
	if err != nil {
		r.log.Warn("corrupt record, using default", zap.String("key", KeyResume), zap.Error(err))
		return types.DefaultResumeDocument(), nil
	}
	return doc, nil
}

// Save overwrites the stored document.
func (r *Resumes) Save(ctx context.Context, doc types.ResumeDocument) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid resume: %w", err)
	}
	return putJSON(ctx, r.kv, KeyResume, schemas.ResumeDocument, doc)
}

// MigrateInPlace rewrites a stored legacy record in the current shape. It
// reports whether the stored record changed. Absent records are left alone
// and undecodable ones are reported as errors rather than replaced.
func (r *Resumes) MigrateInPlace(ctx context.Context) (bool, error) {
	raw, err := r.kv.Get(ctx, KeyResume)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load resume: %w", err)
	}

	doc, err := resume.Migrate(raw)
	if err != nil {
		return false, &CorruptRecordError{Key: KeyResume, Cause: err}
	}

	canonical, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to marshal resume: %w", err)
	}
	if sameJSON(raw, canonical) {
		return false, nil
	}

	if err := putJSON(ctx, r.kv, KeyResume, schemas.ResumeDocument, doc); err != nil {
		return false, err
	}
	r.log.Info("resume migrated", zap.String("key", KeyResume))
	return true, nil
}

func sameJSON(a, b []byte) bool {
	var x, y any
	if json.Unmarshal(a, &x) != nil || json.Unmarshal(b, &y) != nil {
		return false
	}
	return reflect.DeepEqual(x, y)
}
