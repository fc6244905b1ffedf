package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jonathan/jobfit/internal/schemas"
	"go.uber.org/zap"
)

// SavedJobs stores the ordered list of bookmarked job ids.
type SavedJobs struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

// List returns the saved ids in the order they were saved.
func (s *SavedJobs) List(ctx context.Context) ([]int, error) {
	ids := make([]int, 0)
	if err := getJSON(ctx, s.kv, KeySavedJobs, &ids); err != nil {
		if fallback(s.log, KeySavedJobs, err) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to load saved jobs: %w", err)
	}
	return ids, nil
}

// IsSaved reports whether jobID is saved.
func (s *SavedJobs) IsSaved(ctx context.Context, jobID int) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, jobID), nil
}

// Toggle saves jobID, or removes it when it is already saved. It reports
// whether the job is saved afterwards.
func (s *SavedJobs) Toggle(ctx context.Context, jobID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	saved := true
	if i := slices.Index(ids, jobID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
		saved = false
	} else {
		ids = append(ids, jobID)
	}

	if err := putJSON(ctx, s.kv, KeySavedJobs, schemas.SavedJobs, ids); err != nil {
		return false, err
	}
	return saved, nil
}
