package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Statuses stores per-job application statuses and the recent change feed.
type Statuses struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

// All returns the status of every job that has one. Jobs missing from the
// map are Not Applied.
func (s *Statuses) All(ctx context.Context) (map[int]types.Status, error) {
	statuses := make(map[int]types.Status)
	if err := getJSON(ctx, s.kv, KeyStatuses, &statuses); err != nil {
		if fallback(s.log, KeyStatuses, err) {
			return make(map[int]types.Status), nil
		}
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}
	return statuses, nil
}

// Get returns the status of one job.
func (s *Statuses) Get(ctx context.Context, jobID int) (types.Status, error) {
	statuses, err := s.All(ctx)
	if err != nil {
		return "", err
	}
	if st, ok := statuses[jobID]; ok {
		return st, nil
	}
	return types.StatusNotApplied, nil
}

// Set records a new status for job and prepends the change to the history,
// which keeps the most recent MaxStatusHistory entries.
func (s *Statuses) Set(ctx context.Context, job types.JobPosting, status types.Status, now time.Time) (types.StatusChange, error) {
	if _, err := types.ParseStatus(string(status)); err != nil {
		return types.StatusChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	statuses, err := s.All(ctx)
	if err != nil {
		return types.StatusChange{}, err
	}
	statuses[job.ID] = status
	if err := putJSON(ctx, s.kv, KeyStatuses, schemas.Statuses, statuses); err != nil {
		return types.StatusChange{}, err
	}

	change := types.StatusChange{
		JobID:     job.ID,
		JobTitle:  job.Title,
		Company:   job.Company,
		Status:    status,
		ChangedAt: now,
	}

	history, err := s.History(ctx)
	if err != nil {
		return types.StatusChange{}, err
	}
	history = append([]types.StatusChange{change}, history...)
	if len(history) > types.MaxStatusHistory {
		history = history[:types.MaxStatusHistory]
	}
	if err := putJSON(ctx, s.kv, KeyStatusHistory, schemas.StatusHistory, history); err != nil {
		return types.StatusChange{}, err
	}

	s.log.Debug("status updated", zap.Int("job_id", job.ID), zap.String("status", string(status)))
	return change, nil
}

// History returns recent status changes, newest first.
func (s *Statuses) History(ctx context.Context) ([]types.StatusChange, error) {
	history := make([]types.StatusChange, 0)
	if err := getJSON(ctx, s.kv, KeyStatusHistory, &history); err != nil {
		if fallback(s.log, KeyStatusHistory, err) {
			return []types.StatusChange{}, nil
		}
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return history, nil
}
