// Package digest builds the daily shortlist of best-matching jobs.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Generate scores every job, keeps those at or above the profile threshold,
// ranks them by score then recency and keeps the first ten.
// The result depends only on its arguments.
func Generate(jobs []types.JobPosting, prefs types.PreferenceProfile, now time.Time) types.Digest {
	matching := ranking.AboveThreshold(ranking.ScoreAll(jobs, prefs), prefs.MinMatchScore)
	ranking.RankJobs(matching)

	if len(matching) > types.MaxDigestJobs {
		matching = matching[:types.MaxDigestJobs]
	}

	return types.Digest{
		Date:        DateKey(now),
		GeneratedAt: now,
		Jobs:        matching,
	}
}

// DateKey returns the UTC calendar date a digest generated at t belongs to.
func DateKey(t time.Time) string {
	return t.UTC().Format(types.DigestDateLayout)
}

// Saver persists a digest under its date, replacing any digest already stored for that date.
type Saver interface {
	SaveDigest(ctx context.Context, d types.Digest) error
}

// Options controls how a generated digest is published
type Options struct {
	// PersistEmpty stores digests with no jobs so that "generated, no matches"
	// can be told apart from "not generated yet".
	PersistEmpty bool
	Logger       *zap.Logger
}

// Publish generates today's digest and stores it.
// Empty digests are only stored when opts.PersistEmpty is set.
// It reports whether the digest was written.
func Publish(ctx context.Context, saver Saver, jobs []types.JobPosting, prefs types.PreferenceProfile, now time.Time, opts Options) (types.Digest, bool, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := Generate(jobs, prefs, now)
	log.Info("digest generated",
		zap.String("date", d.Date),
		zap.Int("candidates", len(jobs)),
		zap.Int("selected", len(d.Jobs)),
		zap.Int("min_match_score", prefs.MinMatchScore),
	)

	if d.Empty() && !opts.PersistEmpty {
		log.Debug("empty digest not stored", zap.String("date", d.Date))
		return d, false, nil
	}

	if err := saver.SaveDigest(ctx, d); err != nil {
		return d, false, fmt.Errorf("failed to save digest for %s: %w", d.Date, err)
	}
	return d, true, nil
}
