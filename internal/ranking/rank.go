package ranking

import (
	"slices"

	"github.com/jonathan/jobfit/internal/types"
)

// ScoreAll annotates every job with its match score, keeping catalog order.
func ScoreAll(jobs []types.JobPosting, prefs types.PreferenceProfile) []types.ScoredJob {
	scored := make([]types.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, types.ScoredJob{
			JobPosting: job,
			MatchScore: Score(job, prefs),
		})
	}
	return scored
}

// AboveThreshold keeps the jobs whose score is at least threshold.
func AboveThreshold(jobs []types.ScoredJob, threshold int) []types.ScoredJob {
	kept := make([]types.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		if job.MatchScore >= threshold {
			kept = append(kept, job)
		}
	}
	return kept
}

// RankJobs orders jobs by score descending, then by posting age ascending.
// The sort is stable, so jobs equal on both keys keep their input order.
func RankJobs(jobs []types.ScoredJob) {
	slices.SortStableFunc(jobs, func(a, b types.ScoredJob) int {
		if a.MatchScore != b.MatchScore {
			return b.MatchScore - a.MatchScore
		}
		return a.PostedDaysAgo - b.PostedDaysAgo
	})
}
