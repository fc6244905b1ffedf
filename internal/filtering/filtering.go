// Package filtering narrows and orders the job list shown on the dashboard.
package filtering

import (
	"strings"

	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Criteria holds the dashboard filter inputs. Empty fields are inactive.
type Criteria struct {
	Search      string               `json:"search,omitempty"`
	Location    string               `json:"location,omitempty"`
	Mode        types.WorkMode       `json:"mode,omitempty"`
	Experience  types.ExperienceBand `json:"experience,omitempty"`
	Source      string               `json:"source,omitempty"`
	Status      types.Status         `json:"status,omitempty"`
	MatchesOnly bool                 `json:"matchesOnly,omitempty"`
	Sort        SortKey              `json:"sort,omitempty"`
}

// Env carries the externally owned state the filters consult
type Env struct {
	Preferences types.PreferenceProfile
	// Statuses maps job id to its tracked status. Missing ids are Not Applied.
	Statuses map[int]types.Status
}

// StatusOf returns the tracked status of a job.
func (e Env) StatusOf(jobID int) types.Status {
	if st, ok := e.Statuses[jobID]; ok && st != "" {
		return st
	}
	return types.StatusNotApplied
}

// Filter is a single predicate step over scored jobs
type Filter interface {
	Name() string
	IsEnabled() bool
	Keep(job types.ScoredJob) bool
}

// Step describes the result of executing a filtering step.
type Step struct {
	Name    string `json:"name"`
	Initial int    `json:"initial"`
	Dropped int    `json:"dropped"`
	Left    int    `json:"left"`
}

type predicate struct {
	name    string
	enabled bool
	keep    func(types.ScoredJob) bool
}

func (p predicate) Name() string                  { return p.name }
func (p predicate) IsEnabled() bool               { return p.enabled }
func (p predicate) Keep(job types.ScoredJob) bool { return p.keep(job) }

// Filters builds the filter steps for the given criteria, in evaluation order.
// Inactive criteria yield disabled steps so callers can still report them.
func Filters(c Criteria, env Env) []Filter {
	search := strings.ToLower(c.Search)
	return []Filter{
		predicate{"search", search != "", func(j types.ScoredJob) bool {
			return strings.Contains(strings.ToLower(j.Title), search) ||
				strings.Contains(strings.ToLower(j.Company), search)
		}},
		predicate{"location", c.Location != "", func(j types.ScoredJob) bool {
			return j.Location == c.Location
		}},
		predicate{"mode", c.Mode != "", func(j types.ScoredJob) bool {
			return j.Mode == c.Mode
		}},
		predicate{"experience", c.Experience != "", func(j types.ScoredJob) bool {
			return j.Experience == c.Experience
		}},
		predicate{"source", c.Source != "", func(j types.ScoredJob) bool {
			return j.Source == c.Source
		}},
		predicate{"status", c.Status != "", func(j types.ScoredJob) bool {
			return env.StatusOf(j.ID) == c.Status
		}},
		predicate{"matches_only", c.MatchesOnly, func(j types.ScoredJob) bool {
			return j.MatchScore >= env.Preferences.MinMatchScore
		}},
	}
}

// Apply scores the jobs, keeps those passing every active criterion and sorts the result.
func Apply(jobs []types.JobPosting, c Criteria, env Env) []types.ScoredJob {
	out, _ := Run(jobs, c, env, nil)
	return out
}

// Run is Apply that also reports per-step counts and logs them when logger is non-nil.
func Run(jobs []types.JobPosting, c Criteria, env Env, logger *zap.Logger) ([]types.ScoredJob, []Step) {
	if logger == nil {
		logger = zap.NewNop()
	}

	current := ranking.ScoreAll(jobs, env.Preferences)
	steps := make([]Step, 0, 7)

	for _, f := range Filters(c, env) {
		if !f.IsEnabled() {
			continue
		}

		kept := make([]types.ScoredJob, 0, len(current))
		for _, job := range current {
			if f.Keep(job) {
				kept = append(kept, job)
			}
		}

		step := Step{
			Name:    f.Name(),
			Initial: len(current),
			Dropped: len(current) - len(kept),
			Left:    len(kept),
		}
		steps = append(steps, step)
		logger.Debug("filter step",
			zap.String("name", step.Name),
			zap.Int("initial", step.Initial),
			zap.Int("dropped", step.Dropped),
			zap.Int("left", step.Left),
		)

		current = kept
	}

	Sort(current, c.Sort)
	return current, steps
}
