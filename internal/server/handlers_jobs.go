package server

import (
	"net/http"
	"time"

	"github.com/jonathan/jobfit/internal/digest"
	"github.com/jonathan/jobfit/internal/filtering"
	"github.com/jonathan/jobfit/internal/ranking"
	"github.com/jonathan/jobfit/internal/types"
)

// MatchRequest is the body of POST /match. Stored preferences are used when
// Preferences is omitted.
type MatchRequest struct {
	Job         types.JobPosting         `json:"job"`
	Preferences *types.PreferenceProfile `json:"preferences,omitempty"`
}

// MatchResponse is the match score of one job with the rules that produced it
type MatchResponse struct {
	Score     int               `json:"score"`
	Band      ranking.Band      `json:"band"`
	Breakdown ranking.Breakdown `json:"breakdown"`
	Threshold int               `json:"threshold"`
	Matches   bool              `json:"matches"`
}

// SearchRequest is the body of POST /jobs/search. The catalog is searched
// when Jobs is omitted.
type SearchRequest struct {
	Jobs     []types.JobPosting `json:"jobs,omitempty"`
	Criteria filtering.Criteria `json:"criteria"`
}

// SearchResponse lists the jobs that passed every active filter
type SearchResponse struct {
	Jobs  []types.ScoredJob `json:"jobs"`
	Steps []filtering.Step  `json:"steps"`
	Total int               `json:"total"`
}

// DigestResponse is a generated digest and whether it was stored
type DigestResponse struct {
	Digest types.Digest `json:"digest"`
	Stored bool         `json:"stored"`
}

// handleMatch scores one job against a preference profile
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := req.Job.Validate(); err != nil {
		s.fail(w, r, &ErrValidation{Field: "job", Message: err.Error()})
		return
	}

	var prefs types.PreferenceProfile
	if req.Preferences != nil {
		prefs = *req.Preferences
		if err := prefs.Validate(); err != nil {
			s.fail(w, r, &ErrValidation{Field: "preferences", Message: err.Error()})
			return
		}
	} else {
		stored, err := s.stores.Preferences.Load(r.Context())
		if err != nil {
			s.fail(w, r, err)
			return
		}
		prefs = stored
	}

	breakdown := ranking.Explain(req.Job, prefs)
	score := breakdown.Total()
	s.jsonResponse(w, http.StatusOK, MatchResponse{
		Score:     score,
		Band:      ranking.BandFor(score),
		Breakdown: breakdown,
		Threshold: prefs.MinMatchScore,
		Matches:   score >= prefs.MinMatchScore,
	})
}

// handleSearchJobs filters and sorts jobs with the stored preferences and statuses
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := filtering.ParseSortKey(string(req.Criteria.Sort)); err != nil {
		s.fail(w, r, &ErrValidation{Field: "criteria.sort", Message: err.Error()})
		return
	}
	if req.Criteria.Status != "" {
		if _, err := types.ParseStatus(string(req.Criteria.Status)); err != nil {
			s.fail(w, r, &ErrValidation{Field: "criteria.status", Message: err.Error()})
			return
		}
	}

	jobs := req.Jobs
	if jobs == nil {
		jobs = s.jobs
	}

	ctx := r.Context()
	prefs, err := s.stores.Preferences.Load(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	statuses, err := s.stores.Statuses.All(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	env := filtering.Env{Preferences: prefs, Statuses: statuses}
	out, steps := filtering.Run(jobs, req.Criteria, env, s.log)
	s.jsonResponse(w, http.StatusOK, SearchResponse{Jobs: out, Steps: steps, Total: len(out)})
}

// handleGenerateDigest regenerates today's digest from the catalog
func (s *Server) handleGenerateDigest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	prefs, err := s.stores.Preferences.Load(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !prefs.HasPreferences() {
		s.fail(w, r, &ErrValidation{Field: "preferences", Message: "set your preferences before generating a digest"})
		return
	}

	d, stored, err := digest.Publish(ctx, s.stores.Digests, s.jobs, prefs, s.now(), digest.Options{
		PersistEmpty: s.cfg.Digest.PersistEmpty,
		Logger:       s.log,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DigestResponse{Digest: d, Stored: stored})
}

// handleListDigests lists the dates with a stored digest
func (s *Server) handleListDigests(w http.ResponseWriter, r *http.Request) {
	dates, err := s.stores.Digests.Dates(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"dates": dates})
}

// handleGetDigest returns the digest stored for a date
func (s *Server) handleGetDigest(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		s.fail(w, r, &ErrValidation{Field: "date", Message: "expected YYYY-MM-DD"})
		return
	}

	d, err := s.stores.Digests.Load(r.Context(), date)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, d)
}
