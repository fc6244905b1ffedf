package server

import (
	"io"
	"net/http"

	"github.com/jonathan/jobfit/internal/ats"
	"github.com/jonathan/jobfit/internal/resume"
	"github.com/jonathan/jobfit/internal/types"
)

// ATSRequest is the body of POST /ats/score
type ATSRequest struct {
	Resume types.Resume `json:"resume"`
	Policy string       `json:"policy,omitempty"`
}

// ATSResponse is a scored resume. Top holds the suggestions worth showing.
type ATSResponse struct {
	Score       int      `json:"score"`
	Band        string   `json:"band"`
	Policy      string   `json:"policy"`
	Suggestions []string `json:"suggestions"`
	Top         []string `json:"top"`
}

// GuidanceRequest is the body of POST /ats/guidance
type GuidanceRequest struct {
	Text string `json:"text"`
}

// GuidanceResponse carries the guidance for one field, null when there is none
type GuidanceResponse struct {
	Guidance *types.Guidance `json:"guidance"`
}

// MigrateResponse is an upgraded resume record with its export readiness
type MigrateResponse struct {
	Document types.ResumeDocument `json:"document"`
	Issues   []string             `json:"issues"`
}

func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	var req ATSRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	policy, err := ats.ParsePolicy(req.Policy)
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "policy", Message: err.Error()})
		return
	}

	result := ats.ScoreWith(policy, req.Resume)
	s.jsonResponse(w, http.StatusOK, ATSResponse{
		Score:       result.Score,
		Band:        ats.BandFor(policy, result.Score),
		Policy:      result.Policy,
		Suggestions: result.Suggestions,
		Top:         result.Top(ats.MaxSuggestions),
	})
}

func (s *Server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	var req GuidanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, GuidanceResponse{Guidance: ats.Guidance(req.Text)})
}

// handleMigrateResume upgrades a raw stored resume record. Nothing is persisted.
func (s *Server) handleMigrateResume(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	doc, err := resume.Migrate(raw)
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, MigrateResponse{Document: doc, Issues: resume.ExportIssues(doc.Resume)})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	doc, err := s.stores.Resumes.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handlePutResume accepts any record shape and stores it in the current one
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	doc, err := resume.Migrate(raw)
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	if err := s.stores.Resumes.Save(r.Context(), doc); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}
