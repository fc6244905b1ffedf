package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/jobfit/internal/catalog"
	"github.com/jonathan/jobfit/internal/types"
)

// StatusRequest is the body of PUT /status/{id}
type StatusRequest struct {
	Status string `json:"status"`
}

// SavedResponse reports the saved state of one job after a toggle
type SavedResponse struct {
	JobID int  `json:"jobId"`
	Saved bool `json:"saved"`
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.stores.Preferences.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, prefs)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs types.PreferenceProfile
	if err := decodeJSON(w, r, &prefs); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.stores.Preferences.Save(r.Context(), prefs); err != nil {
		s.fail(w, r, err)
		return
	}

	saved, err := s.stores.Preferences.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

func (s *Server) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.stores.Statuses.All(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make(map[string]types.Status, len(statuses))
	for id, st := range statuses {
		out[strconv.Itoa(id)] = st
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleSetStatus records a status change for a catalog job
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req StatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	status, err := types.ParseStatus(req.Status)
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "status", Message: err.Error()})
		return
	}
	job, ok := catalog.Find(s.jobs, id)
	if !ok {
		s.fail(w, r, &ErrNotFound{Resource: "job", ID: strconv.Itoa(id)})
		return
	}

	change, err := s.stores.Statuses.Set(r.Context(), job, status, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, change)
}

func (s *Server) handleStatusHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.stores.Statuses.History(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, history)
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	ids, err := s.stores.SavedJobs.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ids)
}

// handleToggleSaved saves an unsaved job or unsaves a saved one
func (s *Server) handleToggleSaved(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if _, ok := catalog.Find(s.jobs, id); !ok {
		s.fail(w, r, &ErrNotFound{Resource: "job", ID: strconv.Itoa(id)})
		return
	}

	saved, err := s.stores.SavedJobs.Toggle(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SavedResponse{JobID: id, Saved: saved})
}
