package server

import (
	"net/http"

	"github.com/jonathan/jobfit/internal/proof"
	"github.com/jonathan/jobfit/internal/types"
)

// ProofResponse summarises the job tracker verification state
type ProofResponse struct {
	Status      types.ProjectStatus `json:"status"`
	TestsPassed int                 `json:"testsPassed"`
	TestsTotal  int                 `json:"testsTotal"`
	Links       types.ProofLinks    `json:"links"`
	Shipped     bool                `json:"submissionShipped"`
}

func (s *Server) handleProofStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	links, err := s.stores.Proofs.Links(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	tests, err := s.stores.Proofs.Tests(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	status, err := s.stores.Proofs.Status(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sub, err := s.stores.Proofs.Submission(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ProofResponse{
		Status:      status,
		TestsPassed: proof.PassedTests(tests),
		TestsTotal:  len(proof.TrackerChecklist),
		Links:       links,
		Shipped:     proof.IsShipped(sub),
	})
}
