package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/jobfit/internal/proof"
	"github.com/jonathan/jobfit/internal/schemas"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
)

// Proofs stores the job tracker verification results and proof links and
// the resume builder submission.
type Proofs struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

// Links returns the saved proof links, empty when none are saved.
func (p *Proofs) Links(ctx context.Context) (types.ProofLinks, error) {
	var links types.ProofLinks
	if err := getJSON(ctx, p.kv, KeyProofLinks, &links); err != nil {
		if fallback(p.log, KeyProofLinks, err) {
			return types.ProofLinks{}, nil
		}
		return types.ProofLinks{}, fmt.Errorf("failed to load proof links: %w", err)
	}
	return links, nil
}

// SaveLinks overwrites the proof links.
func (p *Proofs) SaveLinks(ctx context.Context, links types.ProofLinks) error {
	if err := links.Validate(); err != nil {
		return fmt.Errorf("invalid proof links: %w", err)
	}
	return putJSON(ctx, p.kv, KeyProofLinks, schemas.ProofLinks, links)
}

// Tests returns the recorded checklist results.
func (p *Proofs) Tests(ctx context.Context) (types.TestStatus, error) {
	tests := make(types.TestStatus)
	if err := getJSON(ctx, p.kv, KeyTestStatus, &tests); err != nil {
		if fallback(p.log, KeyTestStatus, err) {
			return make(types.TestStatus), nil
		}
		return nil, fmt.Errorf("failed to load checklist results: %w", err)
	}
	return tests, nil
}

// SetTest records one checklist result.
func (p *Proofs) SetTest(ctx context.Context, id string, passed bool) (types.TestStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tests, err := p.Tests(ctx)
	if err != nil {
		return nil, err
	}
	tests, err = proof.SetTest(tests, id, passed)
	if err != nil {
		return nil, err
	}
	if err := putJSON(ctx, p.kv, KeyTestStatus, schemas.TestStatus, tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// Status derives the job tracker project status from the stored state.
func (p *Proofs) Status(ctx context.Context) (types.ProjectStatus, error) {
	links, err := p.Links(ctx)
	if err != nil {
		return "", err
	}
	tests, err := p.Tests(ctx)
	if err != nil {
		return "", err
	}
	return proof.Status(links, tests), nil
}

// Submission returns the resume builder submission, restored over a fresh one.
func (p *Proofs) Submission(ctx context.Context) (types.Submission, error) {
	var saved types.Submission
	if err := getJSON(ctx, p.kv, KeySubmission, &saved); err != nil {
		if fallback(p.log, KeySubmission, err) {
			return proof.NewSubmission(), nil
		}
		return types.Submission{}, fmt.Errorf("failed to load submission: %w", err)
	}
	return proof.RestoreSubmission(saved), nil
}

// SaveSubmission overwrites the resume builder submission.
func (p *Proofs) SaveSubmission(ctx context.Context, sub types.Submission) error {
	return putJSON(ctx, p.kv, KeySubmission, schemas.Submission, sub)
}

// ToggleSubmission flips one step or checklist item and saves the result.
func (p *Proofs) ToggleSubmission(ctx context.Context, group, id string) (types.Submission, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub, err := p.Submission(ctx)
	if err != nil {
		return types.Submission{}, err
	}
	sub, err = proof.Toggle(sub, group, id)
	if err != nil {
		return types.Submission{}, err
	}
	if err := p.SaveSubmission(ctx, sub); err != nil {
		return types.Submission{}, err
	}
	return sub, nil
}
