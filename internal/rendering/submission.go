package rendering

import (
	"strings"

	"github.com/jonathan/jobfit/internal/proof"
	"github.com/jonathan/jobfit/internal/types"
)

const rule = "------------------------------------------"

var trackerSubmissionTmpl = mustTemplate("tracker-submission", rule+`
Job Notification Tracker — Final Submission

Lovable Project:
{{ .Lovable }}

GitHub Repository:
{{ .GitHub }}

Live Deployment:
{{ .Deploy }}

Core Features:
- Intelligent match scoring
- Daily digest simulation
- Status tracking
- Test checklist enforced
`+rule)

var builderSubmissionTmpl = mustTemplate("builder-submission", rule+`
AI Resume Builder — Final Submission

Lovable Project: {{ .LovableLink }}
GitHub Repository: {{ .GitHubLink }}
Live Deployment: {{ .DeployedLink }}

Core Capabilities:
- Structured resume builder
- Deterministic ATS scoring
- Template switching
- PDF export with clean formatting
- Persistence + validation checklist
`+rule)

// TrackerSubmissionText renders the job tracker final submission.
func TrackerSubmissionText(links types.ProofLinks) (string, error) {
	out, err := execute(trackerSubmissionTmpl, links)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BuilderSubmissionText renders the resume builder final submission. It
// refuses submissions that are not shipped yet.
func BuilderSubmissionText(sub types.Submission) (string, error) {
	if !proof.IsShipped(sub) {
		return "", &RenderError{Message: "complete all steps, checklist items and links before submitting"}
	}
	out, err := execute(builderSubmissionTmpl, sub)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
