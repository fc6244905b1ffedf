//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ProjectStatus summarises how far a project is from being shipped
type ProjectStatus string

// Project statuses
const (
	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectShipped    ProjectStatus = "Shipped"
)

// ProofLinks are the artifact links collected for the job tracker
type ProofLinks struct {
	Lovable string `json:"lovable" validate:"omitempty,url"`
	GitHub  string `json:"github" validate:"omitempty,url"`
	Deploy  string `json:"deploy" validate:"omitempty,url"`
}

// Complete reports whether all three links are set.
func (p ProofLinks) Complete() bool {
	return p.Lovable != "" && p.GitHub != "" && p.Deploy != ""
}

// Validate checks that every set link is a URL.
func (p *ProofLinks) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Any reports whether at least one link is set.
func (p ProofLinks) Any() bool {
	return p.Lovable != "" || p.GitHub != "" || p.Deploy != ""
}

// TestStatus maps a checklist item id to whether it passed
type TestStatus map[string]bool

// Passed counts the passing items.
func (t TestStatus) Passed() int {
	n := 0
	for _, ok := range t {
		if ok {
			n++
		}
	}
	return n
}

// CheckItem is one labelled checkbox
type CheckItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// Submission is the resume builder's final submission record
type Submission struct {
	LovableLink  string      `json:"lovableLink"`
	GitHubLink   string      `json:"githubLink"`
	DeployedLink string      `json:"deployedLink"`
	Steps        []CheckItem `json:"steps"`
	Checklist    []CheckItem `json:"checklist"`
}
