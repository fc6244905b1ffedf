package resume

import "github.com/jonathan/jobfit/internal/types"

// Export readiness issues
const (
	IssueMissingName     = "Missing Name"
	IssueNoWorkOrProject = "No Experience or Projects"
)

// ExportIssues lists what makes a resume look incomplete for export. The
// issues are warnings; export still proceeds when the user confirms.
func ExportIssues(r types.Resume) []string {
	issues := make([]string, 0, 2)
	if r.Personal.Name == "" {
		issues = append(issues, IssueMissingName)
	}
	if len(r.Experience) == 0 && len(r.Projects) == 0 {
		issues = append(issues, IssueNoWorkOrProject)
	}
	return issues
}
