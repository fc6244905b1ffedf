// Package proof tracks the verification checklists and artifact links that
// decide whether a project counts as shipped.
package proof

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/types"
)

// ChecklistItem is one manual verification for the job tracker
type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tip   string `json:"tip"`
}

// TrackerChecklist lists the job tracker verifications in display order.
var TrackerChecklist = []ChecklistItem{
	{ID: "pref-persist", Label: "Preferences persist after refresh", Tip: "Reload page and check Settings"},
	{ID: "match-score", Label: "Match score calculates correctly", Tip: "Check math matching preferences"},
	{ID: "matches-toggle", Label: `"Show only matches" toggle works`, Tip: "Enable toggle, check non-matches hidden"},
	{ID: "save-job", Label: "Save job persists after refresh", Tip: "Save a job, reload, check Saved Jobs"},
	{ID: "apply-tab", Label: "Apply opens in new tab", Tip: "Click Apply, check new tab opens"},
	{ID: "status-persist", Label: "Status update persists after refresh", Tip: "Change status, reload, check persistence"},
	{ID: "status-filter", Label: "Status filter works correctly", Tip: "Filter by status, check results"},
	{ID: "digest-score", Label: "Digest generates top 10 by score", Tip: "Generate digest, check order"},
	{ID: "digest-persist", Label: "Digest persists for the day", Tip: "Reload page, check digest remains"},
	{ID: "no-errors", Label: "No console errors on main pages", Tip: "Open console (F12), browse pages"},
}

// IsTrackerItem reports whether id names a job tracker checklist item.
func IsTrackerItem(id string) bool {
	for _, item := range TrackerChecklist {
		if item.ID == id {
			return true
		}
	}
	return false
}

// SetTest records the result of one tracker verification and returns the updated set.
func SetTest(tests types.TestStatus, id string, passed bool) (types.TestStatus, error) {
	if !IsTrackerItem(id) {
		return tests, fmt.Errorf("unknown checklist item %q", id)
	}
	out := make(types.TestStatus, len(tests)+1)
	for k, v := range tests {
		out[k] = v
	}
	out[id] = passed
	return out, nil
}

// PassedTests counts passing tracker verifications, ignoring unknown ids.
func PassedTests(tests types.TestStatus) int {
	n := 0
	for _, item := range TrackerChecklist {
		if tests[item.ID] {
			n++
		}
	}
	return n
}

// Status derives the job tracker project status. It is shipped once every
// verification passed and all links are in.
func Status(links types.ProofLinks, tests types.TestStatus) types.ProjectStatus {
	passed := PassedTests(tests)
	switch {
	case passed == len(TrackerChecklist) && links.Complete():
		return types.ProjectShipped
	case passed > 0 || links.Any():
		return types.ProjectInProgress
	default:
		return types.ProjectNotStarted
	}
}
