package proof

import (
	"fmt"

	"github.com/jonathan/jobfit/internal/types"
)

// Submission item groups
const (
	GroupSteps     = "steps"
	GroupChecklist = "checklist"
)

var builderSteps = []types.CheckItem{
	{ID: "step1", Label: "Project Setup & Structure"},
	{ID: "step2", Label: "Basic Resume Form (HTML/CSS)"},
	{ID: "step3", Label: "Live Preview Implementation"},
	{ID: "step4", Label: "PDF Export Logic"},
	{ID: "step5", Label: "Persistence (LocalStorage)"},
	{ID: "step6", Label: "ATS Scoring Algorithm"},
	{ID: "step7", Label: "Visual Customization (Themes)"},
	{ID: "step8", Label: "Final Polish & Verification"},
}

var builderChecklist = []types.CheckItem{
	{ID: "check1", Label: "All form sections save to localStorage"},
	{ID: "check2", Label: "Live preview updates in real-time"},
	{ID: "check3", Label: "Template switching preserves data"},
	{ID: "check4", Label: "Color theme persists after refresh"},
	{ID: "check5", Label: "ATS score calculates correctly"},
	{ID: "check6", Label: "Score updates live on edit"},
	{ID: "check7", Label: "Export buttons work (copy/download)"},
	{ID: "check8", Label: "Empty states handled gracefully"},
	{ID: "check9", Label: "Mobile responsive layout works"},
	{ID: "check10", Label: "No console errors on any page"},
}

// NewSubmission returns an empty resume builder submission with every item unchecked.
func NewSubmission() types.Submission {
	return types.Submission{
		Steps:     append([]types.CheckItem(nil), builderSteps...),
		Checklist: append([]types.CheckItem(nil), builderChecklist...),
	}
}

// RestoreSubmission overlays a saved submission onto a fresh one. Check
// states are restored by id, unknown ids are dropped and empty saved links
// are ignored.
func RestoreSubmission(saved types.Submission) types.Submission {
	out := NewSubmission()
	if saved.LovableLink != "" {
		out.LovableLink = saved.LovableLink
	}
	if saved.GitHubLink != "" {
		out.GitHubLink = saved.GitHubLink
	}
	if saved.DeployedLink != "" {
		out.DeployedLink = saved.DeployedLink
	}
	restoreChecks(out.Steps, saved.Steps)
	restoreChecks(out.Checklist, saved.Checklist)
	return out
}

func restoreChecks(dst, saved []types.CheckItem) {
	for _, s := range saved {
		for i := range dst {
			if dst[i].ID == s.ID {
				dst[i].Checked = s.Checked
			}
		}
	}
}

// Toggle flips one step or checklist item and returns the updated submission.
func Toggle(sub types.Submission, group, id string) (types.Submission, error) {
	var items []types.CheckItem
	switch group {
	case GroupSteps:
		items = append([]types.CheckItem(nil), sub.Steps...)
		sub.Steps = items
	case GroupChecklist:
		items = append([]types.CheckItem(nil), sub.Checklist...)
		sub.Checklist = items
	default:
		return sub, fmt.Errorf("unknown submission group %q", group)
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return sub, nil
		}
	}
	return sub, fmt.Errorf("unknown %s item %q", group, id)
}

// IsShipped reports whether every step and check is ticked and all three links are set.
func IsShipped(sub types.Submission) bool {
	if sub.LovableLink == "" || sub.GitHubLink == "" || sub.DeployedLink == "" {
		return false
	}
	for _, s := range sub.Steps {
		if !s.Checked {
			return false
		}
	}
	for _, c := range sub.Checklist {
		if !c.Checked {
			return false
		}
	}
	return true
}
