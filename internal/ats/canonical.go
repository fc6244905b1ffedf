package ats

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jobfit/internal/types"
)

const (
	minSummaryChars = 50
	minSkills       = 5
)

// canonicalRules is the v2 rule set in evaluation order
var canonicalRules = []rule{
	{10, "Add Name (+10)", func(r types.Resume) bool { return r.Personal.Name != "" }},
	{10, "Add Email (+10)", func(r types.Resume) bool { return r.Personal.Email != "" }},
	{10, "Summary > 50 chars (+10)", func(r types.Resume) bool {
		return utf8.RuneCountInString(r.Summary) > minSummaryChars
	}},
	{15, "Add Experience (+15)", func(r types.Resume) bool { return len(r.Experience) >= 1 }},
	{10, "Add Education (+10)", func(r types.Resume) bool { return len(r.Education) >= 1 }},
	{10, "Add 5+ Skills (+10)", func(r types.Resume) bool { return r.Skills.Count() >= minSkills }},
	{10, "Add 1+ Project (+10)", func(r types.Resume) bool { return len(r.Projects) >= 1 }},
	{5, "Add Phone (+5)", func(r types.Resume) bool { return r.Personal.Phone != "" }},
	{5, "Add LinkedIn (+5)", func(r types.Resume) bool { return r.Personal.LinkedIn != "" }},
	{5, "Add GitHub (+5)", func(r types.Resume) bool { return r.Personal.GitHub != "" }},
	{10, "Use Action Verbs in Summary/Bullets (+10)", func(r types.Resume) bool {
		return mentionsActionVerb(r.Summary + " " + bulletText(r))
	}},
}

// bulletText joins every experience and project description with single spaces.
func bulletText(r types.Resume) string {
	parts := make([]string, 0, len(r.Experience)+len(r.Projects))
	for _, e := range r.Experience {
		parts = append(parts, e.Description)
	}
	for _, p := range r.Projects {
		parts = append(parts, p.Description)
	}
	return strings.Join(parts, " ")
}
