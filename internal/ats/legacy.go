package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const (
	legacyBase           = 20
	legacyMaxSuggestions = 3
	legacyMinWords       = 40
	legacyMaxWords       = 120
	legacyMinProjects    = 2
	legacyMinSkills      = 8
)

var measurableImpact = regexp.MustCompile(`(?i)\d+%|\d+x|\d+k`)

// legacyRules is the v1 rule set in evaluation order. The education rule only
// suggests something when no education is listed at all.
var legacyRules = []rule{
	{15, "Write a stronger summary (40–120 words).", func(r types.Resume) bool {
		n := len(strings.Fields(r.Summary))
		return n >= legacyMinWords && n <= legacyMaxWords
	}},
	{10, "Add at least 2 projects.", func(r types.Resume) bool { return len(r.Projects) >= legacyMinProjects }},
	{10, "Add at least 1 work experience.", func(r types.Resume) bool { return len(r.Experience) >= 1 }},
	{10, "Add more skills (target 8+).", func(r types.Resume) bool { return r.Skills.Count() >= legacyMinSkills }},
	{10, "Add GitHub or LinkedIn link.", func(r types.Resume) bool {
		return r.Personal.GitHub != "" || r.Personal.LinkedIn != ""
	}},
	{15, "Add measurable impact (numbers/%) in bullets.", func(r types.Resume) bool {
		return measurableImpact.MatchString(bulletText(r))
	}},
}

func scoreLegacy(r types.Resume) types.ATSScore {
	out := evaluate(PolicyV1, legacyRules, legacyBase, r)

	switch {
	case educationComplete(r.Education):
		out.Score = min(out.Score+10, maxScore)
	case len(r.Education) == 0:
		out.Suggestions = append(out.Suggestions, "Add your education details.")
	}

	if len(out.Suggestions) > legacyMaxSuggestions {
		out.Suggestions = out.Suggestions[:legacyMaxSuggestions]
	}
	return out
}

func educationComplete(entries []types.Education) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if !e.Complete() {
			return false
		}
	}
	return true
}
