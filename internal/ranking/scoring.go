// Package ranking scores job postings against a user's preference profile.
package ranking

import (
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// Points awarded by each match rule
const (
	titleKeywordPoints       = 25
	descriptionKeywordPoints = 15
	locationPoints           = 15
	modePoints               = 10
	experiencePoints         = 10
	skillOverlapPoints       = 15
	recencyPoints            = 5
	sourcePoints             = 5

	// recentPostingDays is the largest posting age that still counts as recent
	recentPostingDays = 2

	// MaxScore caps every match score
	MaxScore = 100
)

// Rule names reported by Explain
const (
	RuleTitleKeyword       = "title_keyword"
	RuleDescriptionKeyword = "description_keyword"
	RuleLocation           = "location"
	RuleMode               = "mode"
	RuleExperience         = "experience"
	RuleSkillOverlap       = "skill_overlap"
	RuleRecent             = "recent"
	RuleSource             = "source"
)

// FiredRule is one rule that contributed points to a match score
type FiredRule struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}

// Breakdown lists the rules that fired for one job, in evaluation order
type Breakdown struct {
	Rules []FiredRule `json:"rules"`
}

// Total returns the capped sum of the fired rules.
func (b Breakdown) Total() int {
	sum := 0
	for _, r := range b.Rules {
		sum += r.Points
	}
	return min(sum, MaxScore)
}

// Names returns the names of the fired rules.
func (b Breakdown) Names() []string {
	names := make([]string, 0, len(b.Rules))
	for _, r := range b.Rules {
		names = append(names, r.Rule)
	}
	return names
}

// Score computes the 0-100 match score of a job for the given preferences.
// Absent preference fields contribute nothing.
func Score(job types.JobPosting, prefs types.PreferenceProfile) int {
	return Explain(job, prefs).Total()
}

// Explain evaluates every match rule and returns the ones that fired.
func Explain(job types.JobPosting, prefs types.PreferenceProfile) Breakdown {
	fired := make([]FiredRule, 0, 8)
	add := func(rule string, points int) {
		fired = append(fired, FiredRule{Rule: rule, Points: points})
	}

	keywords := prefs.Keywords()
	if containsAny(job.Title, keywords) {
		add(RuleTitleKeyword, titleKeywordPoints)
	}
	if containsAny(job.Description, keywords) {
		add(RuleDescriptionKeyword, descriptionKeywordPoints)
	}

	if len(prefs.PreferredLocations) > 0 && prefs.WantsLocation(job.Location) {
		add(RuleLocation, locationPoints)
	}
	if len(prefs.PreferredMode) > 0 && prefs.WantsMode(job.Mode) {
		add(RuleMode, modePoints)
	}
	if prefs.ExperienceLevel != "" && prefs.ExperienceLevel == job.Experience {
		add(RuleExperience, experiencePoints)
	}

	if skillsOverlap(prefs.SkillList(), job.Skills) {
		add(RuleSkillOverlap, skillOverlapPoints)
	}

	if job.PostedDaysAgo <= recentPostingDays {
		add(RuleRecent, recencyPoints)
	}
	if job.Source == types.SourceLinkedIn {
		add(RuleSource, sourcePoints)
	}

	return Breakdown{Rules: fired}
}

// containsAny reports whether any lower-cased term is a substring of text.
func containsAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// skillsOverlap reports whether some user skill and job skill contain one another.
// The check is bidirectional substring containment, so "java" matches "javascript".
func skillsOverlap(userSkills, jobSkills []string) bool {
	for _, us := range userSkills {
		for _, js := range jobSkills {
			js = strings.ToLower(js)
			if strings.Contains(us, js) || strings.Contains(js, us) {
				return true
			}
		}
	}
	return false
}
