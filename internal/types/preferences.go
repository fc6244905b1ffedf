//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMinMatchScore is the threshold a fresh preference profile starts with
const DefaultMinMatchScore = 40

// PreferenceProfile holds the user's job-matching criteria
type PreferenceProfile struct {
	RoleKeywords       string         `json:"roleKeywords"`       // comma separated
	PreferredLocations []string       `json:"preferredLocations"` // exact location names
	PreferredMode      []WorkMode     `json:"preferredMode" validate:"dive,oneof=Remote Hybrid Onsite"`
	ExperienceLevel    ExperienceBand `json:"experienceLevel" validate:"omitempty,oneof=Fresher 0-1 1-3 3-5"`
	Skills             string         `json:"skills"` // comma separated
	MinMatchScore      int            `json:"minMatchScore" validate:"gte=0,lte=100"`
}

// DefaultPreferences returns the profile used when nothing has been saved yet.
func DefaultPreferences() PreferenceProfile {
	return PreferenceProfile{
		PreferredLocations: []string{},
		PreferredMode:      []WorkMode{},
		MinMatchScore:      DefaultMinMatchScore,
	}
}

// Validate validates the PreferenceProfile using the validator.
func (p *PreferenceProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// HasPreferences reports whether any matching criterion is set.
// The threshold alone does not count.
func (p PreferenceProfile) HasPreferences() bool {
	return strings.TrimSpace(p.RoleKeywords) != "" ||
		len(p.PreferredLocations) > 0 ||
		len(p.PreferredMode) > 0 ||
		p.ExperienceLevel != "" ||
		strings.TrimSpace(p.Skills) != ""
}

// Keywords returns the role keywords split on commas, trimmed, lower-cased, empties dropped.
func (p PreferenceProfile) Keywords() []string {
	return SplitTerms(p.RoleKeywords)
}

// SkillList returns the user skills split on commas, trimmed, lower-cased, empties dropped.
func (p PreferenceProfile) SkillList() []string {
	return SplitTerms(p.Skills)
}

// WantsLocation reports whether location is one of the preferred locations (case-sensitive).
func (p PreferenceProfile) WantsLocation(location string) bool {
	return slices.Contains(p.PreferredLocations, location)
}

// WantsMode reports whether mode is one of the preferred work modes.
func (p PreferenceProfile) WantsMode(mode WorkMode) bool {
	return slices.Contains(p.PreferredMode, mode)
}

// SplitTerms splits a comma-separated list into trimmed, lower-cased, non-empty terms.
func SplitTerms(list string) []string {
	parts := strings.Split(list, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
