// Package types provides type definitions for structured data used throughout the jobfit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// WorkMode is the working arrangement of a job posting
type WorkMode string

// Work modes offered by the catalog
const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// ExperienceBand is the experience bracket a job posting targets
type ExperienceBand string

// Experience bands offered by the catalog
const (
	ExperienceFresher ExperienceBand = "Fresher"
	Experience0To1    ExperienceBand = "0-1"
	Experience1To3    ExperienceBand = "1-3"
	Experience3To5    ExperienceBand = "3-5"
)

// SourceLinkedIn is the source tag that earns the source bonus in match scoring
const SourceLinkedIn = "LinkedIn"

// JobPosting is a read-only catalog entry
type JobPosting struct {
	ID            int            `json:"id" yaml:"id" validate:"required"`
	Title         string         `json:"title" yaml:"title" validate:"required"`
	Company       string         `json:"company" yaml:"company" validate:"required"`
	Location      string         `json:"location" yaml:"location"`
	Mode          WorkMode       `json:"mode" yaml:"mode" validate:"omitempty,oneof=Remote Hybrid Onsite"`
	Experience    ExperienceBand `json:"experience" yaml:"experience" validate:"omitempty,oneof=Fresher 0-1 1-3 3-5"`
	Description   string         `json:"description" yaml:"description"`
	Skills        []string       `json:"skills" yaml:"skills"`
	SalaryRange   string         `json:"salaryRange" yaml:"salaryRange"`
	Source        string         `json:"source" yaml:"source"`
	PostedDaysAgo int            `json:"postedDaysAgo" yaml:"postedDaysAgo" validate:"gte=0"`
	ApplyURL      string         `json:"applyUrl" yaml:"applyUrl" validate:"omitempty,url"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// ScoredJob is a job posting annotated with its match score for one preference profile
type ScoredJob struct {
	JobPosting
	MatchScore int `json:"matchScore"`
}
