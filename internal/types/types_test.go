//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPosting_Validate(t *testing.T) {
	tests := []struct {
		name    string
		job     JobPosting
		wantErr bool
	}{
		{
			name: "valid posting",
			job: JobPosting{
				ID: 1, Title: "Backend Engineer", Company: "Acme",
				Mode: ModeRemote, Experience: Experience1To3,
				PostedDaysAgo: 3, ApplyURL: "https://acme.example.com/jobs/1",
			},
		},
		{
			name:    "missing title",
			job:     JobPosting{ID: 2, Company: "Acme"},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			job:     JobPosting{ID: 3, Title: "SRE", Company: "Acme", Mode: "Floating"},
			wantErr: true,
		},
		{
			name:    "negative age",
			job:     JobPosting{ID: 4, Title: "SRE", Company: "Acme", PostedDaysAgo: -1},
			wantErr: true,
		},
		{
			name:    "bad apply url",
			job:     JobPosting{ID: 5, Title: "SRE", Company: "Acme", ApplyURL: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, 40, prefs.MinMatchScore)
	assert.Empty(t, prefs.RoleKeywords)
	assert.Empty(t, prefs.PreferredLocations)
	assert.Empty(t, prefs.PreferredMode)
	assert.Empty(t, prefs.ExperienceLevel)
	assert.Empty(t, prefs.Skills)
	assert.False(t, prefs.HasPreferences())
	require.NoError(t, prefs.Validate())
}

func TestPreferenceProfile_HasPreferences(t *testing.T) {
	tests := []struct {
		name  string
		prefs PreferenceProfile
		want  bool
	}{
		{"threshold only", PreferenceProfile{MinMatchScore: 70}, false},
		{"whitespace keywords", PreferenceProfile{RoleKeywords: "  "}, false},
		{"keywords", PreferenceProfile{RoleKeywords: "go"}, true},
		{"locations", PreferenceProfile{PreferredLocations: []string{"Pune"}}, true},
		{"modes", PreferenceProfile{PreferredMode: []WorkMode{ModeHybrid}}, true},
		{"experience", PreferenceProfile{ExperienceLevel: ExperienceFresher}, true},
		{"skills", PreferenceProfile{Skills: "react"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prefs.HasPreferences())
		})
	}
}

func TestPreferenceProfile_Validate(t *testing.T) {
	bad := PreferenceProfile{MinMatchScore: 101}
	assert.Error(t, bad.Validate())

	badMode := PreferenceProfile{PreferredMode: []WorkMode{"Anywhere"}}
	assert.Error(t, badMode.Validate())

	good := PreferenceProfile{PreferredMode: []WorkMode{ModeRemote}, ExperienceLevel: Experience0To1, MinMatchScore: 0}
	assert.NoError(t, good.Validate())
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"react", "node.js", "go"}, SplitTerms(" React, ,Node.js ,GO,"))
	assert.Empty(t, SplitTerms(""))
	assert.Empty(t, SplitTerms(" , ,"))
}

func TestParseStatus(t *testing.T) {
	for _, st := range AllStatuses {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStatus("applied")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown application status")
}

func TestATSScore_Top(t *testing.T) {
	score := ATSScore{Suggestions: []string{"a", "b", "c"}}

	assert.Equal(t, []string{"a", "b"}, score.Top(2))
	assert.Equal(t, []string{"a", "b", "c"}, score.Top(5))
	assert.Empty(t, score.Top(-1))
}

func TestResumeDocument_Defaults(t *testing.T) {
	doc := DefaultResumeDocument()

	assert.Equal(t, TemplateClassic, doc.Template)
	assert.Equal(t, Palette[0], doc.Color)
	assert.NotNil(t, doc.Resume.Projects)
	assert.Equal(t, 0, doc.Resume.Skills.Count())
	require.NoError(t, doc.Validate())

	doc.Template = "fancy"
	assert.Error(t, doc.Validate())
}

func TestEducation_Complete(t *testing.T) {
	assert.True(t, Education{Institution: "MIT", Degree: "BS", Year: "2020"}.Complete())
	assert.False(t, Education{Institution: "MIT", Degree: "BS"}.Complete())
}
