package ranking

import (
	"testing"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
)

func baseJob() types.JobPosting {
	return types.JobPosting{
		ID:            1,
		Title:         "Frontend Engineer",
		Company:       "Acme",
		Location:      "Bangalore",
		Mode:          types.ModeHybrid,
		Experience:    types.Experience1To3,
		Description:   "Build dashboards with modern tooling.",
		Skills:        []string{"React", "TypeScript"},
		SalaryRange:   "₹10-15 LPA",
		Source:        "Naukri",
		PostedDaysAgo: 5,
	}
}

func TestScore_TitleKeywordOnly(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.RoleKeywords = "frontend"

	assert.Equal(t, 25, Score(baseJob(), prefs))
}

func TestScore_RecentLinkedInWithoutPreferences(t *testing.T) {
	job := baseJob()
	job.Source = "LinkedIn"
	job.PostedDaysAgo = 0

	assert.Equal(t, 10, Score(job, types.DefaultPreferences()))
}

func TestScore_EmptyPreferencesScoreZero(t *testing.T) {
	assert.Equal(t, 0, Score(baseJob(), types.DefaultPreferences()))
}

func TestScore_DescriptionKeywordIndependentOfTitle(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.RoleKeywords = "dashboards"

	breakdown := Explain(baseJob(), prefs)
	assert.Equal(t, []string{RuleDescriptionKeyword}, breakdown.Names())
	assert.Equal(t, 15, breakdown.Total())
}

func TestScore_KeywordsTrimmedAndCaseInsensitive(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.RoleKeywords = " , FRONTEND ,  "

	assert.Equal(t, 25, Score(baseJob(), prefs))
}

func TestScore_LocationIsCaseSensitive(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.PreferredLocations = []string{"bangalore"}
	assert.Equal(t, 0, Score(baseJob(), prefs))

	prefs.PreferredLocations = []string{"Pune", "Bangalore"}
	assert.Equal(t, 15, Score(baseJob(), prefs))
}

func TestScore_ModeAndExperience(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.PreferredMode = []types.WorkMode{types.ModeRemote, types.ModeHybrid}
	prefs.ExperienceLevel = types.Experience1To3

	breakdown := Explain(baseJob(), prefs)
	assert.Equal(t, []string{RuleMode, RuleExperience}, breakdown.Names())
	assert.Equal(t, 20, breakdown.Total())
}

func TestScore_SkillOverlapIsBidirectional(t *testing.T) {
	tests := []struct {
		name      string
		userSkill string
		jobSkills []string
		want      int
	}{
		{"exact", "react", []string{"React"}, 15},
		{"user skill inside job skill", "java", []string{"JavaScript"}, 15},
		{"job skill inside user skill", "typescript, react native", []string{"React"}, 15},
		{"no overlap", "python", []string{"React", "TypeScript"}, 0},
		{"no job skills", "python", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := baseJob()
			job.Skills = tt.jobSkills
			prefs := types.DefaultPreferences()
			prefs.Skills = tt.userSkill

			assert.Equal(t, tt.want, Score(job, prefs))
		})
	}
}

func TestScore_CappedAtHundred(t *testing.T) {
	job := baseJob()
	job.Description = "Frontend role building React dashboards"
	job.Source = "LinkedIn"
	job.PostedDaysAgo = 1

	prefs := types.PreferenceProfile{
		RoleKeywords:       "frontend",
		PreferredLocations: []string{"Bangalore"},
		PreferredMode:      []types.WorkMode{types.ModeHybrid},
		ExperienceLevel:    types.Experience1To3,
		Skills:             "react",
		MinMatchScore:      40,
	}

	breakdown := Explain(job, prefs)
	assert.Len(t, breakdown.Rules, 8)
	assert.Equal(t, 100, breakdown.Total())
	assert.Equal(t, 100, Score(job, prefs))
}

func TestScore_Deterministic(t *testing.T) {
	prefs := types.DefaultPreferences()
	prefs.RoleKeywords = "engineer"
	prefs.Skills = "react"

	first := Score(baseJob(), prefs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(baseJob(), prefs))
	}
}

func TestScore_AddingMatchingKeywordNeverDecreases(t *testing.T) {
	prefs := types.DefaultPreferences()
	before := Score(baseJob(), prefs)

	prefs.RoleKeywords = "engineer"
	after := Score(baseJob(), prefs)

	assert.GreaterOrEqual(t, after, before)
	assert.Greater(t, after, before)
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{100, BandGreen},
		{80, BandGreen},
		{79, BandAmber},
		{60, BandAmber},
		{59, BandNeutral},
		{40, BandNeutral},
		{39, BandGrey},
		{0, BandGrey},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %d", tt.score)
	}
}
