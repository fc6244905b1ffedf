package ats

import (
	"strings"
	"testing"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainResume has every v2 section except contact links and no action verbs or numbers.
func plainResume() types.Resume {
	r := types.EmptyResume()
	r.Personal.Name = "Sam Rivera"
	r.Personal.Email = "sam@example.com"
	r.Summary = "Engineer focused on reliable Go services for payment systems"
	r.Experience = []types.Experience{{Company: "Paywave", Role: "Engineer", Duration: "2021-2024", Description: "Worked on payment APIs"}}
	r.Education = []types.Education{{Institution: "State University", Degree: "B.S.", Year: "2020"}}
	r.Skills = types.Skills{
		Technical: []string{"Go", "SQL", "Kafka"},
		Soft:      []string{"Mentoring"},
		Tools:     []string{"Docker", "Git"},
	}
	r.Projects = []types.Project{{Title: "Ledger", Description: "Payment reconciliation tool"}}
	return r
}

func TestScore_EmptyResume(t *testing.T) {
	got := Score(types.EmptyResume())

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, string(PolicyV2), got.Policy)
	assert.Equal(t, []string{
		"Add Name (+10)",
		"Add Email (+10)",
		"Summary > 50 chars (+10)",
		"Add Experience (+15)",
		"Add Education (+10)",
		"Add 5+ Skills (+10)",
		"Add 1+ Project (+10)",
		"Add Phone (+5)",
		"Add LinkedIn (+5)",
		"Add GitHub (+5)",
		"Use Action Verbs in Summary/Bullets (+10)",
	}, got.Suggestions)
	assert.Len(t, got.Top(MaxSuggestions), 5)
}

func TestScore_CoreSectionsWithoutLinksOrVerbs(t *testing.T) {
	r := plainResume()
	require.Len(t, r.Summary, 60)

	got := Score(r)

	assert.Equal(t, 75, got.Score)
	assert.Equal(t, []string{
		"Add Phone (+5)",
		"Add LinkedIn (+5)",
		"Add GitHub (+5)",
		"Use Action Verbs in Summary/Bullets (+10)",
	}, got.Suggestions)
}

func TestScore_ActionVerbAddsPoints(t *testing.T) {
	r := plainResume()
	r.Experience[0].Description = "Built payment APIs"

	got := Score(r)

	assert.Equal(t, 85, got.Score)
	assert.NotContains(t, got.Suggestions, "Use Action Verbs in Summary/Bullets (+10)")
}

func TestScore_ActionVerbMatchesBySubstring(t *testing.T) {
	r := plainResume()
	r.Summary = "Skilled engineer focused on reliable Go services for payment systems"

	got := Score(r)

	assert.Equal(t, 85, got.Score, `"skilled" contains "led"`)
}

func TestScore_CompleteResumeIsCapped(t *testing.T) {
	r := plainResume()
	r.Personal.Phone = "555-0100"
	r.Personal.LinkedIn = "linkedin.com/in/sam"
	r.Personal.GitHub = "github.com/sam"
	r.Projects[0].Description = "Delivered a reconciliation tool"

	got := Score(r)

	assert.Equal(t, 100, got.Score)
	assert.Empty(t, got.Suggestions)
	assert.Equal(t, "Strong Resume", Band(got.Score))
}

func TestScore_SummaryLengthCountsCharacters(t *testing.T) {
	r := plainResume()

	r.Summary = strings.Repeat("é", 50)
	assert.Contains(t, Score(r).Suggestions, "Summary > 50 chars (+10)")

	r.Summary = strings.Repeat("é", 51)
	assert.NotContains(t, Score(r).Suggestions, "Summary > 50 chars (+10)")
}

func TestScore_Deterministic(t *testing.T) {
	r := plainResume()
	assert.Equal(t, Score(r), Score(r))
}

func TestScore_Bounded(t *testing.T) {
	resumes := []types.Resume{types.EmptyResume(), plainResume(), {}}
	for _, r := range resumes {
		for _, p := range []Policy{PolicyV1, PolicyV2} {
			got := ScoreWith(p, r)
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
		}
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Strong Resume"},
		{71, "Strong Resume"},
		{70, "Getting There"},
		{41, "Getting There"},
		{40, "Needs Work"},
		{0, "Needs Work"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %d", tt.score)
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyV2, p)

	p, err = ParsePolicy("v1")
	require.NoError(t, err)
	assert.Equal(t, PolicyV1, p)

	_, err = ParsePolicy("v3")
	assert.ErrorContains(t, err, `unknown ats policy "v3"`)
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, "Getting There", BandFor(PolicyV2, 60))
	assert.Equal(t, "mid", BandFor(PolicyV1, 60))
}
