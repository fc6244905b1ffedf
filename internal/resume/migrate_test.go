package resume

import (
	"testing"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Envelope(t *testing.T) {
	raw := `{
		"resume": {
			"personal": {"name": "Ana", "email": "ana@example.com"},
			"summary": "Go developer",
			"education": [{"institution": "MIT", "degree": "BS", "year": "2019"}],
			"experience": [],
			"projects": [{"id": 1, "title": "Relay", "description": "d", "techStack": ["Go"], "liveUrl": "https://relay.dev", "githubUrl": ""}],
			"skills": {"technical": ["Go"], "soft": [], "tools": ["Git"]}
		},
		"template": "modern",
		"color": "hsl(220, 60%, 35%)"
	}`

	doc, err := Migrate([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "modern", doc.Template)
	assert.Equal(t, "hsl(220, 60%, 35%)", doc.Color)
	assert.Equal(t, "Ana", doc.Resume.Personal.Name)
	require.Len(t, doc.Resume.Projects, 1)
	assert.Equal(t, "1", doc.Resume.Projects[0].ID)
	assert.Equal(t, []string{"Go"}, doc.Resume.Projects[0].TechStack)
	assert.Equal(t, "https://relay.dev", doc.Resume.Projects[0].LiveURL)
	assert.Equal(t, []string{"Git"}, doc.Resume.Skills.Tools)
}

func TestMigrate_EnvelopeDefaults(t *testing.T) {
	doc, err := Migrate([]byte(`{"resume": {"summary": "x"}}`))

	require.NoError(t, err)
	assert.Equal(t, types.TemplateClassic, doc.Template)
	assert.Equal(t, types.Palette[0], doc.Color)
	assert.Equal(t, []types.Education{}, doc.Resume.Education)
	assert.Equal(t, []types.Experience{}, doc.Resume.Experience)
	assert.Equal(t, []types.Project{}, doc.Resume.Projects)
	assert.Equal(t, types.Skills{Technical: []string{}, Soft: []string{}, Tools: []string{}}, doc.Resume.Skills)
}

func TestMigrate_UnknownTemplateFallsBack(t *testing.T) {
	doc, err := Migrate([]byte(`{"resume": {}, "template": "fancy"}`))

	require.NoError(t, err)
	assert.Equal(t, types.TemplateClassic, doc.Template)
}

func TestMigrate_BareResume(t *testing.T) {
	doc, err := Migrate([]byte(`{"personal": {"name": "Ben"}, "summary": "s"}`))

	require.NoError(t, err)
	assert.Equal(t, "Ben", doc.Resume.Personal.Name)
	assert.Equal(t, types.TemplateClassic, doc.Template)
	assert.Equal(t, types.Palette[0], doc.Color)
}

func TestMigrate_FlatSkillsString(t *testing.T) {
	doc, err := Migrate([]byte(`{"resume": {"skills": " Go, SQL ,, Docker ,"}}`))

	require.NoError(t, err)
	assert.Equal(t, types.Skills{
		Technical: []string{"Go", "SQL", "Docker"},
		Soft:      []string{},
		Tools:     []string{},
	}, doc.Resume.Skills)
}

func TestMigrate_LegacyProjects(t *testing.T) {
	raw := `{"resume": {"projects": [
		{"name": "Relay", "description": "event bus", "link": "github.com/ana/relay"},
		{"description": "no name"}
	]}}`

	doc, err := Migrate([]byte(raw))

	require.NoError(t, err)
	require.Len(t, doc.Resume.Projects, 2)

	first := doc.Resume.Projects[0]
	assert.Equal(t, ProjectID(0, "Relay"), first.ID)
	assert.Equal(t, "Relay", first.Title)
	assert.Equal(t, "event bus", first.Description)
	assert.Equal(t, []string{}, first.TechStack)
	assert.Equal(t, "github.com/ana/relay", first.LiveURL)
	assert.Equal(t, "", first.GitHubURL)

	second := doc.Resume.Projects[1]
	assert.Equal(t, "", second.Title)
	assert.Equal(t, "", second.LiveURL)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMigrate_IsDeterministic(t *testing.T) {
	raw := []byte(`{"resume": {"skills": "Go", "projects": [{"name": "Relay"}]}}`)

	a, err := Migrate(raw)
	require.NoError(t, err)
	b, err := Migrate(raw)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMigrate_CanonicalRecordUnchanged(t *testing.T) {
	doc := types.DefaultResumeDocument()
	doc.Resume = Sample()
	doc.Template = types.TemplateMinimal

	raw := `{"resume": {
		"personal": {"name": "Alex Johnson", "email": "alex.johnson@example.com", "phone": "(555) 123-4567",
			"location": "San Francisco, CA", "github": "github.com/alexj", "linkedin": "linkedin.com/in/alexj"},
		"summary": "` + doc.Resume.Summary + `",
		"education": [{"institution": "University of California, Berkeley", "degree": "B.S. Computer Science", "year": "2016"}],
		"experience": [
			{"company": "TechCorp", "role": "Senior Engineer", "duration": "2020 - Present",
				"description": "Led a team of 5 engineers to rebuild the core product catalog. Improved load times by 40%."},
			{"company": "StartupInc", "role": "Software Engineer", "duration": "2016 - 2020",
				"description": "Developed full-stack features for a high-growth e-commerce platform."}
		],
		"projects": [{"id": "` + doc.Resume.Projects[0].ID + `", "title": "AI Resume Builder",
			"description": "A web application to generate ATS-friendly resumes using AI.",
			"techStack": ["JavaScript", "HTML/CSS", "LocalStorage"], "liveUrl": "https://resume.ai",
			"githubUrl": "github.com/alexj/resume-builder"}],
		"skills": {"technical": ["JavaScript", "TypeScript", "React", "Node.js", "Python"],
			"soft": ["Leadership", "Communication"], "tools": ["Git", "Docker", "AWS"]}
	}, "template": "minimal", "color": "hsl(168, 60%, 40%)"}`

	got, err := Migrate([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestMigrate_Errors(t *testing.T) {
	_, err := Migrate([]byte(`{not json`))
	assert.ErrorContains(t, err, "failed to parse resume JSON")

	_, err = Migrate([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = Migrate([]byte(`{"resume": {"personal": "nobody"}}`))
	assert.ErrorContains(t, err, "failed to decode resume")
}

func TestMigrate_NullRecord(t *testing.T) {
	doc, err := Migrate([]byte(`null`))

	require.NoError(t, err)
	assert.Equal(t, types.DefaultResumeDocument(), doc)
}
