package schemas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/jobfit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Preferences(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{"default profile", `{"roleKeywords":"","preferredLocations":[],"preferredMode":[],"experienceLevel":"","skills":"","minMatchScore":40}`, false},
		{"null lists", `{"preferredLocations":null,"preferredMode":null,"minMatchScore":0}`, false},
		{"missing threshold", `{"roleKeywords":"go"}`, true},
		{"threshold too high", `{"minMatchScore":101}`, true},
		{"unknown mode", `{"preferredMode":["Office"],"minMatchScore":40}`, true},
		{"wrong type", `{"skills":["go"],"minMatchScore":40}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Preferences, []byte(tt.doc))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateValue_Records(t *testing.T) {
	prefs := types.DefaultPreferences()
	assert.NoError(t, ValidateValue(Preferences, prefs))

	doc := types.DefaultResumeDocument()
	assert.NoError(t, ValidateValue(ResumeDocument, doc))

	doc.Template = "fancy"
	assert.Error(t, ValidateValue(ResumeDocument, doc))

	digest := types.Digest{
		Date:        "2026-03-09",
		GeneratedAt: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		Jobs: []types.ScoredJob{
			{JobPosting: types.JobPosting{ID: 1, Title: "Go Developer", Company: "Co"}, MatchScore: 55},
		},
	}
	assert.NoError(t, ValidateValue(Digest, digest))

	digest.Date = "09/03/2026"
	assert.Error(t, ValidateValue(Digest, digest))

	history := []types.StatusChange{{JobID: 1, Status: types.StatusApplied, ChangedAt: time.Now()}}
	assert.NoError(t, ValidateValue(StatusHistory, history))

	assert.NoError(t, ValidateValue(Statuses, map[int]types.Status{3: types.StatusRejected}))
	assert.Error(t, ValidateValue(Statuses, map[int]string{3: "Ghosted"}))

	assert.NoError(t, ValidateValue(SavedJobs, []int{1, 5}))
	assert.Error(t, ValidateValue(SavedJobs, []int{1, 1}))

	assert.NoError(t, ValidateValue(ProofLinks, types.ProofLinks{}))
	assert.NoError(t, ValidateValue(TestStatus, types.TestStatus{"save-job": true}))
	assert.NoError(t, ValidateValue(Submission, types.Submission{Steps: []types.CheckItem{{ID: "step1"}}}))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Preferences, []byte(`{ invalid json }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(valid, []byte(`[{"id":1,"title":"Go Developer","company":"Co","postedDaysAgo":2}]`), 0o644))
	assert.NoError(t, ValidateFile(JobCatalog, valid))

	invalid := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`[{"id":1,"title":"","company":"Co"}]`), 0o644))
	var validationErr *ValidationError
	require.ErrorAs(t, ValidateFile(JobCatalog, invalid), &validationErr)

	err := ValidateFile(JobCatalog, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"name": "test"}`))
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"person": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "person", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}
