// Package resume upgrades stored resume records to the current shape and
// provides sample data and export checks.
package resume

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/jobfit/internal/types"
	"github.com/mitchellh/mapstructure"
)

// projectNamespace seeds the deterministic ids given to migrated projects
var projectNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("jobfit:resume:project"))

// Migrate decodes a stored resume record, either the {resume, template, color}
// envelope or a bare resume, and upgrades legacy shapes to the current one.
// Only undecodable input is an error.
func Migrate(raw []byte) (types.ResumeDocument, error) {
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return MigrateRecord(record)
}

// MigrateRecord is Migrate over an already decoded JSON object.
func MigrateRecord(record map[string]any) (types.ResumeDocument, error) {
	doc := types.DefaultResumeDocument()

	body := record
	if inner, ok := record["resume"].(map[string]any); ok {
		body = inner
		if tmpl, ok := record["template"].(string); ok && knownTemplate(tmpl) {
			doc.Template = tmpl
		}
		if color, ok := record["color"].(string); ok && color != "" {
			doc.Color = color
		}
	}

	normalized := upgrade(body)

	var r types.Resume
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to create resume decoder: %w", err)
	}
	if err := decoder.Decode(normalized); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to decode resume: %w", err)
	}

	doc.Resume = fillDefaults(r)
	return doc, nil
}

// upgrade rewrites legacy fields of a resume object. The input is not modified.
func upgrade(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		out[k] = v
	}

	if flat, ok := out["skills"].(string); ok {
		out["skills"] = map[string]any{
			"technical": splitSkills(flat),
			"soft":      []string{},
			"tools":     []string{},
		}
	}

	if projects, ok := out["projects"].([]any); ok && isLegacyProjectList(projects) {
		out["projects"] = upgradeProjects(projects)
	}

	return out
}

func splitSkills(flat string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(flat, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// isLegacyProjectList reports whether projects use the old {name, description, link}
// shape, judged by the first entry having no techStack.
func isLegacyProjectList(projects []any) bool {
	if len(projects) == 0 {
		return false
	}
	first, ok := projects[0].(map[string]any)
	if !ok {
		return false
	}
	stack, present := first["techStack"]
	return !present || stack == nil
}

func upgradeProjects(projects []any) []map[string]any {
	out := make([]map[string]any, 0, len(projects))
	for i, item := range projects {
		p, _ := item.(map[string]any)
		name := stringField(p, "name")
		out = append(out, map[string]any{
			"id":          ProjectID(i, name),
			"title":       name,
			"description": stringField(p, "description"),
			"techStack":   []string{},
			"liveUrl":     stringField(p, "link"),
			"githubUrl":   "",
		})
	}
	return out
}

// ProjectID returns the stable id assigned to the project at index with the given name.
func ProjectID(index int, name string) string {
	return uuid.NewSHA1(projectNamespace, []byte(fmt.Sprintf("%d:%s", index, name))).String()
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func knownTemplate(t string) bool {
	switch t {
	case types.TemplateClassic, types.TemplateModern, types.TemplateMinimal:
		return true
	}
	return false
}

// fillDefaults replaces nil lists with empty ones.
func fillDefaults(r types.Resume) types.Resume {
	if r.Education == nil {
		r.Education = []types.Education{}
	}
	if r.Experience == nil {
		r.Experience = []types.Experience{}
	}
	if r.Projects == nil {
		r.Projects = []types.Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].TechStack == nil {
			r.Projects[i].TechStack = []string{}
		}
	}
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Skills.Tools == nil {
		r.Skills.Tools = []string{}
	}
	return r
}
