package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

// ResumeText renders a resume as plain text with upper-case section headings.
func ResumeText(r types.Resume) string {
	contact := make([]string, 0, 3)
	for _, v := range []string{r.Personal.Email, r.Personal.Phone, r.Personal.Location} {
		if v != "" {
			contact = append(contact, v)
		}
	}

	skills := make([]string, 0, r.Skills.Count())
	skills = append(skills, r.Skills.Technical...)
	skills = append(skills, r.Skills.Tools...)
	skills = append(skills, r.Skills.Soft...)

	lines := []string{
		strings.ToUpper(r.Personal.Name),
		strings.Join(contact, " | "),
		"",
		"SUMMARY",
		r.Summary,
		"",
		"SKILLS",
		strings.Join(skills, ", "),
		"",
		"EXPERIENCE",
	}
	for _, e := range r.Experience {
		lines = append(lines, fmt.Sprintf("%s - %s (%s)\n%s", e.Company, e.Role, e.Duration, e.Description))
	}

	projects := make([]string, 0, len(r.Projects))
	for _, p := range r.Projects {
		link := p.LiveURL
		if link == "" {
			link = p.GitHubURL
		}
		projects = append(projects, fmt.Sprintf("%s (%s)\n%s\nTech: %s",
			p.Title, link, p.Description, strings.Join(p.TechStack, ", ")))
	}
	lines = append(lines, "", "PROJECTS", strings.Join(projects, "\n\n"), "", "EDUCATION")

	for _, e := range r.Education {
		lines = append(lines, fmt.Sprintf("%s - %s (%s)", e.Institution, e.Degree, e.Year))
	}

	return strings.Join(lines, "\n")
}
