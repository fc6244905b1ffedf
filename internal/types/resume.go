//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Resume templates
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateMinimal = "minimal"
)

// Palette lists the accent colours a resume can use. The first entry is the default.
var Palette = []string{
	"hsl(168, 60%, 40%)",
	"hsl(220, 60%, 35%)",
	"hsl(345, 60%, 35%)",
	"hsl(150, 50%, 30%)",
	"hsl(0, 0%, 25%)",
}

// Personal holds contact details
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Education is one education entry. All fields are free text.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Complete reports whether every field is filled in.
func (e Education) Complete() bool {
	return e.Institution != "" && e.Degree != "" && e.Year != ""
}

// Experience is one work experience entry
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is one project entry
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl"`
	GitHubURL   string   `json:"githubUrl"`
}

// Skills is the canonical three-category skills structure
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// Count returns the number of skills across all categories.
func (s Skills) Count() int {
	return len(s.Technical) + len(s.Soft) + len(s.Tools)
}

// Resume is the canonical resume record
type Resume struct {
	Personal   Personal     `json:"personal"`
	Summary    string       `json:"summary"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Skills     Skills       `json:"skills"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// EmptyResume returns a resume with every list initialised.
func EmptyResume() Resume {
	return Resume{
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Skills: Skills{
			Technical: []string{},
			Soft:      []string{},
			Tools:     []string{},
		},
	}
}

// ResumeDocument is the stored resume together with its presentation settings
type ResumeDocument struct {
	Resume   Resume `json:"resume"`
	Template string `json:"template" validate:"oneof=classic modern minimal"`
	Color    string `json:"color"`
}

// DefaultResumeDocument returns an empty resume with the default template and colour.
func DefaultResumeDocument() ResumeDocument {
	return ResumeDocument{
		Resume:   EmptyResume(),
		Template: TemplateClassic,
		Color:    Palette[0],
	}
}

// Validate validates the ResumeDocument using the validator.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
