package resume

import "github.com/jonathan/jobfit/internal/types"

// Sample returns a filled-in resume for demos and previews.
func Sample() types.Resume {
	return types.Resume{
		Personal: types.Personal{
			Name:     "Alex Johnson",
			Email:    "alex.johnson@example.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
			GitHub:   "github.com/alexj",
			LinkedIn: "linkedin.com/in/alexj",
		},
		Summary: "Senior Software Engineer with 8+ years of experience building scalable web applications. " +
			"Expert in JavaScript, React, and Node.js. Passionate about clean code and user-centric design.",
		Education: []types.Education{
			{Institution: "University of California, Berkeley", Degree: "B.S. Computer Science", Year: "2016"},
		},
		Experience: []types.Experience{
			{
				Company:     "TechCorp",
				Role:        "Senior Engineer",
				Duration:    "2020 - Present",
				Description: "Led a team of 5 engineers to rebuild the core product catalog. Improved load times by 40%.",
			},
			{
				Company:     "StartupInc",
				Role:        "Software Engineer",
				Duration:    "2016 - 2020",
				Description: "Developed full-stack features for a high-growth e-commerce platform.",
			},
		},
		Projects: []types.Project{
			{
				ID:          ProjectID(0, "AI Resume Builder"),
				Title:       "AI Resume Builder",
				Description: "A web application to generate ATS-friendly resumes using AI.",
				TechStack:   []string{"JavaScript", "HTML/CSS", "LocalStorage"},
				LiveURL:     "https://resume.ai",
				GitHubURL:   "github.com/alexj/resume-builder",
			},
		},
		Skills: types.Skills{
			Technical: []string{"JavaScript", "TypeScript", "React", "Node.js", "Python"},
			Soft:      []string{"Leadership", "Communication"},
			Tools:     []string{"Git", "Docker", "AWS"},
		},
	}
}
