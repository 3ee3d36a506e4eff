package project

import "slices"

// PlaceholderImage is shown for projects that predate uploaded screenshots.
const PlaceholderImage = "/images/projects/placeholder.svg"

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Year        int      `json:"year"`
	AnnualPlan  string   `json:"annualPlan"`
}

// ProjectWithPlan is the older project card shape.
type ProjectWithPlan struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Year        int      `json:"year"`
	PlanID      string   `json:"planId"`
	Image       string   `json:"image"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
	DemoURL     *string  `json:"demoUrl,omitempty"`
}

func ToProjectWithPlan(p Project) ProjectWithPlan {
	tags := slices.Clone(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ProjectWithPlan{
		ID:          p.ID,
		Title:       p.Name,
		Description: p.Description,
		Tags:        tags,
		Year:        p.Year,
		PlanID:      p.AnnualPlan,
		Image:       PlaceholderImage,
	}
}

func ToProjectsWithPlan(projects []Project) []ProjectWithPlan {
	out := make([]ProjectWithPlan, len(projects))
	for i, p := range projects {
		out[i] = ToProjectWithPlan(p)
	}
	return out
}

// FilterByPlan keeps the projects whose plan reference equals planName. The result
// is never nil.
func FilterByPlan(projects []Project, planName string) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.AnnualPlan == planName {
			out = append(out, p)
		}
	}
	return out
}
