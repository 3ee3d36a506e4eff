package plan

import "slices"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPlanned   Status = "planned"
)

// PlaceholderImage is the image every legacy plan carries until real artwork exists.
const PlaceholderImage = "/images/plans/placeholder.svg"

// AnnualPlan is the canonical yearly plan. Name doubles as the plan's identifier;
// the Zh fields carry the secondary-language variant.
type AnnualPlan struct {
	Name          string   `json:"name"`
	NameZh        string   `json:"nameZh"`
	Description   string   `json:"description"`
	DescriptionZh string   `json:"descriptionZh"`
	Year          int      `json:"year"`
	Objectives    []string `json:"objectives"`
	ObjectivesZh  []string `json:"objectivesZh"`
}

// Plan is the older view-model still used by the plan cards.
type Plan struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Slogan string   `json:"slogan"`
	Goals  []string `json:"goals"`
	Icon   string   `json:"icon"`
	Image  string   `json:"image"`
	Status Status   `json:"status"`
	Year   int      `json:"year"`
}

// StatusForYear compares a plan year with the current calendar year.
func StatusForYear(year, currentYear int) Status {
	switch {
	case year == currentYear:
		return StatusActive
	case year < currentYear:
		return StatusCompleted
	default:
		return StatusPlanned
	}
}

var statusIcons = map[Status]string{
	StatusActive:    "rocket",
	StatusCompleted: "trophy",
	StatusPlanned:   "calendar",
}

func IconForStatus(s Status) string {
	return statusIcons[s]
}

// ConvertAnnualPlanToPlan derives the legacy shape. currentYear is passed in so the
// result depends on nothing but its arguments.
func ConvertAnnualPlanToPlan(ap AnnualPlan, currentYear int) Plan {
	status := StatusForYear(ap.Year, currentYear)
	goals := slices.Clone(ap.Objectives)
	if goals == nil {
		goals = []string{}
	}
	return Plan{
		ID:     ap.Name,
		Name:   ap.Name,
		Slogan: ap.Description,
		Goals:  goals,
		Icon:   IconForStatus(status),
		Image:  PlaceholderImage,
		Status: status,
		Year:   ap.Year,
	}
}

func ConvertAnnualPlans(plans []AnnualPlan, currentYear int) []Plan {
	out := make([]Plan, len(plans))
	for i, ap := range plans {
		out[i] = ConvertAnnualPlanToPlan(ap, currentYear)
	}
	return out
}

// FindByYear returns the first plan for year, or nil.
func FindByYear(plans []AnnualPlan, year int) *AnnualPlan {
	for i := range plans {
		if plans[i].Year == year {
			p := plans[i]
			return &p
		}
	}
	return nil
}

// FindByName returns the plan called name, or nil.
func FindByName(plans []AnnualPlan, name string) *AnnualPlan {
	for i := range plans {
		if plans[i].Name == name {
			p := plans[i]
			return &p
		}
	}
	return nil
}
