package plan

import "github.com/khoahotran/resume-portal/internal/domain/icon"

type Kind string

const (
	KindProjectPlan Kind = "project_plan"
	KindAnnualPlan  Kind = "annual_plan"
	KindLegacyPlan  Kind = "legacy_plan"
)

// Display is what plan badges and headers render. The variant is fixed when the
// value is built, so renderers switch on Kind instead of probing fields.
type Display struct {
	Kind  Kind      `json:"kind"`
	Key   string    `json:"key"`
	Title string    `json:"title"`
	Year  int       `json:"year,omitempty"`
	Icon  icon.Icon `json:"icon"`
}

func DisplayFromAnnual(ap AnnualPlan, currentYear int) Display {
	status := StatusForYear(ap.Year, currentYear)
	return Display{
		Kind:  KindAnnualPlan,
		Key:   ap.Name,
		Title: ap.Name,
		Year:  ap.Year,
		Icon:  icon.LookupOr(IconForStatus(status), icon.Default),
	}
}

func DisplayFromLegacy(p Plan) Display {
	return Display{
		Kind:  KindLegacyPlan,
		Key:   p.ID,
		Title: p.Name,
		Year:  p.Year,
		Icon:  icon.LookupOr(p.Icon, icon.Default),
	}
}

// DisplayFromProjectRef describes the plan a project points at when only the
// reference is known.
func DisplayFromProjectRef(planName string) Display {
	return Display{
		Kind:  KindProjectPlan,
		Key:   planName,
		Title: planName,
		Icon:  icon.LookupOr("folder", icon.Default),
	}
}
