package plan

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/plan"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

const (
	PathAnnualPlans       = "/api/v1/plans/annual"
	PathCurrentAnnualPlan = "/api/v1/plans/annual/current"

	// currentSegment is the path segment the backend reserves for the current plan.
	currentSegment = "current"
)

// ErrFallbackExhausted is logged when neither the plan endpoint nor the plan list
// produced an answer. It never reaches callers.
var ErrFallbackExhausted = errors.New("annual plan fallback exhausted")

type rawAnnualPlan struct {
	Name          string               `json:"name"`
	NameZh        string               `json:"name_zh"`
	Description   string               `json:"description"`
	DescriptionZh string               `json:"description_zh"`
	Year          rawjson.Int          `json:"year"`
	Objectives    rawjson.List[string] `json:"objectives"`
	ObjectivesZh  rawjson.List[string] `json:"objectives_zh"`
}

func (r rawAnnualPlan) toDomain() plan.AnnualPlan {
	return plan.AnnualPlan{
		Name:          r.Name,
		NameZh:        r.NameZh,
		Description:   r.Description,
		DescriptionZh: r.DescriptionZh,
		Year:          int(r.Year),
		Objectives:    r.Objectives.Slice(),
		ObjectivesZh:  r.ObjectivesZh.Slice(),
	}
}

type PlanUseCase struct {
	backend service.Backend
	clock   service.Clock
	logger  logger.Logger
}

func NewPlanUseCase(backend service.Backend, clock service.Clock, log logger.Logger) *PlanUseCase {
	if clock == nil {
		clock = service.SystemClock
	}
	return &PlanUseCase{backend: backend, clock: clock, logger: log}
}

func (uc *PlanUseCase) FetchAnnualPlans(ctx context.Context, lang string) ([]plan.AnnualPlan, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}
	var raw rawjson.List[rawAnnualPlan]
	if err := uc.backend.Get(ctx, PathAnnualPlans, apiclient.Params{"lang": token}, &raw); err != nil {
		return nil, err
	}
	plans := make([]plan.AnnualPlan, 0, len(raw))
	for _, r := range raw {
		plans = append(plans, r.toDomain())
	}
	return plans, nil
}

// FetchLegacyPlans returns the annual plans in the older Plan shape, with status
// derived from the clock's year.
func (uc *PlanUseCase) FetchLegacyPlans(ctx context.Context, lang string) ([]plan.Plan, error) {
	annual, err := uc.FetchAnnualPlans(ctx, lang)
	if err != nil {
		return nil, err
	}
	return plan.ConvertAnnualPlans(annual, uc.CurrentYear()), nil
}

func (uc *PlanUseCase) CurrentYear() int {
	return uc.clock().Year()
}

// FetchCurrentAnnualPlan is best-effort: when the dedicated endpoint fails it picks
// the plan for the clock's year out of the full list, and when that fails too it
// returns nil without an error.
func (uc *PlanUseCase) FetchCurrentAnnualPlan(ctx context.Context, lang string) (*plan.AnnualPlan, error) {
	year := uc.CurrentYear()
	return uc.fetchSingle(ctx, lang, PathCurrentAnnualPlan, "current", func(plans []plan.AnnualPlan) *plan.AnnualPlan {
		return plan.FindByYear(plans, year)
	})
}

// FetchAnnualPlanByName is best-effort in the same way as FetchCurrentAnnualPlan.
// A plan literally named "current" collides with the current-plan endpoint, so it is
// looked up in the full list only.
func (uc *PlanUseCase) FetchAnnualPlanByName(ctx context.Context, lang, name string) (*plan.AnnualPlan, error) {
	path := PathAnnualPlans + "/" + url.PathEscape(name)
	if name == currentSegment {
		path = ""
	}
	return uc.fetchSingle(ctx, lang, path, name, func(plans []plan.AnnualPlan) *plan.AnnualPlan {
		return plan.FindByName(plans, name)
	})
}

func (uc *PlanUseCase) fetchSingle(ctx context.Context, lang, path, key string, pick func([]plan.AnnualPlan) *plan.AnnualPlan) (*plan.AnnualPlan, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}

	var primaryErr error
	if path != "" {
		var raw *rawAnnualPlan
		primaryErr = uc.backend.Get(ctx, path, apiclient.Params{"lang": token}, &raw)
		if primaryErr == nil {
			metrics.RecordFallback("annual_plan", "primary")
			if raw == nil || raw.Name == "" {
				return nil, nil
			}
			p := raw.toDomain()
			return &p, nil
		}
		uc.logger.Warn("annual plan endpoint failed, falling back to plan list",
			zap.String("key", key), zap.Error(primaryErr))
	}

	plans, secondaryErr := uc.FetchAnnualPlans(ctx, token)
	if secondaryErr != nil {
		metrics.RecordFallback("annual_plan", "exhausted")
		uc.logger.Warn("annual plan unavailable, returning empty result",
			zap.String("key", key),
			zap.Error(errors.Join(ErrFallbackExhausted, primaryErr, secondaryErr)))
		return nil, nil
	}
	metrics.RecordFallback("annual_plan", "secondary")
	return pick(plans), nil
}
