package project

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/project"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

const PathProjects = "/api/v1/projects"

// ErrFallbackExhausted is logged when both ways of listing a plan's projects
// failed. Callers get an empty list instead.
var ErrFallbackExhausted = errors.New("projects by plan fallback exhausted")

type rawProject struct {
	ID          rawjson.Scalar       `json:"id"`
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Tags        rawjson.List[string] `json:"tags"`
	Year        rawjson.Int          `json:"year"`
	AnnualPlan  string               `json:"annual_plan"`
}

func (r rawProject) toDomain() project.Project {
	return project.Project{
		ID:          r.ID.String(),
		Name:        rawjson.FirstNonEmpty(r.Name, r.Title),
		Description: r.Description,
		Tags:        r.Tags.Slice(),
		Year:        int(r.Year),
		AnnualPlan:  r.AnnualPlan,
	}
}

func toProjects(raw rawjson.List[rawProject]) []project.Project {
	out := make([]project.Project, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toDomain())
	}
	return out
}

func PlanProjectsPath(planName string) string {
	return "/api/v1/plans/" + url.PathEscape(planName) + "/projects"
}

type ProjectUseCase struct {
	backend service.Backend
	logger  logger.Logger
}

func NewProjectUseCase(backend service.Backend, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{backend: backend, logger: log}
}

func (uc *ProjectUseCase) FetchProjects(ctx context.Context, lang string) ([]project.Project, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}
	var raw rawjson.List[rawProject]
	if err := uc.backend.Get(ctx, PathProjects, apiclient.Params{"lang": token}, &raw); err != nil {
		return nil, err
	}
	return toProjects(raw), nil
}

func (uc *ProjectUseCase) FetchLegacyProjects(ctx context.Context, lang string) ([]project.ProjectWithPlan, error) {
	projects, err := uc.FetchProjects(ctx, lang)
	if err != nil {
		return nil, err
	}
	return project.ToProjectsWithPlan(projects), nil
}

// FetchProjectsByPlan never fails because of the backend. It tries the plan's own
// endpoint, then filters the full project list, then gives up with an empty list.
// Only an unsupported lang is reported as an error.
func (uc *ProjectUseCase) FetchProjectsByPlan(ctx context.Context, lang, planName string) ([]project.Project, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}

	var raw rawjson.List[rawProject]
	primaryErr := uc.backend.Get(ctx, PlanProjectsPath(planName), apiclient.Params{"lang": token}, &raw)
	if primaryErr == nil {
		metrics.RecordFallback("plan_projects", "primary")
		return toProjects(raw), nil
	}

	uc.logger.Warn("plan projects endpoint failed, filtering full project list",
		zap.String("plan", planName), zap.Error(primaryErr))

	all, secondaryErr := uc.FetchProjects(ctx, token)
	if secondaryErr != nil {
		metrics.RecordFallback("plan_projects", "exhausted")
		uc.logger.Warn("projects for plan unavailable, returning empty list",
			zap.String("plan", planName),
			zap.Error(errors.Join(ErrFallbackExhausted, primaryErr, secondaryErr)))
		return []project.Project{}, nil
	}

	metrics.RecordFallback("plan_projects", "secondary")
	return project.FilterByPlan(all, planName), nil
}
