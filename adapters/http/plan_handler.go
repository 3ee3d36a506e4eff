package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planUC "github.com/khoahotran/resume-portal/internal/application/usecase/plan"
	projectUC "github.com/khoahotran/resume-portal/internal/application/usecase/project"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type PlanHandler struct {
	planUseCase    *planUC.PlanUseCase
	projectUseCase *projectUC.ProjectUseCase
	view           *ViewSupport
	logger         logger.Logger
}

func NewPlanHandler(
	planUseCase *planUC.PlanUseCase,
	projectUseCase *projectUC.ProjectUseCase,
	view *ViewSupport,
	log logger.Logger,
) *PlanHandler {
	return &PlanHandler{
		planUseCase:    planUseCase,
		projectUseCase: projectUseCase,
		view:           view,
		logger:         log,
	}
}

func (h *PlanHandler) ListAnnualPlans(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	plans, err := h.planUseCase.FetchAnnualPlans(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "plans", "", lang, false)
	c.JSON(http.StatusOK, ToAnnualPlanDTOs(plans, h.planUseCase.CurrentYear()))
}

func (h *PlanHandler) ListLegacyPlans(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	plans, err := h.planUseCase.FetchLegacyPlans(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "plans.legacy", "", lang, false)
	c.JSON(http.StatusOK, ToLegacyPlanDTOs(plans, h.view.images))
}

// GetCurrentPlan answers null when no plan covers the current year.
func (h *PlanHandler) GetCurrentPlan(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	ap, err := h.planUseCase.FetchCurrentAnnualPlan(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	if ap == nil {
		h.view.served(c, "plans.current", "", lang, true)
		c.JSON(http.StatusOK, nil)
		return
	}
	h.view.served(c, "plans.current", ap.Name, lang, false)
	c.JSON(http.StatusOK, ToAnnualPlanDTO(*ap, h.planUseCase.CurrentYear()))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	name := c.Param("name")
	ap, err := h.planUseCase.FetchAnnualPlanByName(c.Request.Context(), lang, name)
	if err != nil {
		c.Error(err)
		return
	}
	if ap == nil {
		h.view.served(c, "plans.detail", name, lang, true)
		c.JSON(http.StatusOK, nil)
		return
	}
	h.view.served(c, "plans.detail", name, lang, false)
	c.JSON(http.StatusOK, ToAnnualPlanDTO(*ap, h.planUseCase.CurrentYear()))
}

// ListPlanProjects never fails on backend trouble; it answers [] instead.
func (h *PlanHandler) ListPlanProjects(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	name := c.Param("name")
	projects, err := h.projectUseCase.FetchProjectsByPlan(c.Request.Context(), lang, name)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "plans.projects", name, lang, len(projects) == 0)
	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}
