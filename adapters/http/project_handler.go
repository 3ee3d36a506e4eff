package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/resume-portal/internal/application/usecase/project"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type ProjectHandler struct {
	projectUseCase *projectUC.ProjectUseCase
	view           *ViewSupport
	logger         logger.Logger
}

func NewProjectHandler(uc *projectUC.ProjectUseCase, view *ViewSupport, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: uc,
		view:           view,
		logger:         log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	projects, err := h.projectUseCase.FetchProjects(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "projects", "", lang, false)
	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}

func (h *ProjectHandler) ListLegacyProjects(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	projects, err := h.projectUseCase.FetchLegacyProjects(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "projects.legacy", "", lang, false)
	c.JSON(http.StatusOK, ToLegacyProjectDTOs(projects, h.view.images))
}
