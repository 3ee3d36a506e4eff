package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/resume-portal/internal/application/service"
	resumeUC "github.com/khoahotran/resume-portal/internal/application/usecase/resume"
	"github.com/khoahotran/resume-portal/internal/domain/resume"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type ResumeHandler struct {
	resumeUseCase *resumeUC.ResumeUseCase
	view          *ViewSupport
	logger        logger.Logger
}

func NewResumeHandler(uc *resumeUC.ResumeUseCase, view *ViewSupport, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase: uc,
		view:          view,
		logger:        log,
	}
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	data, err := h.resumeUseCase.FetchResume(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	if data != nil {
		resolveLogos(data.Education.Content, h.view.images)
		resolveLogos(data.Experience.Content, h.view.images)
		resolveLogos(data.Research.Content, h.view.images)
	}
	h.view.served(c, "resume", "", lang, false)
	c.JSON(http.StatusOK, data)
}

func (h *ResumeHandler) GetPersonalInfo(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	info, err := h.resumeUseCase.FetchPersonalInfo(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "resume.personal", "", lang, false)
	c.JSON(http.StatusOK, info)
}

func (h *ResumeHandler) serveList(
	c *gin.Context,
	resource string,
	fetch func(ctx context.Context, lang string) ([]resume.TimelineEntry, error),
) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	entries, err := fetch(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	resolveLogos(entries, h.view.images)
	h.view.served(c, resource, "", lang, false)
	c.JSON(http.StatusOK, entries)
}

// resolveLogos rewrites logo paths in place.
func resolveLogos(entries []resume.TimelineEntry, images service.ImageResolver) {
	for i := range entries {
		if entries[i].Logo == nil {
			continue
		}
		resolved := images.Resolve(*entries[i].Logo)
		entries[i].Logo = &resolved
	}
}

func (h *ResumeHandler) GetEducation(c *gin.Context) {
	h.serveList(c, "resume.education", h.resumeUseCase.FetchEducation)
}

func (h *ResumeHandler) GetExperience(c *gin.Context) {
	h.serveList(c, "resume.experience", h.resumeUseCase.FetchExperience)
}

func (h *ResumeHandler) GetResearch(c *gin.Context) {
	h.serveList(c, "resume.research", h.resumeUseCase.FetchResearch)
}

func (h *ResumeHandler) GetPublications(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	titles, err := h.resumeUseCase.FetchPublications(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "resume.publications", "", lang, false)
	c.JSON(http.StatusOK, titles)
}

func (h *ResumeHandler) GetAwards(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	awards, err := h.resumeUseCase.FetchAwards(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "resume.awards", "", lang, false)
	c.JSON(http.StatusOK, awards)
}

func (h *ResumeHandler) GetRecentUpdates(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	updates, err := h.resumeUseCase.FetchRecentUpdates(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "resume.recent", "", lang, false)
	c.JSON(http.StatusOK, updates)
}
