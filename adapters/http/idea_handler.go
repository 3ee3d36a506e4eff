package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ideaUC "github.com/khoahotran/resume-portal/internal/application/usecase/idea"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type IdeaHandler struct {
	ideaUseCase *ideaUC.IdeaUseCase
	view        *ViewSupport
	logger      logger.Logger
}

func NewIdeaHandler(uc *ideaUC.IdeaUseCase, view *ViewSupport, log logger.Logger) *IdeaHandler {
	return &IdeaHandler{ideaUseCase: uc, view: view, logger: log}
}

// ListIdeas returns ideas ordered by board column.
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	ideas, err := h.ideaUseCase.FetchIdeas(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "ideas", "", lang, false)
	c.JSON(http.StatusOK, ideas)
}
