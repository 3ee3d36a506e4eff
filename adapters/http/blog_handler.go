package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	blogUC "github.com/khoahotran/resume-portal/internal/application/usecase/blog"
	"github.com/khoahotran/resume-portal/pkg/apperror"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type BlogHandler struct {
	blogUseCase *blogUC.BlogUseCase
	feedInfo    blogUC.FeedInfo
	view        *ViewSupport
	logger      logger.Logger
}

func NewBlogHandler(uc *blogUC.BlogUseCase, feedInfo blogUC.FeedInfo, view *ViewSupport, log logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: uc,
		feedInfo:    feedInfo,
		view:        view,
		logger:      log,
	}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	posts, err := h.blogUseCase.FetchPosts(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "blog", "", lang, false)
	c.JSON(http.StatusOK, ToPostDTOs(posts, h.view.images))
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	id := c.Param("id")
	p, err := h.blogUseCase.FetchPost(c.Request.Context(), lang, id)
	if err != nil {
		c.Error(err)
		return
	}
	h.view.served(c, "blog.post", id, lang, false)
	if p == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(*p, h.view.images))
}

func (h *BlogHandler) GenerateRSS(c *gin.Context) {
	lang, ok := h.view.lang(c)
	if !ok {
		return
	}
	feed, err := h.blogUseCase.BuildFeed(c.Request.Context(), lang, h.feedInfo, h.view.clock())
	if err != nil {
		c.Error(err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		c.Error(apperror.NewInternal("failed to encode RSS feed", err))
		return
	}
	h.view.served(c, "blog.rss", "", lang, false)
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
	h.logger.Debug("RSS feed served", zap.Int("item_count", len(feed.Items)))
}
