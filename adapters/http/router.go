package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/tracing"
)

const ViewPrefix = "/api/view"

type Handlers struct {
	Resume  *ResumeHandler
	Plan    *PlanHandler
	Project *ProjectHandler
	Blog    *BlogHandler
	Idea    *IdeaHandler
}

type RateLimit struct {
	Limiter  service.RateLimiter
	Requests int
	Window   time.Duration
}

// NewRouter wires the view routes. A zero RateLimit disables limiting.
func NewRouter(h Handlers, limit RateLimit, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		tracing.GinMiddleware(),
		LoggerMiddleware(log),
		ErrorMiddleware(log),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthDTO{Status: "UP", Time: time.Now().UTC()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	view := router.Group(ViewPrefix)
	view.Use(RateLimitMiddleware(limit.Limiter, limit.Requests, limit.Window, log))
	{
		resume := view.Group("/resume")
		{
			resume.GET("", h.Resume.GetResume)
			resume.GET("/personal", h.Resume.GetPersonalInfo)
			resume.GET("/education", h.Resume.GetEducation)
			resume.GET("/experience", h.Resume.GetExperience)
			resume.GET("/research", h.Resume.GetResearch)
			resume.GET("/publications", h.Resume.GetPublications)
			resume.GET("/awards", h.Resume.GetAwards)
			resume.GET("/recent", h.Resume.GetRecentUpdates)
		}

		plans := view.Group("/plans")
		{
			plans.GET("", h.Plan.ListAnnualPlans)
			plans.GET("/legacy", h.Plan.ListLegacyPlans)
			plans.GET("/current", h.Plan.GetCurrentPlan)
			plans.GET("/:name", h.Plan.GetPlan)
			plans.GET("/:name/projects", h.Plan.ListPlanProjects)
		}

		projects := view.Group("/projects")
		{
			projects.GET("", h.Project.ListProjects)
			projects.GET("/legacy", h.Project.ListLegacyProjects)
		}

		blog := view.Group("/blog")
		{
			blog.GET("", h.Blog.ListPosts)
			blog.GET("/rss", h.Blog.GenerateRSS)
			blog.GET("/:id", h.Blog.GetPost)
		}

		view.GET("/ideas", h.Idea.ListIdeas)
	}

	return router
}
