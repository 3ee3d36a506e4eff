package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/icon"
	"github.com/khoahotran/resume-portal/internal/domain/plan"
	"github.com/khoahotran/resume-portal/internal/domain/post"
	"github.com/khoahotran/resume-portal/internal/domain/project"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

// ViewSupport carries the collaborators every view handler shares.
type ViewSupport struct {
	locale *i18n.Config
	events service.ViewEventPublisher
	images service.ImageResolver
	clock  service.Clock
	logger logger.Logger
}

func NewViewSupport(
	locale *i18n.Config,
	events service.ViewEventPublisher,
	images service.ImageResolver,
	clock service.Clock,
	log logger.Logger,
) *ViewSupport {
	if events == nil {
		events = service.NoopEvents
	}
	if images == nil {
		images = service.PassthroughImages
	}
	if clock == nil {
		clock = service.SystemClock
	}
	return &ViewSupport{locale: locale, events: events, images: images, clock: clock, logger: log}
}

// lang resolves the ?lang= query. On failure the error is attached to c and false
// is returned.
func (v *ViewSupport) lang(c *gin.Context) (string, bool) {
	lang, err := v.locale.Resolve(c.Query("lang"))
	if err != nil {
		c.Error(err)
		return "", false
	}
	return lang, true
}

// served publishes a view event. Publishing never fails the response.
func (v *ViewSupport) served(c *gin.Context, resource, key, lang string, degraded bool) {
	ev := service.ViewEvent{
		Resource:  resource,
		Key:       key,
		Lang:      lang,
		RequestID: GetRequestIDFromGinContext(c),
		Degraded:  degraded,
		At:        v.clock().UTC(),
	}
	if err := v.events.PublishView(c.Request.Context(), ev); err != nil {
		v.logger.Warn("Failed to publish view event", zap.String("resource", resource), zap.Error(err))
	}
}

// AnnualPlanDTO pairs an annual plan with its display variant.
type AnnualPlanDTO struct {
	plan.AnnualPlan
	Display plan.Display `json:"display"`
}

func ToAnnualPlanDTO(ap plan.AnnualPlan, currentYear int) AnnualPlanDTO {
	return AnnualPlanDTO{AnnualPlan: ap, Display: plan.DisplayFromAnnual(ap, currentYear)}
}

func ToAnnualPlanDTOs(plans []plan.AnnualPlan, currentYear int) []AnnualPlanDTO {
	out := make([]AnnualPlanDTO, len(plans))
	for i, ap := range plans {
		out[i] = ToAnnualPlanDTO(ap, currentYear)
	}
	return out
}

type LegacyPlanDTO struct {
	plan.Plan
	Display plan.Display    `json:"display"`
	Visual  icon.Renderable `json:"visual"`
}

func ToLegacyPlanDTOs(plans []plan.Plan, images service.ImageResolver) []LegacyPlanDTO {
	out := make([]LegacyPlanDTO, len(plans))
	for i, p := range plans {
		var artwork string
		p.Image, artwork = resolveArtwork(images, p.Image, plan.PlaceholderImage)
		out[i] = LegacyPlanDTO{
			Plan:    p,
			Display: plan.DisplayFromLegacy(p),
			Visual:  icon.Resolve(artwork, p.Icon, icon.Default),
		}
	}
	return out
}

type ProjectDTO struct {
	project.Project
	Plan plan.Display `json:"plan"`
}

func ToProjectDTOs(projects []project.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ProjectDTO{Project: p, Plan: plan.DisplayFromProjectRef(p.AnnualPlan)}
	}
	return out
}

type LegacyProjectDTO struct {
	project.ProjectWithPlan
	Visual icon.Renderable `json:"visual"`
}

func ToLegacyProjectDTOs(projects []project.ProjectWithPlan, images service.ImageResolver) []LegacyProjectDTO {
	out := make([]LegacyProjectDTO, len(projects))
	for i, p := range projects {
		var artwork string
		p.Image, artwork = resolveArtwork(images, p.Image, project.PlaceholderImage)
		out[i] = LegacyProjectDTO{
			ProjectWithPlan: p,
			Visual:          icon.Resolve(artwork, "folder", icon.Default),
		}
	}
	return out
}

// resolveArtwork returns the image URL to serve and the artwork the visual should
// prefer. Placeholders are served by the site itself, never through the resolver,
// and leave the visual to its icon.
func resolveArtwork(images service.ImageResolver, image, placeholder string) (string, string) {
	if image == "" || image == placeholder {
		return image, ""
	}
	resolved := images.Resolve(image)
	return resolved, resolved
}

// ToPostDTO returns a copy of p with its cover image resolved for the browser.
func ToPostDTO(p post.Post, images service.ImageResolver) post.Post {
	if p.CoverImage != nil {
		resolved := images.Resolve(*p.CoverImage)
		p.CoverImage = &resolved
	}
	return p
}

func ToPostDTOs(posts []post.Post, images service.ImageResolver) []post.Post {
	out := make([]post.Post, len(posts))
	for i, p := range posts {
		out[i] = ToPostDTO(p, images)
	}
	return out
}

type HealthDTO struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
