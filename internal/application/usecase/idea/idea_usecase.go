package idea

import (
	"context"
	"sort"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/idea"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

const PathIdeas = "/api/v1/ideas"

type rawIdea struct {
	ID          rawjson.Scalar       `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Abstract    string               `json:"abstract"`
	Category    string               `json:"category"`
	Status      string               `json:"status"`
	Priority    rawjson.Scalar       `json:"priority"`
	Tags        rawjson.List[string] `json:"tags"`
	CreatedAt   string               `json:"created_at"`
}

func (r rawIdea) toDomain() idea.Idea {
	status := r.Status
	if status == "" {
		status = idea.StatusDraft
	}
	return idea.Idea{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: rawjson.FirstNonEmpty(r.Description, r.Abstract),
		Category:    r.Category,
		Status:      status,
		Priority:    r.Priority.String(),
		Tags:        r.Tags.Slice(),
		CreatedAt:   r.CreatedAt,
	}
}

type IdeaUseCase struct {
	backend service.Backend
	logger  logger.Logger
}

func NewIdeaUseCase(backend service.Backend, log logger.Logger) *IdeaUseCase {
	return &IdeaUseCase{backend: backend, logger: log}
}

// FetchIdeas keeps backend order within a status and orders statuses by board column.
func (uc *IdeaUseCase) FetchIdeas(ctx context.Context, lang string) ([]idea.Idea, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}
	var raw rawjson.List[rawIdea]
	if err := uc.backend.Get(ctx, PathIdeas, apiclient.Params{"lang": token}, &raw); err != nil {
		return nil, err
	}
	ideas := make([]idea.Idea, 0, len(raw))
	for _, r := range raw {
		ideas = append(ideas, r.toDomain())
	}
	sort.SliceStable(ideas, func(i, j int) bool {
		return idea.Column(ideas[i].Status) < idea.Column(ideas[j].Status)
	})
	return ideas, nil
}
