package blog

import (
	"context"
	"net/url"
	"strings"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/post"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

const PathBlogs = "/api/v1/blogs"

type rawPost struct {
	ID          rawjson.Scalar       `json:"id"`
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	Summary     string               `json:"summary"`
	Excerpt     string               `json:"excerpt"`
	Content     string               `json:"content"`
	CoverImage  string               `json:"cover_image"`
	Tags        rawjson.List[string] `json:"tags"`
	PublishedAt string               `json:"published_at"`
	Date        string               `json:"date"`
	ReadTime    rawjson.Int          `json:"read_time"`
}

func (r rawPost) toDomain() post.Post {
	readTime := int(r.ReadTime)
	if readTime <= 0 {
		readTime = post.EstimateReadTime(len(strings.Fields(r.Content)))
	}
	return post.Post{
		ID:         r.ID.String(),
		Slug:       rawjson.FirstNonEmpty(r.Slug, r.ID.String()),
		Title:      r.Title,
		Summary:    rawjson.FirstNonEmpty(r.Summary, r.Excerpt),
		Content:    r.Content,
		CoverImage: rawjson.StringPtr(r.CoverImage),
		Tags:       r.Tags.Slice(),
		Date:       rawjson.FirstNonEmpty(r.PublishedAt, r.Date),
		ReadTime:   readTime,
	}
}

type BlogUseCase struct {
	backend service.Backend
	logger  logger.Logger
}

func NewBlogUseCase(backend service.Backend, log logger.Logger) *BlogUseCase {
	return &BlogUseCase{backend: backend, logger: log}
}

func (uc *BlogUseCase) FetchPosts(ctx context.Context, lang string) ([]post.Post, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}
	var raw rawjson.List[rawPost]
	if err := uc.backend.Get(ctx, PathBlogs, apiclient.Params{"lang": token}, &raw); err != nil {
		return nil, err
	}
	posts := make([]post.Post, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, r.toDomain())
	}
	return posts, nil
}

// FetchPost returns nil when the backend answers with an empty body or object.
func (uc *BlogUseCase) FetchPost(ctx context.Context, lang, id string) (*post.Post, error) {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return nil, err
	}
	var raw *rawPost
	if err := uc.backend.Get(ctx, PathBlogs+"/"+url.PathEscape(id), apiclient.Params{"lang": token}, &raw); err != nil {
		return nil, err
	}
	if raw == nil || (raw.ID == "" && raw.Title == "") {
		return nil, nil
	}
	p := raw.toDomain()
	return &p, nil
}
