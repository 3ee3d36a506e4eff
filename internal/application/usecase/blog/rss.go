package blog

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/domain/post"
)

// FeedInfo describes the channel of the generated feed.
type FeedInfo struct {
	Title       string
	Description string
	Author      string
	SiteURL     string
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "2006-01"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildFeed renders the blog listing in lang as a feed. Posts with an unparseable
// date fall back to now.
func (uc *BlogUseCase) BuildFeed(ctx context.Context, lang string, info FeedInfo, now time.Time) (*feeds.Feed, error) {
	posts, err := uc.FetchPosts(ctx, lang)
	if err != nil {
		uc.logger.Error("Failed to list posts for RSS", err, zap.String("lang", lang))
		return nil, err
	}
	return NewFeed(posts, info, now), nil
}

func NewFeed(posts []post.Post, info FeedInfo, now time.Time) *feeds.Feed {
	site := strings.TrimRight(info.SiteURL, "/")
	feed := &feeds.Feed{
		Title:       info.Title,
		Link:        &feeds.Link{Href: site + "/blog"},
		Description: info.Description,
		Author:      &feeds.Author{Name: info.Author},
		Created:     now,
	}

	items := make([]*feeds.Item, 0, len(posts))
	for _, p := range posts {
		created, ok := parseDate(p.Date)
		if !ok {
			created = now
		}
		items = append(items, &feeds.Item{
			Id:          p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: site + "/blog/" + p.Slug},
			Description: p.Summary,
			Content:     p.Content,
			Created:     created,
		})
	}
	feed.Items = items
	return feed
}
