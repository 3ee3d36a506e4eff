package blog

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-portal/internal/domain/post"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type pathBackend map[string]string

func (b pathBackend) Get(_ context.Context, path string, _ apiclient.Params, out any, _ ...apiclient.CallOption) error {
	body, ok := b[path]
	if !ok {
		return &apiclient.HTTPError{URL: path, StatusCode: 404}
	}
	if body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

const blogList = `[
  {"id": 1, "slug": "hello", "title": "Hello", "excerpt": "Hi", "content": "one two three", "published_at": "2025-03-01T10:00:00Z", "tags": ["intro"]},
  {"id": 2, "title": "Draft", "summary": "S", "content": "", "date": "2025-04", "cover_image": "/images/blog/draft.png", "read_time": "6"}
]`

func TestFetchPosts(t *testing.T) {
	uc := NewBlogUseCase(pathBackend{PathBlogs: blogList}, logger.NewNop())

	posts, err := uc.FetchPosts(context.Background(), "en")

	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Hi", first.Summary)
	assert.Equal(t, "2025-03-01T10:00:00Z", first.Date)
	assert.Equal(t, 1, first.ReadTime)
	assert.Nil(t, first.CoverImage)

	second := posts[1]
	assert.Equal(t, "2", second.Slug, "slug falls back to id")
	assert.Equal(t, 6, second.ReadTime)
	require.NotNil(t, second.CoverImage)
	assert.Equal(t, "/images/blog/draft.png", *second.CoverImage)
	assert.Equal(t, []string{}, second.Tags)
}

func TestFetchPost(t *testing.T) {
	uc := NewBlogUseCase(pathBackend{
		PathBlogs + "/hello": `{"id": 1, "slug": "hello", "title": "Hello"}`,
		PathBlogs + "/empty": `{}`,
		PathBlogs + "/blank": "",
	}, logger.NewNop())

	p, err := uc.FetchPost(context.Background(), "en", "hello")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Hello", p.Title)

	for _, id := range []string{"empty", "blank"} {
		p, err = uc.FetchPost(context.Background(), "en", id)
		assert.NoError(t, err, id)
		assert.Nil(t, p, id)
	}

	_, err = uc.FetchPost(context.Background(), "en", "missing")
	assert.True(t, apiclient.IsNotFound(err))
}

func TestBuildFeed(t *testing.T) {
	uc := NewBlogUseCase(pathBackend{PathBlogs: blogList}, logger.NewNop())
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	feed, err := uc.BuildFeed(context.Background(), "en", FeedInfo{
		Title:   "Blog",
		Author:  "Ada",
		SiteURL: "https://ada.dev/",
	}, now)

	require.NoError(t, err)
	assert.Equal(t, "https://ada.dev/blog", feed.Link.Href)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "https://ada.dev/blog/hello", feed.Items[0].Link.Href)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), feed.Items[0].Created.UTC())
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), feed.Items[1].Created)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.True(t, strings.Contains(rss, "<title>Hello</title>"))
}

func TestNewFeed_UnparseableDateUsesNow(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	feed := NewFeed([]post.Post{{ID: "x", Slug: "x", Date: "someday"}}, FeedInfo{SiteURL: "https://a.b"}, now)

	require.Len(t, feed.Items, 1)
	assert.Equal(t, now, feed.Items[0].Created)
}

func TestBuildFeed_BackendError(t *testing.T) {
	uc := NewBlogUseCase(pathBackend{}, logger.NewNop())

	feed, err := uc.BuildFeed(context.Background(), "en", FeedInfo{}, time.Now())

	assert.Nil(t, feed)
	assert.Error(t, err)
}
