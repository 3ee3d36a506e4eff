package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *Client
	seen   chan *http.Request
}

func (s *ClientTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	s.seen = make(chan *http.Request, 16)
	record := func(c *gin.Context) {
		select {
		case s.seen <- c.Request.Clone(context.Background()):
		default:
		}
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/items", func(c *gin.Context) {
			record(c)
			c.JSON(http.StatusOK, []item{{ID: 1, Name: c.Query("lang")}})
		})
		v1.GET("/missing", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no such thing"})
		})
		v1.GET("/broken", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "upstream exploded")
		})
		v1.GET("/html", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html", []byte("<html>oops</html>"))
		})
		v1.GET("/empty", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		v1.GET("/slow", func(c *gin.Context) {
			select {
			case <-time.After(2 * time.Second):
			case <-c.Request.Context().Done():
			}
			c.JSON(http.StatusOK, item{ID: 9})
		})
		v1.POST("/items", func(c *gin.Context) {
			record(c)
			var in item
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			in.ID = 42
			c.JSON(http.StatusCreated, in)
		})
		v1.PUT("/items/:id", func(c *gin.Context) {
			var in item
			_ = c.ShouldBindJSON(&in)
			in.Name = in.Name + "!"
			c.JSON(http.StatusOK, in)
		})
		v1.DELETE("/items/:id", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	s.server = httptest.NewServer(router)

	client, err := New(Options{
		BaseURL:        s.server.URL,
		DefaultHeaders: map[string]string{"X-Client": "resume-portal"},
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *ClientTestSuite) drain() {
	for {
		select {
		case <-s.seen:
		default:
			return
		}
	}
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) Test_Get_DecodesAndSendsParams() {
	s.drain()
	var out []item
	err := s.client.Get(context.Background(), "/api/v1/items", Params{"lang": "zh", "page": nil, "q": ""}, &out)

	s.Require().NoError(err)
	s.Equal([]item{{ID: 1, Name: "zh"}}, out)

	req := <-s.seen
	s.Equal("lang=zh", req.URL.RawQuery)
	s.Equal("resume-portal", req.Header.Get("X-Client"))
	s.Equal("application/json", req.Header.Get("Accept"))
	s.NotEmpty(req.Header.Get(HeaderRequestID))
}

func (s *ClientTestSuite) Test_GetJSON_ReturnsDeclaredType() {
	out, err := GetJSON[[]item](context.Background(), s.client, "/api/v1/items", Params{"lang": "en"})

	s.Require().NoError(err)
	s.Len(out, 1)
	s.Equal("en", out[0].Name)
}

func (s *ClientTestSuite) Test_RequestIDFromContextIsForwarded() {
	s.drain()
	ctx := ContextWithRequestID(context.Background(), "req-123")
	_, err := GetJSON[[]item](ctx, s.client, "/api/v1/items", nil)
	s.Require().NoError(err)

	req := <-s.seen
	s.Equal("req-123", req.Header.Get(HeaderRequestID))
}

func (s *ClientTestSuite) Test_InvalidPath() {
	for _, path := range []string{"/other/items", "/api/v10/items", "api/v1/items", ""} {
		err := s.client.Get(context.Background(), path, nil, nil)
		s.ErrorIs(err, ErrInvalidPath, path)
	}
}

func (s *ClientTestSuite) Test_HTTPError_CarriesStatusAndParsedBody() {
	err := s.client.Get(context.Background(), "/api/v1/missing", nil, &[]item{})

	var httpErr *HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusNotFound, httpErr.StatusCode)
	s.Equal(map[string]any{"message": "no such thing"}, httpErr.Body)
	s.True(IsNotFound(err))
	s.Equal("http_error", Outcome(err))
}

func (s *ClientTestSuite) Test_HTTPError_NonJSONBody() {
	err := s.client.Get(context.Background(), "/api/v1/broken", nil, nil)

	var httpErr *HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusInternalServerError, httpErr.StatusCode)
	s.Nil(httpErr.Body)
	s.Equal("upstream exploded", string(httpErr.RawBody))
	s.False(IsNotFound(err))
}

func (s *ClientTestSuite) Test_ParseError_OnNonJSONSuccess() {
	var out []item
	err := s.client.Get(context.Background(), "/api/v1/html", nil, &out)

	var parseErr *ParseError
	s.Require().ErrorAs(err, &parseErr)
	s.Contains(parseErr.Snippet, "<html>")
	s.Equal("parse_error", Outcome(err))
}

func (s *ClientTestSuite) Test_EmptyBodyLeavesOutUntouched() {
	out := []item{{ID: 7}}
	err := s.client.Get(context.Background(), "/api/v1/empty", nil, &out)

	s.Require().NoError(err)
	s.Equal([]item{{ID: 7}}, out)
}

func (s *ClientTestSuite) Test_PerCallTimeout() {
	start := time.Now()
	err := s.client.Get(context.Background(), "/api/v1/slow", nil, nil, WithTimeout(50*time.Millisecond))

	var netErr *NetworkError
	s.Require().ErrorAs(err, &netErr)
	s.True(errors.Is(err, context.DeadlineExceeded))
	s.Less(time.Since(start), time.Second)
	s.Equal("network_error", Outcome(err))
}

func (s *ClientTestSuite) Test_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.client.Get(ctx, "/api/v1/items", nil, nil)

	var netErr *NetworkError
	s.Require().ErrorAs(err, &netErr)
	s.ErrorIs(err, context.Canceled)
}

func (s *ClientTestSuite) Test_PostPutDelete() {
	s.drain()
	created, err := PostJSON[item](context.Background(), s.client, "/api/v1/items", nil, item{Name: "draft"})
	s.Require().NoError(err)
	s.Equal(item{ID: 42, Name: "draft"}, created)

	req := <-s.seen
	s.Equal("application/json", req.Header.Get("Content-Type"))

	updated, err := PutJSON[item](context.Background(), s.client, "/api/v1/items/42", nil, item{ID: 42, Name: "final"})
	s.Require().NoError(err)
	s.Equal("final!", updated.Name)

	_, err = DeleteJSON[any](context.Background(), s.client, "/api/v1/items/42", nil)
	s.NoError(err)
}

func (s *ClientTestSuite) Test_WithHeaderOverridesDefault() {
	s.drain()
	err := s.client.Get(context.Background(), "/api/v1/items", nil, nil, WithHeader("X-Client", "override"))
	s.Require().NoError(err)

	req := <-s.seen
	s.Equal("override", req.Header.Get("X-Client"))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, base := range []string{"", "localhost:8080", "://bad"} {
		_, err := New(Options{BaseURL: base})
		assert.Error(t, err, base)
	}
}

func TestNew_NormalisesPrefix(t *testing.T) {
	c, err := New(Options{BaseURL: "http://backend.local/", Prefix: "api/v2/"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v2", c.Prefix())

	c, err = New(Options{BaseURL: "http://backend.local"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPrefix, c.Prefix())
}

func TestNetworkError_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	c, err := New(Options{BaseURL: base})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/v1/items", nil, nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.MethodGet, netErr.Method)
}
