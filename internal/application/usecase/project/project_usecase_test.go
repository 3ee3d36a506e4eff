package project

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-portal/internal/domain/project"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/apperror"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

const projectList = `[
  {"id": 1, "name": "Portal", "annual_plan": "Grow", "tags": ["go"], "year": 2025},
  {"id": "2", "title": "Notes", "annual_plan": "Rest", "tags": "none", "year": "2024"},
  {"id": 3, "name": "Talks", "annual_plan": "Grow"}
]`

// stubBackend answers from canned bodies or errors keyed by path.
type stubBackend struct {
	bodies map[string]string
	errs   map[string]error
	calls  []string
}

func (b *stubBackend) Get(_ context.Context, path string, _ apiclient.Params, out any, _ ...apiclient.CallOption) error {
	b.calls = append(b.calls, path)
	if err, ok := b.errs[path]; ok {
		return err
	}
	body, ok := b.bodies[path]
	if !ok {
		return &apiclient.HTTPError{Method: http.MethodGet, URL: path, StatusCode: http.StatusNotFound}
	}
	return json.Unmarshal([]byte(body), out)
}

func newPlanProjectsServer(t *testing.T, planStatus int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var listCalls atomic.Int32

	router.GET("/api/v1/plans/:name/projects", func(c *gin.Context) {
		if planStatus != http.StatusOK {
			c.JSON(planStatus, gin.H{"message": "not here"})
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(`[{"id": 9, "name": "Direct", "annual_plan": "`+c.Param("name")+`"}]`))
	})
	router.GET(PathProjects, func(c *gin.Context) {
		listCalls.Add(1)
		c.Data(http.StatusOK, "application/json", []byte(projectList))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, &listCalls
}

func newUseCase(t *testing.T, baseURL string) *ProjectUseCase {
	t.Helper()
	client, err := apiclient.New(apiclient.Options{BaseURL: baseURL})
	require.NoError(t, err)
	return NewProjectUseCase(client, logger.NewNop())
}

func TestFetchProjects_Normalises(t *testing.T) {
	server, _ := newPlanProjectsServer(t, http.StatusOK)
	uc := newUseCase(t, server.URL)

	projects, err := uc.FetchProjects(context.Background(), "en")

	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, project.Project{ID: "1", Name: "Portal", Tags: []string{"go"}, Year: 2025, AnnualPlan: "Grow"}, projects[0])
	assert.Equal(t, "Notes", projects[1].Name)
	assert.Equal(t, 2024, projects[1].Year)
	assert.Equal(t, []string{}, projects[1].Tags)
}

func TestFetchProjectsByPlan_PrimaryEndpoint(t *testing.T) {
	server, listCalls := newPlanProjectsServer(t, http.StatusOK)
	uc := newUseCase(t, server.URL)

	projects, err := uc.FetchProjectsByPlan(context.Background(), "en", "Grow")

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Direct", projects[0].Name)
	assert.Zero(t, listCalls.Load())
}

func TestFetchProjectsByPlan_404FallsBackToFilter(t *testing.T) {
	server, listCalls := newPlanProjectsServer(t, http.StatusNotFound)
	uc := newUseCase(t, server.URL)

	projects, err := uc.FetchProjectsByPlan(context.Background(), "en", "Grow")

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "1", projects[0].ID)
	assert.Equal(t, "3", projects[1].ID)
	assert.Equal(t, int32(1), listCalls.Load())
}

func TestFetchProjectsByPlan_BothFailIsEmpty(t *testing.T) {
	backend := &stubBackend{
		errs: map[string]error{
			PlanProjectsPath("Grow"): &apiclient.HTTPError{StatusCode: http.StatusNotFound},
			PathProjects:             &apiclient.NetworkError{Method: http.MethodGet, URL: PathProjects, Err: errors.New("connection refused")},
		},
	}
	uc := NewProjectUseCase(backend, logger.NewNop())

	projects, err := uc.FetchProjectsByPlan(context.Background(), "en", "Grow")

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.Equal(t, []string{PlanProjectsPath("Grow"), PathProjects}, backend.calls)
}

func TestFetchProjectsByPlan_ParseErrorFallsBack(t *testing.T) {
	backend := &stubBackend{
		errs:   map[string]error{PlanProjectsPath("Grow"): &apiclient.ParseError{Err: errors.New("bad json")}},
		bodies: map[string]string{PathProjects: projectList},
	}
	uc := NewProjectUseCase(backend, logger.NewNop())

	projects, err := uc.FetchProjectsByPlan(context.Background(), "zh", "Rest")

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "2", projects[0].ID)
}

func TestFetchProjectsByPlan_UnsupportedLanguageIsReported(t *testing.T) {
	backend := &stubBackend{}
	uc := NewProjectUseCase(backend, logger.NewNop())

	projects, err := uc.FetchProjectsByPlan(context.Background(), "fr", "Grow")

	assert.Nil(t, projects)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, backend.calls)
}

func TestFetchLegacyProjects(t *testing.T) {
	backend := &stubBackend{bodies: map[string]string{PathProjects: projectList}}
	uc := NewProjectUseCase(backend, logger.NewNop())

	legacy, err := uc.FetchLegacyProjects(context.Background(), "en")

	require.NoError(t, err)
	require.Len(t, legacy, 3)
	assert.Equal(t, "Portal", legacy[0].Title)
	assert.Equal(t, "Grow", legacy[0].PlanID)
	assert.Equal(t, project.PlaceholderImage, legacy[0].Image)
}

func TestPlanProjectsPath_Escapes(t *testing.T) {
	assert.Equal(t, "/api/v1/plans/Deep%20Work/projects", PlanProjectsPath("Deep Work"))
	assert.Equal(t, "/api/v1/plans/a%2Fb/projects", PlanProjectsPath("a/b"))
}
