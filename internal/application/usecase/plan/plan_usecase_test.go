package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/resume-portal/internal/domain/plan"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/apperror"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

const annualPlans = `[
  {"name": "Foundations", "name_zh": "基础", "year": 2024, "objectives": ["Read"], "objectives_zh": null},
  {"name": "Deep Work", "description": "Focus", "year": "2025", "objectives": ["Write", "Ship"]},
  {"name": "Horizons", "year": 2026}
]`

type stubBackend struct {
	bodies map[string]string
	errs   map[string]error
	calls  []string
	params []apiclient.Params
}

func (b *stubBackend) Get(_ context.Context, path string, params apiclient.Params, out any, _ ...apiclient.CallOption) error {
	b.calls = append(b.calls, path)
	b.params = append(b.params, params)
	if err, ok := b.errs[path]; ok {
		return err
	}
	body, ok := b.bodies[path]
	if !ok {
		return &apiclient.HTTPError{Method: http.MethodGet, URL: path, StatusCode: http.StatusNotFound}
	}
	if body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
}

type PlanUseCaseTestSuite struct {
	suite.Suite
	backend *stubBackend
	useCase *PlanUseCase
}

func (s *PlanUseCaseTestSuite) SetupTest() {
	s.backend = &stubBackend{bodies: map[string]string{PathAnnualPlans: annualPlans}, errs: map[string]error{}}
	s.useCase = NewPlanUseCase(s.backend, fixedClock(2025), logger.NewNop())
}

func TestPlanUseCase(t *testing.T) {
	suite.Run(t, new(PlanUseCaseTestSuite))
}

func (s *PlanUseCaseTestSuite) Test_FetchAnnualPlans() {
	plans, err := s.useCase.FetchAnnualPlans(context.Background(), "zh_CN")

	s.Require().NoError(err)
	s.Require().Len(plans, 3)
	s.Equal(apiclient.Params{"lang": "zh"}, s.backend.params[0])
	s.Equal("基础", plans[0].NameZh)
	s.Equal([]string{}, plans[0].ObjectivesZh)
	s.Equal(2025, plans[1].Year)
	s.Equal([]string{}, plans[2].Objectives)
}

func (s *PlanUseCaseTestSuite) Test_FetchLegacyPlans_StatusFromClock() {
	plans, err := s.useCase.FetchLegacyPlans(context.Background(), "en")

	s.Require().NoError(err)
	s.Require().Len(plans, 3)
	s.Equal(plan.StatusCompleted, plans[0].Status)
	s.Equal(plan.StatusActive, plans[1].Status)
	s.Equal("Focus", plans[1].Slogan)
	s.Equal(plan.StatusPlanned, plans[2].Status)
}

func (s *PlanUseCaseTestSuite) Test_FetchCurrentAnnualPlan_Primary() {
	s.backend.bodies[PathCurrentAnnualPlan] = `{"name": "Deep Work", "year": 2025}`

	current, err := s.useCase.FetchCurrentAnnualPlan(context.Background(), "en")

	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal("Deep Work", current.Name)
	s.Equal([]string{PathCurrentAnnualPlan}, s.backend.calls)
}

func (s *PlanUseCaseTestSuite) Test_FetchCurrentAnnualPlan_EmptyIsNil() {
	s.backend.bodies[PathCurrentAnnualPlan] = `{}`

	current, err := s.useCase.FetchCurrentAnnualPlan(context.Background(), "en")

	s.NoError(err)
	s.Nil(current)
}

func (s *PlanUseCaseTestSuite) Test_FetchCurrentAnnualPlan_FallsBackToYear() {
	s.backend.errs[PathCurrentAnnualPlan] = &apiclient.HTTPError{StatusCode: http.StatusInternalServerError}

	current, err := s.useCase.FetchCurrentAnnualPlan(context.Background(), "en")

	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal("Deep Work", current.Name)
	s.Equal([]string{PathCurrentAnnualPlan, PathAnnualPlans}, s.backend.calls)
}

func (s *PlanUseCaseTestSuite) Test_FetchCurrentAnnualPlan_ExhaustedIsNil() {
	s.backend.errs[PathCurrentAnnualPlan] = &apiclient.NetworkError{Err: errors.New("down")}
	s.backend.errs[PathAnnualPlans] = &apiclient.NetworkError{Err: errors.New("down")}

	current, err := s.useCase.FetchCurrentAnnualPlan(context.Background(), "en")

	s.NoError(err)
	s.Nil(current)
}

func (s *PlanUseCaseTestSuite) Test_FetchAnnualPlanByName_FallsBackToName() {
	current, err := s.useCase.FetchAnnualPlanByName(context.Background(), "en", "Horizons")

	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal(2026, current.Year)
	s.Equal(PathAnnualPlans+"/Horizons", s.backend.calls[0])
}

func (s *PlanUseCaseTestSuite) Test_FetchAnnualPlanByName_UnknownIsNil() {
	current, err := s.useCase.FetchAnnualPlanByName(context.Background(), "en", "Nope")

	s.NoError(err)
	s.Nil(current)
}

func (s *PlanUseCaseTestSuite) Test_UnsupportedLanguage() {
	_, err := s.useCase.FetchCurrentAnnualPlan(context.Background(), "de")

	s.ErrorIs(err, apperror.ErrInvalidInput)
	s.Empty(s.backend.calls)
}

func TestNewPlanUseCase_DefaultsToSystemClock(t *testing.T) {
	uc := NewPlanUseCase(&stubBackend{}, nil, logger.NewNop())
	require.NotNil(t, uc)
	assert.Equal(t, time.Now().Year(), uc.CurrentYear())
}

func (s *PlanUseCaseTestSuite) Test_FetchAnnualPlanByName_CurrentIsLookedUpByName() {
	s.backend.bodies[PathCurrentAnnualPlan] = `{"name": "Deep Work", "year": 2025}`
	s.backend.bodies[PathAnnualPlans] = `[{"name": "Deep Work", "year": 2025}, {"name": "current", "year": 2023}]`

	named, err := s.useCase.FetchAnnualPlanByName(context.Background(), "en", "current")

	s.Require().NoError(err)
	s.Require().NotNil(named)
	s.Equal("current", named.Name)
	s.Equal(2023, named.Year)
	s.Equal([]string{PathAnnualPlans}, s.backend.calls)
}

func (s *PlanUseCaseTestSuite) Test_FetchAnnualPlanByName_CurrentMissingIsNil() {
	s.backend.bodies[PathCurrentAnnualPlan] = `{"name": "Deep Work", "year": 2025}`

	named, err := s.useCase.FetchAnnualPlanByName(context.Background(), "en", "current")

	s.NoError(err)
	s.Nil(named)
	s.NotContains(s.backend.calls, PathCurrentAnnualPlan)
}
