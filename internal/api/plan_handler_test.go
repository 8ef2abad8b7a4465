package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/llm"
	"fitai/workout-planner/internal/planner"
	"fitai/workout-planner/internal/service"
)

const testSecret = "test-secret"

// stubPlanService returns whatever the test configures.
type stubPlanService struct {
	plan  *domain.WorkoutPlan
	plans []domain.WorkoutPlan
	err   error

	lastStatus *domain.PlanStatus
}

func (s *stubPlanService) GeneratePlan(context.Context, uint) (*domain.WorkoutPlan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) GetPlan(context.Context, uint, uint) (*domain.WorkoutPlan, error) {
	return s.plan, s.err
}

func (s *stubPlanService) ListPlans(_ context.Context, _ uint, status *domain.PlanStatus) ([]domain.WorkoutPlan, error) {
	s.lastStatus = status
	return s.plans, s.err
}

func (s *stubPlanService) DeletePlan(context.Context, uint, uint) error {
	return s.err
}

func newPlanRouter(svc service.PlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPlanHandler(svc)

	group := router.Group("/api/v1/plans")
	group.Use(AuthMiddleware(testSecret))
	group.POST("/generate", handler.GeneratePlan)
	group.GET("", handler.ListPlans)
	group.GET("/:id", handler.GetPlan)
	group.DELETE("/:id", handler.DeletePlan)
	return router
}

func signTestToken(t *testing.T, userID uint) string {
	t.Helper()

	claims := &jwtClaims{
		UserID:   userID,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestGeneratePlan_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"upstream unavailable", fmt.Errorf("%w: status 502", llm.ErrUnavailable), http.StatusBadGateway, codeUpstreamUnavailable},
		{"malformed output", &planner.MalformedOutputError{Raw: "oops", Err: errors.New("not json")}, http.StatusUnprocessableEntity, codeMalformedOutput},
		{"schema mismatch", &planner.SchemaError{Detail: "missing days"}, http.StatusUnprocessableEntity, codeSchemaMismatch},
		{"catalog mismatch", &planner.CatalogMismatchError{ExerciseName: "Muscle Up", Equipment: "Rings"}, http.StatusUnprocessableEntity, codeCatalogMismatch},
		{"missing profile", service.ErrProfileNotFound, http.StatusNotFound, codeNotFound},
		{"anything else", errors.New("db down"), http.StatusInternalServerError, codeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newPlanRouter(&stubPlanService{err: tc.err})
			token := signTestToken(t, 1)

			rec := doRequest(t, router, http.MethodPost, "/api/v1/plans/generate", token)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, errorCode(t, rec))
		})
	}
}

func TestGeneratePlan_Success(t *testing.T) {
	reps := 10
	plan := &domain.WorkoutPlan{
		ID:     7,
		UserID: 1,
		Status: domain.PlanStatusActive,
		Days: []domain.WorkoutDay{
			{
				DayNumber: 1,
				Focus:     "Chest",
				Exercises: []domain.WorkoutExercise{{
					Reps:    &reps,
					Notes:   "full range",
					Catalog: domain.ExerciseCatalogEntry{Name: "Push Up", Equipment: "Bodyweight"},
				}},
			},
		},
	}
	router := newPlanRouter(&stubPlanService{plan: plan})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/plans/generate", signTestToken(t, 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body GeneratedPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.PlanID)
	require.Len(t, body.Plan.Days, 1)
	require.Len(t, body.Plan.Days[0].Exercises, 1)
	assert.Equal(t, "Push Up", body.Plan.Days[0].Exercises[0].ExerciseName)
	assert.Equal(t, "Bodyweight", body.Plan.Days[0].Exercises[0].Equipment)
}

func TestGetPlan_ErrorMapping(t *testing.T) {
	token := signTestToken(t, 1)

	rec := doRequest(t, newPlanRouter(&stubPlanService{err: service.ErrPlanNotFound}), http.MethodGet, "/api/v1/plans/42", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, newPlanRouter(&stubPlanService{err: service.ErrPlanAccessDenied}), http.MethodGet, "/api/v1/plans/42", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, codeForbidden, errorCode(t, rec))

	rec = doRequest(t, newPlanRouter(&stubPlanService{}), http.MethodGet, "/api/v1/plans/not-a-number", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPlans_StatusQuery(t *testing.T) {
	token := signTestToken(t, 1)

	stub := &stubPlanService{}
	rec := doRequest(t, newPlanRouter(stub), http.MethodGet, "/api/v1/plans?status=archived", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastStatus)
	assert.Equal(t, domain.PlanStatusArchived, *stub.lastStatus)

	stub = &stubPlanService{}
	rec = doRequest(t, newPlanRouter(stub), http.MethodGet, "/api/v1/plans", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.lastStatus)
	assert.JSONEq(t, "[]", rec.Body.String(), "no plans is an empty list, not null")

	rec = doRequest(t, newPlanRouter(&stubPlanService{}), http.MethodGet, "/api/v1/plans?status=paused", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePlan_NoContentOnSuccess(t *testing.T) {
	rec := doRequest(t, newPlanRouter(&stubPlanService{}), http.MethodDelete, "/api/v1/plans/7", signTestToken(t, 1))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPlanRoutes_RequireAuthentication(t *testing.T) {
	router := newPlanRouter(&stubPlanService{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/plans/generate", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, codeUnauthorized, errorCode(t, rec))

	// A token signed with a different secret is rejected.
	claims := &jwtClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	rec = doRequest(t, router, http.MethodPost, "/api/v1/plans/generate", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := newPlanRouter(&stubPlanService{})

	claims := &jwtClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/plans/generate", expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}
