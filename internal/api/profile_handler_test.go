package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/service"
)

type stubProfileService struct {
	profile    *domain.UserProfile
	err        error
	lastUpdate service.ProfileUpdate
}

func (s *stubProfileService) GetProfile(context.Context, uint) (*domain.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) UpdateProfile(_ context.Context, _ uint, update service.ProfileUpdate) (*domain.UserProfile, error) {
	s.lastUpdate = update
	return s.profile, s.err
}

func newProfileRouter(svc service.ProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewProfileHandler(svc)

	group := router.Group("/api/v1")
	group.Use(AuthMiddleware(testSecret))
	group.GET("/profile", handler.GetProfile)
	group.PUT("/profile", handler.UpdateProfile)
	return router
}

func TestGetProfile_ReturnsProfile(t *testing.T) {
	stub := &stubProfileService{profile: &domain.UserProfile{
		UserID:      1,
		Age:         30,
		FitnessGoal: "Muscle gain",
		Equipment:   []string{"Barbell"},
	}}
	router := newProfileRouter(stub)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/profile", signTestToken(t, 1))
	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 30, body.Age)
	assert.Equal(t, []string{"Barbell"}, body.Equipment)
}

func TestGetProfile_NotFound(t *testing.T) {
	router := newProfileRouter(&stubProfileService{err: service.ErrProfileNotFound})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/profile", signTestToken(t, 1))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, errorCode(t, rec))
}

func TestUpdateProfile_PartialBodyMapsToPartialUpdate(t *testing.T) {
	stub := &stubProfileService{profile: &domain.UserProfile{UserID: 1}}
	router := newProfileRouter(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"weightKg": 78, "healthNotes": "sore shoulder"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastUpdate.WeightKg)
	assert.Equal(t, 78, *stub.lastUpdate.WeightKg)
	require.NotNil(t, stub.lastUpdate.HealthNotes)
	assert.Equal(t, "sore shoulder", *stub.lastUpdate.HealthNotes)
	assert.Nil(t, stub.lastUpdate.Age, "absent field stays nil")
	assert.Nil(t, stub.lastUpdate.Equipment)
}

func TestUpdateProfile_RejectsOutOfRangeValues(t *testing.T) {
	router := newProfileRouter(&stubProfileService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"age": -5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, 1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
