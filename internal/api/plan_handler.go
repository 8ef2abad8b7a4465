package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/llm"
	"fitai/workout-planner/internal/planner"
	"fitai/workout-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves plan generation and retrieval for the
// authenticated user.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Response Structs ---

// PlanResponse is the nested plan representation: plan fields, days in
// stored order, exercises with their catalog name and equipment joined
// back in.
type PlanResponse struct {
	ID              uint              `json:"id"`
	Goal            string            `json:"goal,omitempty"`
	ExperienceLevel string            `json:"experience_level,omitempty"`
	DurationWeeks   *int              `json:"duration_weeks,omitempty"`
	Status          domain.PlanStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	Days            []DayResponse     `json:"days"`
}

type DayResponse struct {
	DayNumber int                `json:"day_number"`
	DayName   string             `json:"day_name,omitempty"`
	Focus     string             `json:"focus,omitempty"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type ExerciseResponse struct {
	ExerciseName string `json:"exercise_name"`
	Equipment    string `json:"equipment"`
	Sets         *int   `json:"sets,omitempty"`
	Reps         *int   `json:"reps,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type GeneratedPlanResponse struct {
	Message string       `json:"message"`
	PlanID  uint         `json:"plan_id"`
	Plan    PlanResponse `json:"plan"`
}

// --- Handler Methods ---

// GeneratePlan runs the full generation pipeline for the caller.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), userID)
	if err != nil {
		abortWithPipelineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, GeneratedPlanResponse{
		Message: "Workout plan generated and saved successfully",
		PlanID:  plan.ID,
		Plan:    mapPlanToResponse(plan),
	})
}

// GetPlan returns one plan by ID, if it belongs to the caller.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}
	planID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, codeBadRequest, "Invalid plan ID")
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		abortWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPlanToResponse(plan))
}

// ListPlans returns the caller's plans, optionally filtered by status.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}

	var status *domain.PlanStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.PlanStatus(raw)
		if s != domain.PlanStatusActive && s != domain.PlanStatusArchived {
			abortWithError(c, http.StatusBadRequest, codeBadRequest, "status must be 'active' or 'archived'")
			return
		}
		status = &s
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), userID, status)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to fetch plans")
		return
	}

	responses := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, mapPlanToResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// DeletePlan removes one of the caller's plans (days and exercises
// cascade; catalog entries are untouched).
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}
	planID, err := parseIDParam(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, codeBadRequest, "Invalid plan ID")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		abortWithPlanError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithPipelineError maps each generation failure kind to its
// stable status category. Only upstream_unavailable is worth retrying;
// the 422 kinds mean the model response or request state is
// fundamentally invalid.
func abortWithPipelineError(c *gin.Context, err error) {
	var malformed *planner.MalformedOutputError
	var schema *planner.SchemaError
	var catalog *planner.CatalogMismatchError

	switch {
	case errors.Is(err, llm.ErrUnavailable):
		abortWithError(c, http.StatusBadGateway, codeUpstreamUnavailable, err.Error())
	case errors.As(err, &malformed):
		abortWithError(c, http.StatusUnprocessableEntity, codeMalformedOutput, err.Error())
	case errors.As(err, &schema):
		abortWithError(c, http.StatusUnprocessableEntity, codeSchemaMismatch, err.Error())
	case errors.As(err, &catalog):
		abortWithError(c, http.StatusUnprocessableEntity, codeCatalogMismatch, err.Error())
	case errors.Is(err, service.ErrProfileNotFound):
		abortWithError(c, http.StatusNotFound, codeNotFound, "User profile not found. Please complete your profile before generating a plan.")
	default:
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to generate workout plan")
	}
}

func abortWithPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, service.ErrPlanAccessDenied):
		abortWithError(c, http.StatusForbidden, codeForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to process plan request")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// mapPlanToResponse denormalizes the stored plan: each exercise gets
// its catalog entry's name and equipment joined back in.
func mapPlanToResponse(plan *domain.WorkoutPlan) PlanResponse {
	resp := PlanResponse{
		ID:              plan.ID,
		Goal:            plan.Goal,
		ExperienceLevel: plan.ExperienceLevel,
		DurationWeeks:   plan.DurationWeeks,
		Status:          plan.Status,
		CreatedAt:       plan.CreatedAt,
		Days:            make([]DayResponse, 0, len(plan.Days)),
	}
	for _, day := range plan.Days {
		dayResp := DayResponse{
			DayNumber: day.DayNumber,
			DayName:   day.DayName,
			Focus:     day.Focus,
			Exercises: make([]ExerciseResponse, 0, len(day.Exercises)),
		}
		for _, exercise := range day.Exercises {
			dayResp.Exercises = append(dayResp.Exercises, ExerciseResponse{
				ExerciseName: exercise.Catalog.Name,
				Equipment:    exercise.Catalog.Equipment,
				Sets:         exercise.Sets,
				Reps:         exercise.Reps,
				Notes:        exercise.Notes,
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}
