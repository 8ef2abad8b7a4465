package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitai/workout-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's fitness profile.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest carries a partial profile update. Absent fields
// are left unchanged; the service merges field by field.
type UpdateProfileRequest struct {
	Age             *int      `json:"age" binding:"omitempty,gt=0,lt=120"`
	HeightCm        *int      `json:"heightCm" binding:"omitempty,gt=0"`
	WeightKg        *int      `json:"weightKg" binding:"omitempty,gt=0"`
	ExperienceLevel *string   `json:"experienceLevel"`
	FitnessGoal     *string   `json:"fitnessGoal"`
	Equipment       *[]string `json:"equipment"`
	HealthNotes     *string   `json:"healthNotes"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, codeNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile creates or merges the caller's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to get user ID from token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, codeBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		Age:             req.Age,
		HeightCm:        req.HeightCm,
		WeightKg:        req.WeightKg,
		ExperienceLevel: req.ExperienceLevel,
		FitnessGoal:     req.FitnessGoal,
		Equipment:       req.Equipment,
		HealthNotes:     req.HealthNotes,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, codeInternal, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
