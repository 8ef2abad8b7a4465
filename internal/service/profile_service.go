package service

import (
	"context"
	"errors"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"
)

var ErrProfileNotFound = errors.New("user profile not found")

// ProfileUpdate carries the fields of a partial profile update. Nil
// means "leave unchanged". Every updatable field is enumerated here —
// the merge below sets them one by one rather than copying whatever
// keys arrive in the payload, so an update can never write a field this
// struct does not name.
type ProfileUpdate struct {
	Age             *int
	HeightCm        *int
	WeightKg        *int
	ExperienceLevel *string
	FitnessGoal     *string
	Equipment       *[]string
	HealthNotes     *string
}

// ProfileService reads and updates the per-user fitness profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error)
	// UpdateProfile merges the given fields into the user's profile,
	// creating it on first write.
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*domain.UserProfile, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*domain.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		profile = &domain.UserProfile{UserID: userID}
	}

	mergeProfile(profile, update)

	if err := s.userRepo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// mergeProfile applies the update field by field.
func mergeProfile(profile *domain.UserProfile, update ProfileUpdate) {
	if update.Age != nil {
		profile.Age = *update.Age
	}
	if update.HeightCm != nil {
		profile.HeightCm = *update.HeightCm
	}
	if update.WeightKg != nil {
		profile.WeightKg = *update.WeightKg
	}
	if update.ExperienceLevel != nil {
		profile.ExperienceLevel = *update.ExperienceLevel
	}
	if update.FitnessGoal != nil {
		profile.FitnessGoal = *update.FitnessGoal
	}
	if update.Equipment != nil {
		profile.Equipment = *update.Equipment
	}
	if update.HealthNotes != nil {
		profile.HealthNotes = *update.HealthNotes
	}
}
