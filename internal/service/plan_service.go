package service

import (
	"context"
	"errors"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/llm"
	"fitai/workout-planner/internal/planner"
	"fitai/workout-planner/internal/repository"

	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("workout plan not found")
	ErrPlanAccessDenied = errors.New("workout plan belongs to another user")
)

// PlanService runs the generation pipeline and serves stored plans.
type PlanService interface {
	// GeneratePlan runs the full pipeline for the user: profile + last
	// plan -> prompt -> model call -> parse/validate -> catalog
	// reconciliation -> transactional persistence. Returns the stored
	// nested plan.
	GeneratePlan(ctx context.Context, userID uint) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID, planID uint) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID uint, status *domain.PlanStatus) ([]domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID uint) error
}

type planService struct {
	userRepo    repository.UserRepository
	planRepo    repository.PlanRepository
	catalogRepo repository.CatalogRepository
	llmClient   llm.Client
	log         *zap.Logger
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	catalogRepo repository.CatalogRepository,
	llmClient llm.Client,
	log *zap.Logger,
) PlanService {
	return &planService{
		userRepo:    userRepo,
		planRepo:    planRepo,
		catalogRepo: catalogRepo,
		llmClient:   llmClient,
		log:         log,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, userID uint) (*domain.WorkoutPlan, error) {
	// 1. The profile is required; without it there is nothing to prompt
	// with.
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	// 2. The previous plan is optional context. A first-time user
	// simply has none.
	lastPlan, err := s.planRepo.GetLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// 3. The allowed-exercise list constrains what the model may name.
	allowed, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	systemInstruction := planner.SystemInstruction()
	userInstruction := planner.UserInstruction(profile, lastPlan, allowed)

	s.log.Info("requesting plan generation",
		zap.Uint("user_id", userID),
		zap.Bool("has_last_plan", lastPlan != nil),
		zap.Int("allowed_exercises", len(allowed)),
	)

	// 4. Model call. Upstream failures come back wrapped in
	// llm.ErrUnavailable and are the caller's to retry.
	raw, err := s.llmClient.Complete(ctx, systemInstruction, userInstruction)
	if err != nil {
		return nil, err
	}

	// 5. Parse and validate. Both failure kinds are terminal for this
	// request; nothing has been written yet.
	generated, err := planner.Parse(raw)
	if err != nil {
		s.log.Warn("model output rejected", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	// 6. Reconcile against the catalog before any write begins.
	resolved, err := planner.Reconcile(ctx, generated, s.catalogRepo)
	if err != nil {
		s.log.Warn("catalog reconciliation failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	// 7. Archive the old active plan and insert the new one, atomically.
	planID, err := s.planRepo.Create(ctx, userID, resolved)
	if err != nil {
		return nil, err
	}

	s.log.Info("plan persisted", zap.Uint("user_id", userID), zap.Uint("plan_id", planID))

	// 8. Return the stored nested representation.
	return s.planRepo.GetByID(ctx, planID)
}

func (s *planService) GetPlan(ctx context.Context, userID, planID uint) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrPlanAccessDenied
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, userID uint, status *domain.PlanStatus) ([]domain.WorkoutPlan, error) {
	return s.planRepo.ListByUser(ctx, userID, status)
}

func (s *planService) DeletePlan(ctx context.Context, userID, planID uint) error {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	if plan.UserID != userID {
		return ErrPlanAccessDenied
	}
	return s.planRepo.Delete(ctx, planID)
}
