package service

import (
	"context"

	"fitai/workout-planner/internal/domain"
	"fitai/workout-planner/internal/repository"
)

// CatalogService exposes the exercise catalog as reference data for API
// consumers. Read-only; the catalog is seeded at startup and never
// mutated at runtime.
type CatalogService interface {
	ListExercises(ctx context.Context) ([]domain.ExerciseCatalogEntry, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListExercises(ctx context.Context) ([]domain.ExerciseCatalogEntry, error) {
	return s.catalogRepo.ListAll(ctx)
}
