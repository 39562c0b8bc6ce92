package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// CatalogService serves the make/model catalog, seeding it from the built-in
// dataset on the first read that finds it empty. The check-then-seed is not
// atomic across concurrent first requests; a duplicate seed is harmless and
// accepted over taking a lock.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListCars returns every model joined to its make, bootstrapping the catalog
// when empty.
func (s *CatalogService) ListCars(ctx context.Context) ([]domain.CatalogEntry, error) {
	count, err := s.repo.CountMakes(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		s.logger.Info().Msg("catalog empty, seeding built-in dataset")
		if err := s.repo.Seed(ctx, defaultCatalog()); err != nil {
			return nil, err
		}
	}
	return s.repo.ListEntries(ctx)
}
