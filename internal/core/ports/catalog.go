package ports

import (
	"context"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// SeedMake bundles a make with its models for one-shot catalog seeding.
type SeedMake struct {
	Make   domain.CarMake
	Models []domain.CarModel
}

// CatalogRepository defines persistence for the make/model catalog.
type CatalogRepository interface {
	CountMakes(ctx context.Context) (int, error)
	Seed(ctx context.Context, makes []SeedMake) error
	ListEntries(ctx context.Context) ([]domain.CatalogEntry, error)
}

// CatalogService serves the car catalog, seeding it on first read.
type CatalogService interface {
	ListCars(ctx context.Context) ([]domain.CatalogEntry, error)
}
