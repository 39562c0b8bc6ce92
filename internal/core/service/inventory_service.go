package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// Pagination defaults applied when the caller omits page/per_page.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// InventoryService orchestrates calls to the car-search service.
type InventoryService struct {
	cars   ports.InventoryGateway
	logger zerolog.Logger
}

func NewInventoryService(cars ports.InventoryGateway, logger zerolog.Logger) *InventoryService {
	return &InventoryService{cars: cars, logger: logger}
}

// DealerInventory looks up one dealer's cars. Exactly one filter dimension
// is applied, chosen by priority: year, make, model, mileage, price. Extra
// filters in the query are ignored, not rejected.
func (s *InventoryService) DealerInventory(ctx context.Context, dealerID int, filters ports.InventoryFilters) (json.RawMessage, error) {
	if dealerID <= 0 {
		return nil, domain.ErrBadRequest
	}
	switch {
	case filters.Year != "":
		return s.cars.CarsByYear(ctx, dealerID, filters.Year)
	case filters.Make != "":
		return s.cars.CarsByMake(ctx, dealerID, filters.Make)
	case filters.Model != "":
		return s.cars.CarsByModel(ctx, dealerID, filters.Model)
	case filters.Mileage != "":
		return s.cars.CarsByMaxMileage(ctx, dealerID, filters.Mileage)
	case filters.Price != "":
		return s.cars.CarsByPrice(ctx, dealerID, filters.Price)
	default:
		return s.cars.Cars(ctx, dealerID)
	}
}

// fullInventoryPayload mirrors the downstream /inventory/ response. Pointer
// fields expose which keys the payload actually carried.
type fullInventoryPayload struct {
	Cars        *json.RawMessage `json:"cars"`
	TotalCars   *int             `json:"totalCars"`
	CurrentPage *int             `json:"currentPage"`
	TotalPages  *int             `json:"totalPages"`
}

// FullInventory queries the paginated inventory with every supplied filter
// at once. Range filters are dropped unless both bounds are present. A
// response missing any expected key fails the whole request.
func (s *InventoryService) FullInventory(ctx context.Context, q ports.InventoryQuery) (*ports.InventoryPage, error) {
	if q.Page <= 0 {
		q.Page = defaultPage
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.MileageMin == "" || q.MileageMax == "" {
		q.MileageMin, q.MileageMax = "", ""
	}
	if q.PriceMin == "" || q.PriceMax == "" {
		q.PriceMin, q.PriceMax = "", ""
	}

	raw, err := s.cars.FullInventory(ctx, q)
	if err != nil {
		return nil, err
	}

	var payload fullInventoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Error().Err(err).Msg("inventory payload not decodable")
		return nil, domain.ErrBadPayload
	}
	if payload.Cars == nil || payload.TotalCars == nil || payload.CurrentPage == nil || payload.TotalPages == nil {
		s.logger.Error().Msg("inventory payload missing expected keys")
		return nil, domain.ErrBadPayload
	}

	return &ports.InventoryPage{
		Cars:        *payload.Cars,
		Total:       *payload.TotalCars,
		CurrentPage: *payload.CurrentPage,
		TotalPages:  *payload.TotalPages,
	}, nil
}

// MakesModels proxies the make/model listing of the car-search service.
func (s *InventoryService) MakesModels(ctx context.Context) (json.RawMessage, error) {
	return s.cars.MakesModels(ctx)
}
