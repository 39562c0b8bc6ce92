package downstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// SearchCarsClient talks to the car-search/inventory service.
type SearchCarsClient struct {
	client *Client
}

func NewSearchCarsClient(cfg Config) *SearchCarsClient {
	cfg.Service = "searchcars"
	return &SearchCarsClient{client: NewClient(cfg)}
}

func (s *SearchCarsClient) Cars(ctx context.Context, dealerID int) (json.RawMessage, error) {
	return s.client.Get(ctx, fmt.Sprintf("/cars/%d", dealerID))
}

func (s *SearchCarsClient) CarsByYear(ctx context.Context, dealerID int, year string) (json.RawMessage, error) {
	return s.dealerLookup(ctx, "carsbyyear", dealerID, year)
}

func (s *SearchCarsClient) CarsByMake(ctx context.Context, dealerID int, make string) (json.RawMessage, error) {
	return s.dealerLookup(ctx, "carsbymake", dealerID, make)
}

func (s *SearchCarsClient) CarsByModel(ctx context.Context, dealerID int, model string) (json.RawMessage, error) {
	return s.dealerLookup(ctx, "carsbymodel", dealerID, model)
}

func (s *SearchCarsClient) CarsByMaxMileage(ctx context.Context, dealerID int, mileage string) (json.RawMessage, error) {
	return s.dealerLookup(ctx, "carsbymaxmileage", dealerID, mileage)
}

func (s *SearchCarsClient) CarsByPrice(ctx context.Context, dealerID int, price string) (json.RawMessage, error) {
	return s.dealerLookup(ctx, "carsbyprice", dealerID, price)
}

func (s *SearchCarsClient) dealerLookup(ctx context.Context, family string, dealerID int, value string) (json.RawMessage, error) {
	return s.client.Get(ctx, fmt.Sprintf("/%s/%d/%s", family, dealerID, url.PathEscape(value)))
}

// FullInventory queries the paginated inventory. Parameter order is fixed:
// page, limit, then any present filters.
func (s *SearchCarsClient) FullInventory(ctx context.Context, q ports.InventoryQuery) (json.RawMessage, error) {
	params := []Param{
		{Key: "page", Value: strconv.Itoa(q.Page)},
		{Key: "limit", Value: strconv.Itoa(q.Limit)},
	}
	if q.MileageMin != "" && q.MileageMax != "" {
		params = append(params,
			Param{Key: "mileageMin", Value: q.MileageMin},
			Param{Key: "mileageMax", Value: q.MileageMax})
	}
	if q.PriceMin != "" && q.PriceMax != "" {
		params = append(params,
			Param{Key: "priceMin", Value: q.PriceMin},
			Param{Key: "priceMax", Value: q.PriceMax})
	}
	if q.Make != "" {
		params = append(params, Param{Key: "make", Value: q.Make})
	}
	if q.Model != "" {
		params = append(params, Param{Key: "model", Value: q.Model})
	}
	if q.Year != "" {
		params = append(params, Param{Key: "year", Value: q.Year})
	}
	return s.client.Get(ctx, "/inventory/", params...)
}

func (s *SearchCarsClient) MakesModels(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, "/makes_models/")
}
