package ports

import (
	"context"
	"encoding/json"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// DealerService is the orchestration layer over the dealer and sentiment
// downstream services.
type DealerService interface {
	// ListDealers never fails: a downstream error yields a nil list.
	ListDealers(ctx context.Context, state string) json.RawMessage
	GetDealer(ctx context.Context, dealerID int) (json.RawMessage, error)
	// GetDealerReviews returns the dealer's reviews, each annotated with a
	// sentiment label ("" when analysis was unavailable for that item).
	GetDealerReviews(ctx context.Context, dealerID int) ([]domain.Review, error)
	GetReview(ctx context.Context, reviewID int) (domain.Review, error)
	AddReview(ctx context.Context, payload json.RawMessage) error
	EditReview(ctx context.Context, reviewID int, payload json.RawMessage) (json.RawMessage, error)
	NewDealer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	EditDealer(ctx context.Context, user *domain.User, dealerID int, payload json.RawMessage) (json.RawMessage, error)
}

// InventoryFilters carries the single-dealer inventory query values. At most
// one dimension is applied, in priority order: year, make, model, mileage,
// price.
type InventoryFilters struct {
	Year    string
	Make    string
	Model   string
	Mileage string
	Price   string
}

// InventoryPage is the reshaped full-inventory result.
type InventoryPage struct {
	Cars        json.RawMessage
	Total       int
	CurrentPage int
	TotalPages  int
}

// InventoryService is the orchestration layer over the car-search service.
type InventoryService interface {
	DealerInventory(ctx context.Context, dealerID int, filters InventoryFilters) (json.RawMessage, error)
	FullInventory(ctx context.Context, q InventoryQuery) (*InventoryPage, error)
	MakesModels(ctx context.Context) (json.RawMessage, error)
}

// ChatService relays one chat message and returns the reply text.
type ChatService interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}
