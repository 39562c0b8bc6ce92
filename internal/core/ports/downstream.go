package ports

import (
	"context"
	"encoding/json"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// DealerGateway wraps the dealer/review downstream service. Payloads the
// gateway merely forwards stay raw JSON; review lists are decoded so the
// aggregation layer can annotate them.
type DealerGateway interface {
	// FetchDealers lists dealerships. An empty state means all states.
	FetchDealers(ctx context.Context, state string) (json.RawMessage, error)
	FetchDealer(ctx context.Context, dealerID int) (json.RawMessage, error)
	FetchDealerReviews(ctx context.Context, dealerID int) ([]domain.Review, error)
	// FetchReview returns the (possibly empty) match list for one review id.
	FetchReview(ctx context.Context, reviewID int) ([]domain.Review, error)
	InsertReview(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	EditReview(ctx context.Context, reviewID int, payload json.RawMessage) (json.RawMessage, error)
	CreateDealer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	UpdateDealer(ctx context.Context, dealerID int, payload json.RawMessage) (json.RawMessage, error)
}

// SentimentAnalyzer derives a sentiment label for a piece of text.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// InventoryQuery carries the full-inventory filters and pagination.
// Range filters are applied both-or-neither by the service layer.
type InventoryQuery struct {
	Page       int
	Limit      int
	MileageMin string
	MileageMax string
	PriceMin   string
	PriceMax   string
	Make       string
	Model      string
	Year       string
}

// InventoryGateway wraps the car-search downstream service. The per-dealer
// lookups mirror its endpoint family one method per filter dimension.
type InventoryGateway interface {
	Cars(ctx context.Context, dealerID int) (json.RawMessage, error)
	CarsByYear(ctx context.Context, dealerID int, year string) (json.RawMessage, error)
	CarsByMake(ctx context.Context, dealerID int, make string) (json.RawMessage, error)
	CarsByModel(ctx context.Context, dealerID int, model string) (json.RawMessage, error)
	CarsByMaxMileage(ctx context.Context, dealerID int, mileage string) (json.RawMessage, error)
	CarsByPrice(ctx context.Context, dealerID int, price string) (json.RawMessage, error)
	FullInventory(ctx context.Context, q InventoryQuery) (json.RawMessage, error)
	MakesModels(ctx context.Context) (json.RawMessage, error)
}

// ChatCompleter relays a single user message to a completion provider and
// returns the generated text.
type ChatCompleter interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}
