package downstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// DealerClient talks to the dealer/review service.
type DealerClient struct {
	client *Client
}

func NewDealerClient(cfg Config) *DealerClient {
	cfg.Service = "dealers"
	return &DealerClient{client: NewClient(cfg)}
}

// FetchDealers lists all dealerships, or those in one state when state is
// non-empty.
func (d *DealerClient) FetchDealers(ctx context.Context, state string) (json.RawMessage, error) {
	endpoint := "/fetchDealers"
	if state != "" {
		endpoint += "/" + state
	}
	return d.client.Get(ctx, endpoint)
}

func (d *DealerClient) FetchDealer(ctx context.Context, dealerID int) (json.RawMessage, error) {
	return d.client.Get(ctx, fmt.Sprintf("/fetchDealer/%d", dealerID))
}

func (d *DealerClient) FetchDealerReviews(ctx context.Context, dealerID int) ([]domain.Review, error) {
	raw, err := d.client.Get(ctx, fmt.Sprintf("/fetchReviews/dealer/%d", dealerID))
	if err != nil {
		return nil, err
	}
	return decodeReviews(raw)
}

func (d *DealerClient) FetchReview(ctx context.Context, reviewID int) ([]domain.Review, error) {
	raw, err := d.client.Get(ctx, fmt.Sprintf("/fetchReviews/%d", reviewID))
	if err != nil {
		return nil, err
	}
	return decodeReviews(raw)
}

func (d *DealerClient) InsertReview(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return d.client.PostJSON(ctx, "/insert_review", payload)
}

func (d *DealerClient) EditReview(ctx context.Context, reviewID int, payload json.RawMessage) (json.RawMessage, error) {
	return d.client.PutJSON(ctx, fmt.Sprintf("/edit_review/%d", reviewID), payload)
}

func (d *DealerClient) CreateDealer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return d.client.PostJSON(ctx, "/new_dealer", payload)
}

func (d *DealerClient) UpdateDealer(ctx context.Context, dealerID int, payload json.RawMessage) (json.RawMessage, error) {
	return d.client.PutJSON(ctx, fmt.Sprintf("/update_dealer/%d", dealerID), payload)
}

// decodeReviews decodes a review list. A JSON null decodes to an empty list,
// matching how the dealer service represents "nothing found".
func decodeReviews(raw json.RawMessage) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, &TransportError{Service: "dealers", Err: fmt.Errorf("decode reviews: %w", err)}
	}
	return reviews, nil
}
