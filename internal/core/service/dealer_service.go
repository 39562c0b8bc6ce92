package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// DealerService orchestrates calls to the dealer/review service and the
// sentiment analyzer, shaping their results for the HTTP layer.
type DealerService struct {
	dealers   ports.DealerGateway
	sentiment ports.SentimentAnalyzer
	annotator *sentimentAnnotator
	logger    zerolog.Logger
}

func NewDealerService(dealers ports.DealerGateway, sentiment ports.SentimentAnalyzer, fanoutWorkers int, logger zerolog.Logger) *DealerService {
	return &DealerService{
		dealers:   dealers,
		sentiment: sentiment,
		annotator: newSentimentAnnotator(sentiment, fanoutWorkers, logger),
		logger:    logger,
	}
}

// ListDealers fetches dealerships, optionally filtered by state. A
// downstream failure is logged and reported as a nil list; the caller
// contract wraps it in a 200 envelope either way.
func (s *DealerService) ListDealers(ctx context.Context, state string) json.RawMessage {
	dealers, err := s.dealers.FetchDealers(ctx, state)
	if err != nil {
		s.logger.Error().Err(err).Str("state", state).Msg("fetch dealers failed")
		return nil
	}
	return dealers
}

// GetDealer fetches a single dealership by id.
func (s *DealerService) GetDealer(ctx context.Context, dealerID int) (json.RawMessage, error) {
	if dealerID <= 0 {
		return nil, domain.ErrBadRequest
	}
	return s.dealers.FetchDealer(ctx, dealerID)
}

// GetDealerReviews fetches a dealer's reviews and annotates each with a
// sentiment label. A failed analysis degrades that one item to an empty
// label; it never fails the batch.
func (s *DealerService) GetDealerReviews(ctx context.Context, dealerID int) ([]domain.Review, error) {
	if dealerID <= 0 {
		return nil, domain.ErrBadRequest
	}
	reviews, err := s.dealers.FetchDealerReviews(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	s.annotator.AnnotateAll(ctx, reviews)
	return reviews, nil
}

// GetReview fetches and annotates a single review.
func (s *DealerService) GetReview(ctx context.Context, reviewID int) (domain.Review, error) {
	if reviewID <= 0 {
		return nil, domain.ErrBadRequest
	}
	matches, err := s.dealers.FetchReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrReviewNotFound
	}

	review := matches[0]
	label, err := s.sentiment.Analyze(ctx, review.Text())
	if err != nil {
		s.logger.Warn().Err(err).Int("review_id", reviewID).Msg("sentiment analysis failed")
		label = ""
	}
	review.SetSentiment(label)
	return review, nil
}

// AddReview forwards the review payload verbatim to the insert endpoint.
func (s *DealerService) AddReview(ctx context.Context, payload json.RawMessage) error {
	if _, err := s.dealers.InsertReview(ctx, payload); err != nil {
		s.logger.Error().Err(err).Msg("post review failed")
		return err
	}
	return nil
}

// EditReview forwards the payload to the edit endpoint; downstream status
// codes are translated by the gateway into domain errors.
func (s *DealerService) EditReview(ctx context.Context, reviewID int, payload json.RawMessage) (json.RawMessage, error) {
	return s.dealers.EditReview(ctx, reviewID, payload)
}

// NewDealer forwards the payload to the dealer-creation endpoint.
func (s *DealerService) NewDealer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return s.dealers.CreateDealer(ctx, payload)
}

// EditDealer checks the authorization predicate, then forwards the payload.
func (s *DealerService) EditDealer(ctx context.Context, user *domain.User, dealerID int, payload json.RawMessage) (json.RawMessage, error) {
	if user == nil || !user.CanEditDealer(dealerID) {
		return nil, domain.ErrForbidden
	}
	return s.dealers.UpdateDealer(ctx, dealerID, payload)
}
