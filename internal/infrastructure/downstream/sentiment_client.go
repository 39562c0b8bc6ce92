package downstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// SentimentClient talks to the sentiment-analysis service. Its single
// endpoint takes the text in the path, so the text is path-escaped.
type SentimentClient struct {
	client *Client
}

func NewSentimentClient(cfg Config) *SentimentClient {
	cfg.Service = "sentiment"
	return &SentimentClient{client: NewClient(cfg)}
}

type sentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

// Analyze returns the sentiment label for text.
func (s *SentimentClient) Analyze(ctx context.Context, text string) (string, error) {
	raw, err := s.client.Get(ctx, "/analyze/"+url.PathEscape(text))
	if err != nil {
		return "", err
	}
	var resp sentimentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &TransportError{Service: "sentiment", Err: err}
	}
	return resp.Sentiment, nil
}
