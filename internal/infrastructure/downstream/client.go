// Package downstream implements the outbound HTTP clients for the three
// services the gateway composes: the dealer/review service, the sentiment
// analyzer, and the car-search service. All of them speak JSON over plain
// GET/POST/PUT; failures are classified uniformly so callers never see a raw
// transport error.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/api/metrics"
)

const defaultTimeout = 30 * time.Second

// Param is one ordered query parameter. The order callers supply is the
// order written to the URL.
type Param struct {
	Key   string
	Value string
}

// Config carries everything a client needs at construction time; nothing is
// read from ambient process state at call time.
type Config struct {
	BaseURL string
	// Service labels the client in logs and metrics.
	Service string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client issues JSON requests against a single downstream base URL.
type Client struct {
	baseURL string
	service string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a client for one downstream service. No retries are
// attempted; downstream instability is surfaced, not masked.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		service: cfg.Service,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

// Get issues a GET and returns the decoded 2xx body.
func (c *Client) Get(ctx context.Context, endpoint string, params ...Param) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, endpoint string, body json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, endpoint, nil, body)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params []Param, body json.RawMessage) (json.RawMessage, error) {
	requestURL := c.baseURL + endpoint + buildQuery(params)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, &TransportError{Service: c.service, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.DownstreamRequestDuration.WithLabelValues(c.service).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DownstreamRequestsTotal.WithLabelValues(c.service, "transport_error").Inc()
		c.logger.Error().Err(err).Str("url", requestURL).Str("method", method).Msg("downstream transport failure")
		return nil, &TransportError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.DownstreamRequestsTotal.WithLabelValues(c.service, "transport_error").Inc()
		return nil, &TransportError{Service: c.service, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.DownstreamRequestsTotal.WithLabelValues(c.service, "status_error").Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", requestURL).Msg("downstream non-2xx")
		return nil, &StatusError{Service: c.service, Code: resp.StatusCode, Body: payload}
	}

	if !json.Valid(payload) {
		metrics.DownstreamRequestsTotal.WithLabelValues(c.service, "transport_error").Inc()
		return nil, &TransportError{Service: c.service, Err: fmt.Errorf("body is not valid JSON")}
	}

	metrics.DownstreamRequestsTotal.WithLabelValues(c.service, "ok").Inc()
	return json.RawMessage(payload), nil
}

// buildQuery writes the parameters in caller order as key=value pairs joined
// by "&". Values are URL-encoded; keys are passed through as given.
func buildQuery(params []Param) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}
