package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csheth/homescout/internal/config"
)

const (
	defaultHealthTimeout  = 3 * time.Second
	defaultPredictTimeout = 15 * time.Second

	maxErrorBodyBytes = 512
)

var (
	// ErrTimeout marks a predict call that exceeded its deadline.
	ErrTimeout = errors.New("prediction request timed out")
	// ErrBadPayload marks a success response missing the expected fields.
	ErrBadPayload = errors.New("malformed prediction payload")
)

// StatusError reports a non-success HTTP response from the prediction service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("prediction service returned HTTP %d", e.Code)
	}
	return fmt.Sprintf("prediction service returned HTTP %d: %s", e.Code, e.Body)
}

// Features is the JSON payload sent to the predict endpoint.
type Features struct {
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  int     `json:"bathrooms"`
	LivingArea float64 `json:"living_area"`
	Condition  int     `json:"condition"`
	Schools    int     `json:"schools"`
}

// Prediction is a successful response from the predict endpoint.
type Prediction struct {
	Price    float64
	Currency string
}

// Client talks to the remote prediction service. Each call issues exactly
// one request; there are no retries and no response caching.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	healthTimeout  time.Duration
	predictTimeout time.Duration
}

// New builds a client from the runtime configuration.
func New(cfg config.Config) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		http:           &http.Client{},
		healthTimeout:  defaultHealthTimeout,
		predictTimeout: defaultPredictTimeout,
	}
}

// NewRequestID returns a correlation id attached to a predict call.
func NewRequestID() string {
	return uuid.NewString()
}

// CheckHealth probes the backend liveness endpoint. It reports true only
// when the endpoint answers with a success status and a body whose status
// field equals "ok". Network failures, timeouts, and decode failures all
// read as unhealthy; the probe never returns an error.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return false
	}
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false
	}
	return parsed.Status == "ok"
}

// Predict submits the property features and returns the priced result.
// The predict deadline is deliberately longer than the health probe's.
func (c *Client) Predict(ctx context.Context, requestID string, features Features) (Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.predictTimeout)
	defer cancel()

	body, err := json.Marshal(features)
	if err != nil {
		return Prediction{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Prediction{}, fmt.Errorf("%w after %s", ErrTimeout, c.predictTimeout)
		}
		return Prediction{}, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Prediction{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var parsed struct {
		Price    *float64 `json:"price"`
		Currency *string  `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if parsed.Price == nil || parsed.Currency == nil || strings.TrimSpace(*parsed.Currency) == "" {
		return Prediction{}, fmt.Errorf("%w: price and currency are required", ErrBadPayload)
	}
	return Prediction{Price: *parsed.Price, Currency: strings.TrimSpace(*parsed.Currency)}, nil
}
