// Package api implements the repositories over the inventory REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stockadmin/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the inventory REST API
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Options configures a Client
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RPS limits outgoing requests per second; zero disables the limit
	RPS float64
}

// NewClient creates a new API client
func NewClient(opts Options, logger *zap.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
		burst = max(1, int(opts.RPS))
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// errorBody is the error envelope returned by the API
type errorBody struct {
	Error string `json:"error"`
}

// do sends a request with an optional JSON body and decodes the JSON
// response into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)

	// Object responses may carry {"error": "..."} even with a 2xx status.
	var envelope errorBody
	if len(data) > 0 && data[0] == '{' {
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
			return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, domain.NewUserError(envelope.Error))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}
