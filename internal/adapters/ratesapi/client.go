// Package ratesapi fetches live currency factors from an HTTP rates provider
// that answers GET {baseURL}/{base} with {"rates": {"USD": 0.012, ...}}.
package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
)

const (
	DefaultBaseURL = "https://open.er-api.com/v6/latest"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// ErrEmptyRates is returned when the provider answers without a rates table.
var ErrEmptyRates = errors.New("rates provider returned no rates")

// Client implements ports.RatesProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.RatesProvider = (*Client)(nil)

// NewClient creates a provider client. Empty baseURL and non-positive timeout use the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchLatest returns the provider's factors relative to base, keyed by currency code.
func (c *Client) FetchLatest(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Result != "" && parsed.Result != "success" {
		return nil, fmt.Errorf("fetch rates: provider result %q", parsed.Result)
	}
	if len(parsed.Rates) == 0 {
		return nil, ErrEmptyRates
	}
	return parsed.Rates, nil
}
