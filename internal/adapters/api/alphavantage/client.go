package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/miroslawsteblik/selene/internal/core/domain"
	"github.com/miroslawsteblik/selene/internal/core/port"
	"github.com/miroslawsteblik/selene/internal/httpx"
)

var _ port.MarketDataAPI = (*Client)(nil)

const userAgent = "selene/1.0"

// HTTPClient describes the HTTP client used by the adapter.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Alpha Vantage quote API. Transport-level failures are
// encoded as a synthetic 500 response so callers always receive a response
// object for a completed call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	logger     *slog.Logger

	mu            sync.RWMutex
	authenticated bool
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpx.New(30 * time.Second),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate probes the API with a known-good quote request and verifies
// the key is accepted. It must succeed before GetMarketData may be used.
func (c *Client) Authenticate(ctx context.Context) error {
	res, err := c.get(ctx, c.queryURL("GLOBAL_QUOTE", "AAPL"))
	if err != nil {
		return fmt.Errorf("authenticating with market data API: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: auth probe returned %d", domain.ErrNotAuthenticated, res.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("decoding auth response: %w", err)
	}
	if _, ok := body["Error Message"]; ok {
		return fmt.Errorf("%w: API rejected credentials", domain.ErrNotAuthenticated)
	}

	c.mu.Lock()
	c.authenticated = true
	c.mu.Unlock()

	c.logger.Debug("market data API authenticated")
	return nil
}

func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// GetMarketData fetches the quote for one symbol. HTTP and transport
// failures are reported through the response object, never as an error.
func (c *Client) GetMarketData(ctx context.Context, symbol string) (*domain.APIResponse, error) {
	if !c.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	start := time.Now()

	res, err := c.get(ctx, c.queryURL("GLOBAL_QUOTE", symbol))
	if err != nil {
		c.logger.Warn("market data request failed",
			slog.String("symbol", symbol), slog.Any("error", err))
		return domain.NewAPIResponse(
			http.StatusInternalServerError,
			map[string]any{"error": err.Error()},
			map[string]string{},
			time.Since(start).Milliseconds(),
		), nil
	}
	defer res.Body.Close()

	data := map[string]any{}
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
			return domain.NewAPIResponse(
				http.StatusInternalServerError,
				map[string]any{"error": "decoding response: " + err.Error()},
				headersOf(res),
				time.Since(start).Milliseconds(),
			), nil
		}
	}

	return domain.NewAPIResponse(res.StatusCode, data, headersOf(res), time.Since(start).Milliseconds()), nil
}

// GetBulkMarketData is not available: the quote API has no batch endpoint.
func (c *Client) GetBulkMarketData(_ context.Context, _ []string) (*domain.APIResponse, error) {
	return nil, fmt.Errorf("%w: bulk quote requests", domain.ErrNotSupported)
}

func (c *Client) queryURL(function, symbol string) string {
	q := url.Values{}
	q.Set("function", function)
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	return c.baseURL + "?" + q.Encode()
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return c.httpClient.Do(req)
}

func headersOf(res *http.Response) map[string]string {
	headers := make(map[string]string, len(res.Header))
	for key := range res.Header {
		headers[key] = res.Header.Get(key)
	}
	return headers
}
