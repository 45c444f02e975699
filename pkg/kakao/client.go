// Package kakao provides place search and geocoding via the Kakao Local
// REST API.
package kakao

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

const defaultBaseURL = "https://dapi.kakao.com"

// Client searches places and resolves free-text locations to coordinates.
type Client interface {
	// Coordinates resolves a location name or address to a point. Returns
	// (nil, nil) when the provider has no match; that is not an error.
	Coordinates(ctx context.Context, location string) (*model.Coordinates, error)

	// SearchKeyword runs a keyword place search. The int is the provider's
	// total match count, which can exceed len(places).
	SearchKeyword(ctx context.Context, query string, opts SearchOptions) ([]model.Place, int, error)

	// CountCategory returns the total match count for a category group code
	// around a point, without fetching full result pages.
	CountCategory(ctx context.Context, categoryCode string, center model.Coordinates, radiusMeters int) (int, error)

	// SearchCategory runs a category place search around a point.
	SearchCategory(ctx context.Context, categoryCode string, center model.Coordinates, radiusMeters int) ([]model.Place, int, error)
}

// SearchOptions narrows a keyword search.
type SearchOptions struct {
	Center       *model.Coordinates
	RadiusMeters int
	SortDistance bool
	Size         int
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(u string) Option {
	return func(c *client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// WithRateLimit sets the requests-per-second limit for API calls.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithRetryConfig overrides the retry policy.
func WithRetryConfig(cfg resilience.RetryConfig) Option {
	return func(c *client) { c.retry = cfg }
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      resilience.RetryConfig
}

// NewClient creates a Kakao Local API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
		retry:      resilience.DefaultRetryConfig(),
	}
	c.retry.OnRetry = resilience.RetryLogger("kakao", "local-search")
	for _, opt := range opts {
		opt(c)
	}
	return c
}
