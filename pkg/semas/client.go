// Package semas provides access to the small-business administration's
// store registry API (상가업소 정보).
package semas

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

const defaultBaseURL = "https://apis.data.go.kr/B553077/api/open/sdsc2"

// Client queries registered stores around a point.
type Client interface {
	// StoresInRadius lists registered stores within radiusMeters of center.
	StoresInRadius(ctx context.Context, center model.Coordinates, radiusMeters int) ([]model.StoreRecord, error)
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

// WithRetryConfig overrides the retry policy.
func WithRetryConfig(cfg resilience.RetryConfig) Option {
	return func(c *client) { c.retry = cfg }
}

type client struct {
	serviceKey string
	baseURL    string
	httpClient *http.Client
	retry      resilience.RetryConfig
}

// NewClient creates a store registry client. serviceKey may be empty; calls
// then fail and callers degrade to place-search data.
func NewClient(serviceKey string, opts ...Option) Client {
	c := &client{
		serviceKey: serviceKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      resilience.DefaultRetryConfig(),
	}
	c.retry.OnRetry = resilience.RetryLogger("semas", "store-registry")
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ErrNoServiceKey is returned when the registry API key is not configured.
var ErrNoServiceKey = eris.New("semas: service key not configured")

type storeListResponse struct {
	Body struct {
		Items []storeItem `json:"items"`
	} `json:"body"`
}

type storeItem struct {
	Name           string  `json:"bizesNm"`
	LargeCategory  string  `json:"indsLclsNm"`
	MediumCategory string  `json:"indsMclsNm"`
	SmallCategory  string  `json:"indsSclsNm"`
	Address        string  `json:"rdnmAdr"`
	LotAddress     string  `json:"lnoAdr"`
	Lon            float64 `json:"lon"`
	Lat            float64 `json:"lat"`
}

// StoresInRadius lists registered stores within radiusMeters of center.
func (c *client) StoresInRadius(ctx context.Context, center model.Coordinates, radiusMeters int) ([]model.StoreRecord, error) {
	if c.serviceKey == "" {
		return nil, ErrNoServiceKey
	}

	params := url.Values{
		"serviceKey": {c.serviceKey},
		"radius":     {strconv.Itoa(radiusMeters)},
		"cx":         {strconv.FormatFloat(center.Lng, 'f', -1, 64)},
		"cy":         {strconv.FormatFloat(center.Lat, 'f', -1, 64)},
		"type":       {"json"},
		"numOfRows":  {"1000"},
	}

	resp, err := resilience.DoVal(ctx, c.retry, func(ctx context.Context) (*storeListResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/storeListInRadius?"+params.Encode(), nil)
		if err != nil {
			return nil, eris.Wrap(err, "semas: build request")
		}

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "semas: request")
		}
		defer httpResp.Body.Close() //nolint:errcheck

		if httpResp.StatusCode != http.StatusOK {
			err := eris.Errorf("semas: status %d", httpResp.StatusCode)
			if resilience.IsTransientHTTPStatus(httpResp.StatusCode) {
				return nil, resilience.NewTransientError(err, httpResp.StatusCode)
			}
			return nil, err
		}

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "semas: read body")
		}

		var out storeListResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, eris.Wrap(err, "semas: parse response")
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	stores := make([]model.StoreRecord, 0, len(resp.Body.Items))
	for _, it := range resp.Body.Items {
		addr := it.Address
		if addr == "" {
			addr = it.LotAddress
		}
		stores = append(stores, model.StoreRecord{
			Name:           it.Name,
			LargeCategory:  it.LargeCategory,
			MediumCategory: it.MediumCategory,
			SmallCategory:  it.SmallCategory,
			Address:        addr,
			Coord:          model.Coordinates{Lat: it.Lat, Lng: it.Lon},
		})
	}
	return stores, nil
}
