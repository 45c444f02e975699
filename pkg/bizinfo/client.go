// Package bizinfo fetches government startup support listings from the
// 기업마당 RSS feed.
package bizinfo

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

const defaultBaseURL = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"

// Client lists published support programs.
type Client interface {
	// ListGrants fetches up to count current support listings, optionally
	// filtered by a search keyword.
	ListGrants(ctx context.Context, keyword string, count int) ([]model.Grant, error)
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the feed endpoint, for tests.
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
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retry      resilience.RetryConfig
}

// NewClient creates a support-listing client. The API key may be empty;
// the feed serves a reduced public result set without one.
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      resilience.DefaultRetryConfig(),
	}
	c.retry.OnRetry = resilience.RetryLogger("bizinfo", "list-grants")
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author"`
	GUID        string `xml:"guid"`
	Category    string `xml:"category"`
	PubDate     string `xml:"pubDate"`
}

// ListGrants fetches current support listings from the feed.
func (c *client) ListGrants(ctx context.Context, keyword string, count int) ([]model.Grant, error) {
	if count <= 0 {
		count = 50
	}
	params := url.Values{
		"dataType":  {"rss"},
		"searchCnt": {strconv.Itoa(count)},
	}
	if c.apiKey != "" {
		params.Set("crtfcKey", c.apiKey)
	}
	if kw := strings.TrimSpace(keyword); kw != "" {
		params.Set("searchLclasId", kw)
	}

	feed, err := resilience.DoVal(ctx, c.retry, func(ctx context.Context) (*rssFeed, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			return nil, eris.Wrap(err, "bizinfo: build request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "bizinfo: request")
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			err := eris.Errorf("bizinfo: status %d", resp.StatusCode)
			if resilience.IsTransientHTTPStatus(resp.StatusCode) {
				return nil, resilience.NewTransientError(err, resp.StatusCode)
			}
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "bizinfo: read body")
		}

		var out rssFeed
		if err := xml.Unmarshal(body, &out); err != nil {
			return nil, eris.Wrap(err, "bizinfo: parse feed")
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	grants := make([]model.Grant, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		grants = append(grants, model.Grant{
			ID:                it.GUID,
			Title:             strings.TrimSpace(it.Title),
			Agency:            strings.TrimSpace(it.Author),
			Summary:           strings.TrimSpace(it.Description),
			ApplicationWindow: strings.TrimSpace(it.PubDate),
			URL:               it.Link,
			Tags:              splitTags(it.Category),
		})
	}
	return grants, nil
}

func splitTags(category string) []string {
	var tags []string
	for _, t := range strings.Split(category, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
