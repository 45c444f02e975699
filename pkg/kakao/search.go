package kakao

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

const (
	keywordPath  = "/v2/local/search/keyword.json"
	categoryPath = "/v2/local/search/category.json"
	addressPath  = "/v2/local/search/address.json"

	maxPageSize = 15
)

// ErrInvalidQuery marks queries rejected before any API call.
var ErrInvalidQuery = eris.New("kakao: invalid query")

// ValidateQuery normalizes a search query and rejects input the API cannot
// handle: empty, a single character, or over 100 characters.
func ValidateQuery(query string) (string, error) {
	q := canonicalSpace(query)
	n := utf8.RuneCountInString(q)
	switch {
	case n == 0:
		return "", eris.Wrap(ErrInvalidQuery, "empty query")
	case n < 2:
		return "", eris.Wrap(ErrInvalidQuery, "query too short")
	case n > 100:
		return "", eris.Wrap(ErrInvalidQuery, "query too long")
	}
	return q, nil
}

type searchResponse struct {
	Documents []document `json:"documents"`
	Meta      struct {
		TotalCount int  `json:"total_count"`
		IsEnd      bool `json:"is_end"`
	} `json:"meta"`
}

type document struct {
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	CategoryGroupCode string `json:"category_group_code"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	Phone             string `json:"phone"`
	X                 string `json:"x"` // longitude
	Y                 string `json:"y"` // latitude
	Distance          string `json:"distance"`
	PlaceURL          string `json:"place_url"`
}

// Coordinates resolves a location via the address API first; place names
// that are not addresses ("강남역") fall through to a keyword search.
func (c *client) Coordinates(ctx context.Context, location string) (*model.Coordinates, error) {
	q, err := ValidateQuery(location)
	if err != nil {
		return nil, err
	}

	params := url.Values{"query": {q}}
	resp, err := c.get(ctx, addressPath, params)
	if err == nil && len(resp.Documents) > 0 {
		if coord, ok := resp.Documents[0].coord(); ok {
			return &coord, nil
		}
	}

	params = url.Values{"query": {q}, "size": {"1"}}
	resp, err = c.get(ctx, keywordPath, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Documents) == 0 {
		return nil, nil
	}
	coord, ok := resp.Documents[0].coord()
	if !ok {
		return nil, nil
	}
	return &coord, nil
}

// SearchKeyword runs a keyword place search.
func (c *client) SearchKeyword(ctx context.Context, query string, opts SearchOptions) ([]model.Place, int, error) {
	q, err := ValidateQuery(query)
	if err != nil {
		return nil, 0, err
	}

	params := url.Values{"query": {q}}
	applyOptions(params, opts)

	resp, err := c.get(ctx, keywordPath, params)
	if err != nil {
		return nil, 0, err
	}
	return toPlaces(resp.Documents, opts.Center), resp.Meta.TotalCount, nil
}

// SearchCategory runs a category place search around a point.
func (c *client) SearchCategory(ctx context.Context, categoryCode string, center model.Coordinates, radiusMeters int) ([]model.Place, int, error) {
	params := url.Values{"category_group_code": {categoryCode}}
	applyOptions(params, SearchOptions{Center: &center, RadiusMeters: radiusMeters, SortDistance: true})

	resp, err := c.get(ctx, categoryPath, params)
	if err != nil {
		return nil, 0, err
	}
	return toPlaces(resp.Documents, &center), resp.Meta.TotalCount, nil
}

// CountCategory fetches only the total match count for a category around a
// point.
func (c *client) CountCategory(ctx context.Context, categoryCode string, center model.Coordinates, radiusMeters int) (int, error) {
	params := url.Values{"category_group_code": {categoryCode}}
	applyOptions(params, SearchOptions{Center: &center, RadiusMeters: radiusMeters, Size: 1})

	resp, err := c.get(ctx, categoryPath, params)
	if err != nil {
		return 0, err
	}
	return resp.Meta.TotalCount, nil
}

func applyOptions(params url.Values, opts SearchOptions) {
	if opts.Center != nil {
		params.Set("x", strconv.FormatFloat(opts.Center.Lng, 'f', -1, 64))
		params.Set("y", strconv.FormatFloat(opts.Center.Lat, 'f', -1, 64))
	}
	if opts.RadiusMeters > 0 {
		params.Set("radius", strconv.Itoa(opts.RadiusMeters))
	}
	if opts.SortDistance {
		params.Set("sort", "distance")
	}
	size := opts.Size
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}
	params.Set("size", strconv.Itoa(size))
}

func (c *client) get(ctx context.Context, path string, params url.Values) (*searchResponse, error) {
	return resilience.DoVal(ctx, c.retry, func(ctx context.Context) (*searchResponse, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "kakao: rate limit")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return nil, eris.Wrap(err, "kakao: build request")
		}
		req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "kakao: request")
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			err := eris.Errorf("kakao: status %d", resp.StatusCode)
			if resilience.IsTransientHTTPStatus(resp.StatusCode) {
				return nil, resilience.NewTransientError(err, resp.StatusCode)
			}
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "kakao: read body")
		}

		var out searchResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, eris.Wrap(err, "kakao: parse response")
		}
		return &out, nil
	})
}

func (d document) coord() (model.Coordinates, bool) {
	lng, errX := strconv.ParseFloat(d.X, 64)
	lat, errY := strconv.ParseFloat(d.Y, 64)
	if errX != nil || errY != nil {
		return model.Coordinates{}, false
	}
	return model.Coordinates{Lat: lat, Lng: lng}, true
}

// toPlaces converts API documents, computing the distance from center when
// the provider omits it.
func toPlaces(docs []document, center *model.Coordinates) []model.Place {
	places := make([]model.Place, 0, len(docs))
	for _, d := range docs {
		coord, ok := d.coord()
		if !ok {
			continue
		}
		p := model.Place{
			Name:         d.PlaceName,
			Category:     d.CategoryName,
			CategoryCode: d.CategoryGroupCode,
			Address:      d.AddressName,
			RoadAddress:  d.RoadAddressName,
			Phone:        d.Phone,
			Coord:        coord,
			URL:          d.PlaceURL,
		}
		if dist, err := strconv.Atoi(d.Distance); err == nil && dist > 0 {
			p.Distance = dist
		} else if center != nil {
			p.Distance = int(Haversine(*center, coord))
		}
		places = append(places, p)
	}
	return places
}
