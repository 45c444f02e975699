package kakao

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

func testClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(1000, 1000),
		WithRetryConfig(resilience.RetryConfig{MaxAttempts: 2, InitialBackoff: 1, MaxBackoff: 1}),
	)
}

func placeJSON(name, x, y, distance string) string {
	return fmt.Sprintf(`{
		"place_name": %q, "category_name": "음식점 > 카페", "category_group_code": "CE7",
		"address_name": "서울 강남구", "road_address_name": "서울 강남대로 1",
		"phone": "02-000-0000", "x": %q, "y": %q, "distance": %q,
		"place_url": "http://place.map.kakao.com/1"
	}`, name, x, y, distance)
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	q, err := ValidateQuery("  강남   카페 ")
	require.NoError(t, err)
	assert.Equal(t, "강남 카페", q)

	for _, bad := range []string{"", "   ", "a"} {
		_, err := ValidateQuery(bad)
		assert.ErrorIs(t, err, ErrInvalidQuery, "input %q", bad)
	}

	long := make([]rune, 101)
	for i := range long {
		long[i] = '가'
	}
	_, err = ValidateQuery(string(long))
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestCoordinates_AddressMatch(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		require.Equal(t, "/v2/local/search/address.json", r.URL.Path)
		fmt.Fprintf(w, `{"documents": [%s], "meta": {"total_count": 1}}`,
			placeJSON("주소", "127.02761", "37.498095", ""))
	})

	coord, err := c.Coordinates(context.Background(), "서울 강남구 역삼동")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 37.498095, coord.Lat, 1e-9)
	assert.InDelta(t, 127.02761, coord.Lng, 1e-9)
}

func TestCoordinates_FallsBackToKeyword(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/local/search/address.json" {
			fmt.Fprint(w, `{"documents": [], "meta": {"total_count": 0}}`)
			return
		}
		require.Equal(t, "/v2/local/search/keyword.json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		fmt.Fprintf(w, `{"documents": [%s], "meta": {"total_count": 1}}`,
			placeJSON("강남역", "127.02761", "37.498095", ""))
	})

	coord, err := c.Coordinates(context.Background(), "강남역")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 37.498095, coord.Lat, 1e-9)
}

func TestCoordinates_NoMatchIsNotError(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"documents": [], "meta": {"total_count": 0}}`)
	})

	coord, err := c.Coordinates(context.Background(), "존재하지 않는 곳")
	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestSearchKeyword_ParamsAndTotalCount(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "카페", q.Get("query"))
		assert.Equal(t, "127.02761", q.Get("x"))
		assert.Equal(t, "37.498095", q.Get("y"))
		assert.Equal(t, "500", q.Get("radius"))
		assert.Equal(t, "distance", q.Get("sort"))
		fmt.Fprintf(w, `{"documents": [%s], "meta": {"total_count": 42}}`,
			placeJSON("메가커피", "127.0277", "37.4982", "55"))
	})

	center := model.Coordinates{Lat: 37.498095, Lng: 127.02761}
	places, total, err := c.SearchKeyword(context.Background(), "카페", SearchOptions{
		Center: &center, RadiusMeters: 500, SortDistance: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, places, 1)
	assert.Equal(t, "메가커피", places[0].Name)
	assert.Equal(t, 55, places[0].Distance)
}

func TestSearchKeyword_ComputesMissingDistance(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"documents": [%s], "meta": {"total_count": 1}}`,
			placeJSON("카페", "127.0300", "37.4981", ""))
	})

	center := model.Coordinates{Lat: 37.498095, Lng: 127.02761}
	places, _, err := c.SearchKeyword(context.Background(), "카페", SearchOptions{Center: &center})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Greater(t, places[0].Distance, 100)
	assert.Less(t, places[0].Distance, 400)
}

func TestCountCategory(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/local/search/category.json", r.URL.Path)
		assert.Equal(t, "FD6", r.URL.Query().Get("category_group_code"))
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		fmt.Fprint(w, `{"documents": [], "meta": {"total_count": 321}}`)
	})

	total, err := c.CountCategory(context.Background(), "FD6", model.Coordinates{Lat: 37.5, Lng: 127.0}, 500)
	require.NoError(t, err)
	assert.Equal(t, 321, total)
}

func TestRetriesOn429(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"documents": [], "meta": {"total_count": 0}}`)
	})

	_, total, err := c.SearchKeyword(context.Background(), "카페", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDoesNotRetryOn401(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, _, err := c.SearchKeyword(context.Background(), "카페", SearchOptions{})
	require.Error(t, err)
	var te *resilience.TransientError
	assert.False(t, errors.As(err, &te))
	assert.Equal(t, int32(1), calls.Load())
}

func TestHaversine(t *testing.T) {
	t.Parallel()

	gangnam := model.Coordinates{Lat: 37.498095, Lng: 127.02761}
	yeoksam := model.Coordinates{Lat: 37.500622, Lng: 127.036456}

	d := Haversine(gangnam, yeoksam)
	assert.InDelta(t, 830, d, 60)
	assert.Zero(t, Haversine(gangnam, gangnam))
}
