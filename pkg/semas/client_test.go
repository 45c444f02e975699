package semas

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/model"
	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

func testClient(t *testing.T, key string, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(key,
		WithBaseURL(srv.URL),
		WithRetryConfig(resilience.RetryConfig{MaxAttempts: 2, InitialBackoff: 1, MaxBackoff: 1}),
	)
}

func TestStoresInRadius(t *testing.T) {
	t.Parallel()

	c := testClient(t, "service-key", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/storeListInRadius", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "service-key", q.Get("serviceKey"))
		assert.Equal(t, "500", q.Get("radius"))
		assert.Equal(t, "127.02761", q.Get("cx"))
		assert.Equal(t, "37.498095", q.Get("cy"))
		assert.Equal(t, "json", q.Get("type"))
		fmt.Fprint(w, `{"body": {"items": [
			{"bizesNm": "어느카페", "indsLclsNm": "음식", "indsMclsNm": "커피점/카페",
			 "indsSclsNm": "커피전문점", "rdnmAdr": "서울 강남대로 1",
			 "lon": 127.028, "lat": 37.498},
			{"bizesNm": "분식집", "indsLclsNm": "음식", "indsMclsNm": "분식",
			 "indsSclsNm": "떡볶이", "rdnmAdr": "", "lnoAdr": "서울 역삼동 1-1",
			 "lon": 127.029, "lat": 37.499}
		]}}`)
	})

	stores, err := c.StoresInRadius(context.Background(),
		model.Coordinates{Lat: 37.498095, Lng: 127.02761}, 500)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "어느카페", stores[0].Name)
	assert.Equal(t, "커피점/카페", stores[0].MediumCategory)
	assert.Equal(t, "서울 역삼동 1-1", stores[1].Address)
}

func TestStoresInRadius_NoServiceKey(t *testing.T) {
	t.Parallel()

	c := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a service key")
	})

	_, err := c.StoresInRadius(context.Background(), model.Coordinates{}, 500)
	assert.ErrorIs(t, err, ErrNoServiceKey)
}

func TestStoresInRadius_ServerError(t *testing.T) {
	t.Parallel()

	calls := 0
	c := testClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.StoresInRadius(context.Background(), model.Coordinates{}, 500)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
