package bizinfo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkwonlab/sangkwon-cli/internal/resilience"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>기업마당 지원사업</title>
    <item>
      <title> 2026년 소상공인 스마트상점 지원 </title>
      <link>https://www.bizinfo.go.kr/web/lay1/bbs/S1T122C128/AS/74/view.do?pblancId=1</link>
      <description>스마트 기기 도입 비용 지원</description>
      <author>중소벤처기업부</author>
      <guid>PBLN_000000000000001</guid>
      <category>금융, 소상공인</category>
      <pubDate>2026-03-01 ~ 2026-04-30</pubDate>
    </item>
    <item>
      <title>청년창업 사업화 지원</title>
      <link>https://www.bizinfo.go.kr/view.do?pblancId=2</link>
      <description>사업화 자금 최대 5천만원</description>
      <author>창업진흥원</author>
      <guid>PBLN_000000000000002</guid>
      <category></category>
      <pubDate>상시</pubDate>
    </item>
  </channel>
</rss>`

func testClient(t *testing.T, key string, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(key,
		WithBaseURL(srv.URL),
		WithRetryConfig(resilience.RetryConfig{MaxAttempts: 2, InitialBackoff: 1, MaxBackoff: 1}),
	)
}

func TestListGrants(t *testing.T) {
	t.Parallel()

	c := testClient(t, "feed-key", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "rss", q.Get("dataType"))
		assert.Equal(t, "20", q.Get("searchCnt"))
		assert.Equal(t, "feed-key", q.Get("crtfcKey"))
		fmt.Fprint(w, sampleFeed)
	})

	grants, err := c.ListGrants(context.Background(), "", 20)
	require.NoError(t, err)
	require.Len(t, grants, 2)

	assert.Equal(t, "2026년 소상공인 스마트상점 지원", grants[0].Title)
	assert.Equal(t, "중소벤처기업부", grants[0].Agency)
	assert.Equal(t, "2026-03-01 ~ 2026-04-30", grants[0].ApplicationWindow)
	assert.Equal(t, []string{"금융", "소상공인"}, grants[0].Tags)

	assert.Equal(t, "PBLN_000000000000002", grants[1].ID)
	assert.Empty(t, grants[1].Tags)
}

func TestListGrants_WorksWithoutKey(t *testing.T) {
	t.Parallel()

	c := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("crtfcKey"))
		fmt.Fprint(w, sampleFeed)
	})

	grants, err := c.ListGrants(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, grants, 2)
}

func TestListGrants_RetriesServerError(t *testing.T) {
	t.Parallel()

	calls := 0
	c := testClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, sampleFeed)
	})

	grants, err := c.ListGrants(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Len(t, grants, 2)
	assert.Equal(t, 2, calls)
}
