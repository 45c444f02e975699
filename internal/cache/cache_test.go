package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_BasicGetPut(t *testing.T) {
	c := New(100)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k1", "v1", TTLLong)
	got, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", got)

	_, ok = c.Get("k2")
	assert.False(t, ok)
}

func TestCache_TTLExpiration(t *testing.T) {
	c := New(100)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("k", "v", TTLShort)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(TTLShort + time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	// Expired entry is removed from the map.
	c.mu.Lock()
	_, exists := c.entries["k"]
	c.mu.Unlock()
	assert.False(t, exists)
}

func TestCache_PerEntryTTL(t *testing.T) {
	c := New(100)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("short", 1, TTLShort)
	c.Put("long", 2, TTLVeryLong)

	now = now.Add(TTLMedium)
	_, ok := c.Get("short")
	assert.False(t, ok)
	_, ok = c.Get("long")
	assert.True(t, ok)
}

func TestCache_LRUEviction(t *testing.T) {
	c := New(3)

	c.Put("a", 1, TTLLong)
	c.Put("b", 2, TTLLong)
	c.Put("c", 3, TTLLong)

	// Touch "a" so "b" becomes the eviction candidate.
	_, _ = c.Get("a")
	c.Put("d", 4, TTLLong)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("d")
	assert.True(t, ok)
}

func TestCache_Stats(t *testing.T) {
	c := New(10)

	c.Put("k", "v", TTLLong)
	_, _ = c.Get("k")
	_, _ = c.Get("nope")

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRate, 0.001)
}

func TestKeyNormalizesParams(t *testing.T) {
	assert.Equal(t, Key("population", "강남역"), Key("population", " 강남 역 "))
	assert.NotEqual(t, Key("population", "강남역"), Key("competitors", "강남역"))
	assert.Len(t, Key("op"), 64)
}

func TestRoundCoord(t *testing.T) {
	assert.Equal(t, "37.498", RoundCoord(37.498095))
	assert.Equal(t, "127.028", RoundCoord(127.02761))
	assert.Equal(t, RoundCoord(37.4981), RoundCoord(37.4984))
}
