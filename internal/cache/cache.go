// Package cache provides the in-memory result cache shared by all analysis
// operations. Entries carry their own TTL since upstream data changes at
// very different rates: place searches go stale in a minute, curated area
// profiles are good for an hour.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sangkwonlab/sangkwon-cli/internal/refdata"
)

// TTL classes, from most to least volatile.
const (
	TTLShort    = 60 * time.Second
	TTLMedium   = 5 * time.Minute
	TTLLong     = 30 * time.Minute
	TTLVeryLong = time.Hour
)

// Cache is a concurrent-safe LRU cache with per-entry TTL expiration.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	order      []string // LRU order: front=oldest, back=newest
	maxEntries int
	hits       atomic.Int64
	misses     atomic.Int64
	now        func() time.Time
}

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

// Stats contains cache performance statistics.
type Stats struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
}

// New creates a Cache holding at most maxEntries values.
func New(maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Key builds a stable cache key from an operation name and its parameters.
// Parameters are canonicalized first so "강남역" and " 강남 역 " share an
// entry, then hashed; raw user input never becomes a map key.
func Key(op string, params ...string) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, op)
	for _, p := range params {
		parts = append(parts, refdata.Canonicalize(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// RoundCoord quantizes a coordinate to 3 decimal places (about 110m) so
// nearby lookups share cache entries.
func RoundCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', 3, 64)
}

// Get retrieves a cached value. The boolean is false on miss or expiration.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	if c.now().Sub(e.createdAt) > e.ttl {
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses.Add(1)
		return nil, false
	}

	c.removeFromOrder(key)
	c.order = append(c.order, key)
	c.hits.Add(1)
	return e.value, true
}

// Put stores a value with the given TTL, evicting the oldest entry if at
// capacity.
func (c *Cache) Put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = &entry{value: value, createdAt: c.now(), ttl: ttl}
		c.removeFromOrder(key)
		c.order = append(c.order, key)
		return
	}

	for len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = &entry{value: value, createdAt: c.now(), ttl: ttl}
	c.order = append(c.order, key)
}

// Stats returns cache performance statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	entries := len(c.entries)
	maxEntries := c.maxEntries
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Entries:    entries,
		MaxEntries: maxEntries,
		Hits:       hits,
		Misses:     misses,
		HitRate:    hitRate,
	}
}

func (c *Cache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
