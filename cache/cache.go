package cache

import (
	"sync"
	"time"

	"github.com/poiesic/placesearch/core"
)

const (
	defaultMaxEntries = 50
	defaultExpiration = 5 * time.Minute
)

// entry is an immutable cached result set. Entries are replaced, never
// mutated, on re-query.
type entry struct {
	results   []core.Place
	createdAt time.Time
}

// Cache is a time-expiring query→results cache with bounded size.
// Keys are normalized query text; values are the provider's ordered
// results. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	expiration time.Duration
	now        func() time.Time
}

// Option configures a Cache.
type Option func(*Cache) error

// WithMaxEntries sets the maximum number of cached queries.
// Default is 50. Values below 1 are clamped to 1.
func WithMaxEntries(n int) Option {
	return func(c *Cache) error {
		if n < 1 {
			n = 1
		}
		c.maxEntries = n
		return nil
	}
}

// WithExpiration sets the window after which a cached entry is stale.
// Default is 5 minutes.
func WithExpiration(d time.Duration) Option {
	return func(c *Cache) error {
		if d <= 0 {
			return ErrInvalidExpiration
		}
		c.expiration = d
		return nil
	}
}

// WithClock sets the time source.
// Default is time.Now; tests inject a fake clock to drive expiration.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) error {
		if now == nil {
			now = time.Now
		}
		c.now = now
		return nil
	}
}

// New creates an empty result cache.
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		entries:    make(map[string]entry),
		maxEntries: defaultMaxEntries,
		expiration: defaultExpiration,
		now:        time.Now,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get returns the cached results for a query, or false on miss.
// The query is normalized before lookup. An entry older than the
// expiration window counts as a miss and is evicted as a side effect.
func (c *Cache) Get(query string) ([]core.Place, bool) {
	key := core.NormalizeQuery(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) > c.expiration {
		delete(c.entries, key)
		return nil, false
	}

	out := make([]core.Place, len(e.results))
	copy(out, e.results)
	return out, true
}

// Put caches results under the normalized query with the current
// timestamp, overwriting any existing entry. If the cache then exceeds
// its size bound, the oldest entries are evicted until it fits.
func (c *Cache) Put(query string, results []core.Place) {
	key := core.NormalizeQuery(query)
	if key == "" {
		return
	}

	owned := make([]core.Place, len(results))
	copy(owned, results)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{results: owned, createdAt: c.now()}

	for len(c.entries) > c.maxEntries {
		c.evictOldestLocked()
	}
}

// Len returns the number of cached entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, e := range c.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.createdAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
