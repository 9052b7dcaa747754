// Package pointcache caches zone point-check results.
//
// Zone membership is effectively constant within a fine H3 cell, so the cell
// index is the cache key: nearby repeat queries (ports, fixed monitoring
// points) resolve without touching the polygon math. The cached value is the
// zone name, with the empty string meaning "outside all zones".
package pointcache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	h3 "github.com/uber/h3-go/v4"

	"github.com/ecomarine/ecaroute/internal/cache/keys"
	"github.com/ecomarine/ecaroute/internal/core/model"
	"github.com/ecomarine/ecaroute/internal/core/observability"
)

// DefaultH3Resolution trades key granularity against hit rate. Resolution 7
// cells are roughly 5 km2, far smaller than any zone boundary feature in the
// catalogue, so a cell is never split between "inside" and "outside" in a way
// the nautical-mile-scale contract would notice.
const DefaultH3Resolution = 7

// SharedTier is an optional second cache level shared between instances.
type SharedTier interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, val string) error
}

// Cache is a two-tier point-check cache: in-process LRU in front of an
// optional shared tier. Safe for concurrent use.
type Cache struct {
	mem       *lru.Cache[string, string]
	shared    SharedTier
	res       int
	fp        uint64
	opTimeout time.Duration
}

// New builds a cache. shared may be nil; opTimeout bounds each shared-tier
// operation so a slow cache can never stall a request.
func New(size, h3Res int, fingerprint uint64, shared SharedTier, opTimeout time.Duration) (*Cache, error) {
	if h3Res < 0 || h3Res > 15 {
		return nil, fmt.Errorf("invalid H3 resolution %d (must be 0..15)", h3Res)
	}
	if size < 1 {
		size = 1024
	}
	if opTimeout <= 0 {
		opTimeout = 250 * time.Millisecond
	}
	mem, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("lru: %w", err)
	}
	return &Cache{mem: mem, shared: shared, res: h3Res, fp: fingerprint, opTimeout: opTimeout}, nil
}

// Key maps a coordinate to its cache key via the H3 cell index.
func (c *Cache) Key(p model.Coordinate) (string, error) {
	cell, err := h3.LatLngToCell(h3.LatLng{Lat: p.Lat, Lng: p.Lon}, c.res)
	if err != nil {
		return "", fmt.Errorf("h3 cell for %s: %w", p, err)
	}
	return keys.Point(c.fp, c.res, cell.String()), nil
}

// Get returns the cached zone name for the coordinate's cell. The second
// return distinguishes a cached "outside all zones" from a miss.
func (c *Cache) Get(ctx context.Context, p model.Coordinate) (string, bool) {
	key, err := c.Key(p)
	if err != nil {
		return "", false
	}
	if v, ok := c.mem.Get(key); ok {
		observability.IncCacheHit("memory")
		return v, true
	}
	observability.IncCacheMiss("memory")

	if c.shared == nil {
		return "", false
	}
	opCtx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()
	v, found, err := c.shared.Get(opCtx, key)
	if err != nil || !found {
		observability.IncCacheMiss("shared")
		return "", false
	}
	observability.IncCacheHit("shared")
	c.mem.Add(key, v)
	return v, true
}

// Put records the point-check result for the coordinate's cell in both tiers.
// Shared-tier failures are deliberately dropped; the cache is an optimization
// and the authoritative answer already exists.
func (c *Cache) Put(ctx context.Context, p model.Coordinate, zoneName string) {
	key, err := c.Key(p)
	if err != nil {
		return
	}
	c.mem.Add(key, zoneName)
	if c.shared == nil {
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()
	_ = c.shared.Set(opCtx, key, zoneName)
}
