package swapmeet

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/metrics"
)

// CacheConfig sizes the vendor read cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// vendorCache is an in-memory LRU of loaded vendors with time-based expiration.
// Cached vendors are shared between readers and must never be mutated; write
// paths load their own copy inside a transaction and invalidate afterwards.
type vendorCache struct {
	lru *expirable.LRU[uuid.UUID, *domain.Vendor]
}

func newVendorCache(cfg CacheConfig) *vendorCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &vendorCache{
		lru: expirable.NewLRU[uuid.UUID, *domain.Vendor](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached vendor, if any
func (c *vendorCache) Get(id uuid.UUID) (*domain.Vendor, bool) {
	v, ok := c.lru.Get(id)
	if ok {
		metrics.VendorCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
	} else {
		metrics.VendorCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
	}
	return v, ok
}

// Set stores a vendor
func (c *vendorCache) Set(v *domain.Vendor) {
	c.lru.Add(v.ID, v)
}

// Invalidate drops the given vendors
func (c *vendorCache) Invalidate(ids ...uuid.UUID) {
	for _, id := range ids {
		c.lru.Remove(id)
	}
}

// Len returns the number of cached vendors
func (c *vendorCache) Len() int {
	return c.lru.Len()
}
