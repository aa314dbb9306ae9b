package enrich

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix = "chefwire:company_site:"
	// cacheMiss marks companies we already searched for and found nothing;
	// a miss is as worth caching as a hit.
	cacheMiss = "!none"
)

// CachedLookup wraps a Lookup with a Redis cache so repeat runs never
// re-pay for the same company. Cache failures fall through to the inner
// lookup — Redis being down only costs money, not correctness.
type CachedLookup struct {
	inner Lookup
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedLookup builds the caching wrapper. ttl bounds how long both hits
// and misses are remembered.
func NewCachedLookup(inner Lookup, rdb *redis.Client, ttl time.Duration) *CachedLookup {
	return &CachedLookup{inner: inner, rdb: rdb, ttl: ttl}
}

// LookupCompanyWebsite implements Lookup.
func (c *CachedLookup) LookupCompanyWebsite(ctx context.Context, company string) (string, error) {
	key := cachePrefix + strings.ToLower(strings.TrimSpace(company))

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if cached == cacheMiss {
			return "", nil
		}
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("[enrich] Cache read error (continuing uncached): %v", err)
	}

	site, err := c.inner.LookupCompanyWebsite(ctx, company)
	if err != nil {
		return "", err
	}

	val := site
	if val == "" {
		val = cacheMiss
	}
	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		log.Printf("[enrich] Cache write error: %v", err)
	}
	return site, nil
}
