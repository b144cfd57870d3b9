package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/ghcard/internal/app"
)

// CachedClient wraps profile client with caching layer.
type CachedClient struct {
	client       app.ProfileClient
	profileCache *lru.Cache
	ttl          time.Duration
}

var _ app.ProfileClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.ProfileClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	profileCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}

	return &CachedClient{
		client:       client,
		profileCache: profileCache,
		ttl:          ttl,
	}, nil
}

// Profile returns user profile. Logins are case insensitive.
func (c *CachedClient) Profile(ctx context.Context, login string) (*app.RawProfile, error) {
	key := c.profileCacheKey(login)
	val, ok := c.profileCache.Get(key)
	if ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	profile, err := c.client.Profile(ctx, login)
	if err != nil {
		return profile, err
	}

	entry := profileCacheEntry{
		created: time.Now(),
		data:    profile,
	}
	c.profileCache.Add(key, entry)

	return profile, nil
}

// Len returns number of cached profiles, including expired ones.
func (c *CachedClient) Len() int {
	return c.profileCache.Len()
}

func (c *CachedClient) profileCacheKey(login string) string {
	return strings.ToLower(login)
}

type profileCacheEntry struct {
	created time.Time
	data    *app.RawProfile
}
