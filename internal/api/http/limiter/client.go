package limiter

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

// ClientLimiter limits request rate per client key (remote ip).
// Limiters of least recently seen clients are dropped when size is exceeded.
type ClientLimiter struct {
	limiters *lru.Cache
	limit    rate.Limit
	burst    int

	m sync.Mutex
}

// NewClientLimiter creates ClientLimiter allowing requests per period for each client.
// Requests are allowed in bursts of up to burst size.
func NewClientLimiter(requests int, period time.Duration, burst int, size int) (*ClientLimiter, error) {
	if requests <= 0 || period <= 0 {
		return nil, fmt.Errorf("invalid rate: %d per %v", requests, period)
	}
	if burst <= 0 {
		burst = requests
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating limiters cache: %w", err)
	}

	return &ClientLimiter{
		limiters: cache,
		limit:    rate.Every(period / time.Duration(requests)),
		burst:    burst,
	}, nil
}

// Allow reports whether the client identified by key can make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	return l.limiter(key).Allow()
}

func (l *ClientLimiter) limiter(key string) *rate.Limiter {
	l.m.Lock()
	defer l.m.Unlock()

	if v, ok := l.limiters.Get(key); ok {
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(key, limiter)

	return limiter
}
