package limiter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m-zajac/ghcard/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// githubAPIDoer spaces out profile fetches so the shared github token budget isn't drained by bursts.
type githubAPIDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer wraps doer used by the github client, allowing at most maxRate profile fetches per second.
func NewHTTPDoer(doer HTTPDoer, maxRate float64) HTTPDoer {
	return &githubAPIDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// Do waits for a free slot, then executes the request.
//
// When the request deadline comes before the next slot, app.TooManyRequestsError is returned
// so the caller can answer 429. A canceled request returns the context error, it is not a rate limit.
func (d *githubAPIDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("waiting for github api slot: %w", err)
		}
		return nil, app.TooManyRequestsError(fmt.Sprintf("no github api slot before deadline for %s: %v", r.URL.Path, err))
	}

	return d.doer.Do(r)
}
