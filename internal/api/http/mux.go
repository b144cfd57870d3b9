package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/ghcard/internal/app"
)

// Service provides stats and cards for github users.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghcard/internal/api/http Service
type Service interface {
	Stats(ctx context.Context, login string) (*app.AggregatedStats, error)
	Card(ctx context.Context, login string, opts app.RenderOptions) ([]byte, error)
}

// MuxConfig holds router settings.
type MuxConfig struct {
	// Timeout of a single api request.
	Timeout time.Duration
	// CardMaxAge is sent to browsers in Cache-Control header of card responses.
	CardMaxAge time.Duration
	// Limiter limits api requests per client. Nil disables limiting.
	Limiter RateLimiter
	// CacheLen reports number of cached profiles for health endpoint.
	CacheLen func() int
	// TrustProxyHeaders makes client ip come from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites these headers, otherwise clients can dodge the limiter.
	TrustProxyHeaders bool
}

// NewMux creates router for app's http server
func NewMux(service Service, cfg MuxConfig, l logrus.FieldLogger) http.Handler {
	getLogin := func(r *http.Request) string {
		return chi.URLParam(r, "username")
	}

	r := chi.NewRouter()
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(NewRequestLogMiddleware(l))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(NewRateLimitMiddleware(cfg.Limiter))
		}

		r.Get("/health", NewHealthHandler(cfg.CacheLen))

		r.Group(func(r chi.Router) {
			r.Use(NewTimeoutMiddleware(cfg.Timeout))

			r.Get("/stats/{username}", NewStatsHandler(getLogin, service, l))
			r.Get("/card/{username}", NewCardHandler(getLogin, service, cfg.CardMaxAge, l))
		})
	})

	return r
}
