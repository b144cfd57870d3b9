package app

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ProfileClient returns raw github profile data
//
//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/ghcard/internal/app ProfileClient,CardRenderer
type ProfileClient interface {
	Profile(ctx context.Context, login string) (*RawProfile, error)
}

// CardRenderer renders aggregated stats as an svg card
type CardRenderer interface {
	Render(stats AggregatedStats, opts RenderOptions) ([]byte, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	client   ProfileClient
	renderer CardRenderer
	timeout  time.Duration
	now      func() time.Time
}

// NewService creates new Service instance
func NewService(client ProfileClient, renderer CardRenderer, timeout time.Duration) *Service {
	return &Service{
		client:   client,
		renderer: renderer,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Stats fetches the profile of given login and returns aggregated stats.
func (s *Service) Stats(ctx context.Context, login string) (*AggregatedStats, error) {
	if !loginPattern.MatchString(login) {
		return nil, InvalidRequestError("invalid username")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	profile, err := s.client.Profile(ctx, login)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving profile")
	}

	stats, err := Aggregate(profile, s.now().UTC())
	if err != nil {
		return nil, errors.Wrapf(err, "aggregating profile %s", login)
	}

	return &stats, nil
}

// Card returns svg card for given login.
func (s *Service) Card(ctx context.Context, login string, opts RenderOptions) ([]byte, error) {
	stats, err := s.Stats(ctx, login)
	if err != nil {
		return nil, err
	}

	opts.Accent = NormalizeAccent(opts.Accent)
	svg, err := s.renderer.Render(*stats, opts)
	if err != nil {
		return nil, errors.Wrap(err, "rendering card")
	}

	return svg, nil
}
