package grpc

import (
	"context"

	"github.com/m-zajac/ghcard/internal/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AppService provides stats and cards for github users.
type AppService interface {
	Stats(ctx context.Context, login string) (*app.AggregatedStats, error)
	Card(ctx context.Context, login string, opts app.RenderOptions) ([]byte, error)
}

// Service implements CardServiceServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
	l          logrus.FieldLogger
}

var _ CardServiceServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService, l logrus.FieldLogger) *Service {
	return &Service{
		appService: appService,
		l:          l,
	}
}

// Stats returns aggregated stats of user given in request's "username" field.
func (s *Service) Stats(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	login, err := parseLogin(r)
	if err != nil {
		return nil, s.statusError(err)
	}

	stats, err := s.appService.Stats(ctx, login)
	if err != nil {
		return nil, s.statusError(errors.Wrap(err, "service.Stats"))
	}

	reply, err := statsToStruct(stats)
	if err != nil {
		return nil, s.statusError(err)
	}

	return reply, nil
}

// Card returns svg card of user given in request's "username" field.
func (s *Service) Card(ctx context.Context, r *structpb.Struct) (*wrapperspb.StringValue, error) {
	login, err := parseLogin(r)
	if err != nil {
		return nil, s.statusError(err)
	}
	opts, err := parseRenderOptions(r)
	if err != nil {
		return nil, s.statusError(err)
	}

	svg, err := s.appService.Card(ctx, login, opts)
	if err != nil {
		return nil, s.statusError(errors.Wrap(err, "service.Card"))
	}

	return wrapperspb.String(string(svg)), nil
}

// statusError converts app errors to grpc status errors.
// Internal errors are logged and their details are not sent to clients.
func (s *Service) statusError(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, "user not found")
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, "github api rate limit exceeded")
	default:
		s.l.Errorf("grpc request failed: %v", err)
		return status.Error(codes.Internal, "internal error")
	}
}
