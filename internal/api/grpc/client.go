package grpc

import (
	"context"

	"github.com/m-zajac/ghcard/internal/app"
	"github.com/pkg/errors"
	grpc "google.golang.org/grpc"
)

// Client calls remote CardService.
type Client struct {
	client CardServiceClient
}

// NewClient creates Client using given connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{
		client: NewCardServiceClient(cc),
	}
}

// Stats returns aggregated stats of given user as generic json-like map.
func (c *Client) Stats(ctx context.Context, login string) (map[string]interface{}, error) {
	reply, err := c.client.Stats(ctx, NewStatsRequest(login))
	if err != nil {
		return nil, errors.Wrap(err, "calling Stats")
	}

	return reply.AsMap(), nil
}

// Card returns svg card of given user.
func (c *Client) Card(ctx context.Context, login string, opts app.RenderOptions) ([]byte, error) {
	reply, err := c.client.Card(ctx, NewCardRequest(login, opts))
	if err != nil {
		return nil, errors.Wrap(err, "calling Card")
	}

	return []byte(reply.GetValue()), nil
}
