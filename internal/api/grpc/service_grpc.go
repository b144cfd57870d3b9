package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	cardServiceName        = "ghcard.CardService"
	cardServiceStatsMethod = "/ghcard.CardService/Stats"
	cardServiceCardMethod  = "/ghcard.CardService/Card"
)

// CardServiceServer is the server API for CardService service.
type CardServiceServer interface {
	Stats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Card(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

// CardServiceClient is the client API for CardService service.
type CardServiceClient interface {
	Stats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Card(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type cardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCardServiceClient creates CardService client using given connection.
func NewCardServiceClient(cc grpc.ClientConnInterface) CardServiceClient {
	return &cardServiceClient{cc}
}

func (c *cardServiceClient) Stats(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, cardServiceStatsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cardServiceClient) Card(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, cardServiceCardMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterCardServiceServer registers CardService implementation in grpc server.
func RegisterCardServiceServer(s grpc.ServiceRegistrar, srv CardServiceServer) {
	s.RegisterService(&cardServiceDesc, srv)
}

func cardServiceStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: cardServiceStatsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardServiceServer).Stats(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func cardServiceCardHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).Card(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: cardServiceCardMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CardServiceServer).Card(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var cardServiceDesc = grpc.ServiceDesc{
	ServiceName: cardServiceName,
	HandlerType: (*CardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Stats",
			Handler:    cardServiceStatsHandler,
		},
		{
			MethodName: "Card",
			Handler:    cardServiceCardHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ghcard.proto",
}
