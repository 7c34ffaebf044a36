package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of MarketService
const (
	MarketService_SellCatch_FullMethodName   = "/tides.v1alpha1.MarketService/SellCatch"
	MarketService_GetMarket_FullMethodName   = "/tides.v1alpha1.MarketService/GetMarket"
	MarketService_ListMarkets_FullMethodName = "/tides.v1alpha1.MarketService/ListMarkets"
	MarketService_ListCatches_FullMethodName = "/tides.v1alpha1.MarketService/ListCatches"
)

// MarketServiceServer sells catches into the species markets
type MarketServiceServer interface {
	SellCatch(context.Context, *SellCatchRequest) (*SellCatchResponse, error)
	GetMarket(context.Context, *GetMarketRequest) (*GetMarketResponse, error)
	ListMarkets(context.Context, *ListMarketsRequest) (*ListMarketsResponse, error)
	ListCatches(context.Context, *ListCatchesRequest) (*ListCatchesResponse, error)
}

// UnimplementedMarketServiceServer returns Unimplemented for every method
type UnimplementedMarketServiceServer struct{}

func (UnimplementedMarketServiceServer) SellCatch(context.Context, *SellCatchRequest) (*SellCatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SellCatch not implemented")
}

func (UnimplementedMarketServiceServer) GetMarket(context.Context, *GetMarketRequest) (*GetMarketResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMarket not implemented")
}

func (UnimplementedMarketServiceServer) ListMarkets(context.Context, *ListMarketsRequest) (*ListMarketsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMarkets not implemented")
}

func (UnimplementedMarketServiceServer) ListCatches(context.Context, *ListCatchesRequest) (*ListCatchesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCatches not implemented")
}

// RegisterMarketServiceServer registers srv on s
func RegisterMarketServiceServer(s grpc.ServiceRegistrar, srv MarketServiceServer) {
	s.RegisterService(&MarketService_ServiceDesc, srv)
}

func _MarketService_SellCatch_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(SellCatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).SellCatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketService_SellCatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServiceServer).SellCatch(ctx, req.(*SellCatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_GetMarket_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetMarketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).GetMarket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketService_GetMarket_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServiceServer).GetMarket(ctx, req.(*GetMarketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_ListMarkets_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(ListMarketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).ListMarkets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketService_ListMarkets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServiceServer).ListMarkets(ctx, req.(*ListMarketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketService_ListCatches_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(ListCatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketServiceServer).ListCatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketService_ListCatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketServiceServer).ListCatches(ctx, req.(*ListCatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MarketService_ServiceDesc is the grpc.ServiceDesc for MarketService
var MarketService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tides.v1alpha1.MarketService",
	HandlerType: (*MarketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SellCatch", Handler: _MarketService_SellCatch_Handler},
		{MethodName: "GetMarket", Handler: _MarketService_GetMarket_Handler},
		{MethodName: "ListMarkets", Handler: _MarketService_ListMarkets_Handler},
		{MethodName: "ListCatches", Handler: _MarketService_ListCatches_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tides/v1alpha1",
}

// MarketServiceClient is the client API for MarketService
type MarketServiceClient interface {
	SellCatch(ctx context.Context, in *SellCatchRequest, opts ...grpc.CallOption) (*SellCatchResponse, error)
	GetMarket(ctx context.Context, in *GetMarketRequest, opts ...grpc.CallOption) (*GetMarketResponse, error)
	ListMarkets(ctx context.Context, in *ListMarketsRequest, opts ...grpc.CallOption) (*ListMarketsResponse, error)
	ListCatches(ctx context.Context, in *ListCatchesRequest, opts ...grpc.CallOption) (*ListCatchesResponse, error)
}

type marketServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMarketServiceClient creates a client that speaks the JSON codec
func NewMarketServiceClient(cc grpc.ClientConnInterface) MarketServiceClient {
	return &marketServiceClient{cc: cc}
}

func (c *marketServiceClient) SellCatch(ctx context.Context, in *SellCatchRequest, opts ...grpc.CallOption) (*SellCatchResponse, error) {
	out := new(SellCatchResponse)
	if err := c.cc.Invoke(ctx, MarketService_SellCatch_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketServiceClient) GetMarket(ctx context.Context, in *GetMarketRequest, opts ...grpc.CallOption) (*GetMarketResponse, error) {
	out := new(GetMarketResponse)
	if err := c.cc.Invoke(ctx, MarketService_GetMarket_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketServiceClient) ListMarkets(ctx context.Context, in *ListMarketsRequest, opts ...grpc.CallOption) (*ListMarketsResponse, error) {
	out := new(ListMarketsResponse)
	if err := c.cc.Invoke(ctx, MarketService_ListMarkets_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketServiceClient) ListCatches(ctx context.Context, in *ListCatchesRequest, opts ...grpc.CallOption) (*ListCatchesResponse, error) {
	out := new(ListCatchesResponse)
	if err := c.cc.Invoke(ctx, MarketService_ListCatches_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
