package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of FishingService
const (
	FishingService_InitiateFishing_FullMethodName = "/tides.v1alpha1.FishingService/InitiateFishing"
	FishingService_FulfillFishing_FullMethodName  = "/tides.v1alpha1.FishingService/FulfillFishing"
	FishingService_GetFishingState_FullMethodName = "/tides.v1alpha1.FishingService/GetFishingState"
	FishingService_AbandonFishing_FullMethodName  = "/tides.v1alpha1.FishingService/AbandonFishing"
)

// FishingServiceServer runs the request/fulfillment fishing protocol
type FishingServiceServer interface {
	InitiateFishing(context.Context, *InitiateFishingRequest) (*InitiateFishingResponse, error)
	FulfillFishing(context.Context, *FulfillFishingRequest) (*FulfillFishingResponse, error)
	GetFishingState(context.Context, *GetFishingStateRequest) (*GetFishingStateResponse, error)
	AbandonFishing(context.Context, *AbandonFishingRequest) (*AbandonFishingResponse, error)
}

// UnimplementedFishingServiceServer returns Unimplemented for every method
type UnimplementedFishingServiceServer struct{}

func (UnimplementedFishingServiceServer) InitiateFishing(context.Context, *InitiateFishingRequest) (*InitiateFishingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InitiateFishing not implemented")
}

func (UnimplementedFishingServiceServer) FulfillFishing(context.Context, *FulfillFishingRequest) (*FulfillFishingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FulfillFishing not implemented")
}

func (UnimplementedFishingServiceServer) GetFishingState(context.Context, *GetFishingStateRequest) (*GetFishingStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFishingState not implemented")
}

func (UnimplementedFishingServiceServer) AbandonFishing(context.Context, *AbandonFishingRequest) (*AbandonFishingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AbandonFishing not implemented")
}

// RegisterFishingServiceServer registers srv on s
func RegisterFishingServiceServer(s grpc.ServiceRegistrar, srv FishingServiceServer) {
	s.RegisterService(&FishingService_ServiceDesc, srv)
}

func _FishingService_InitiateFishing_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(InitiateFishingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FishingServiceServer).InitiateFishing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FishingService_InitiateFishing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FishingServiceServer).InitiateFishing(ctx, req.(*InitiateFishingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FishingService_FulfillFishing_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(FulfillFishingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FishingServiceServer).FulfillFishing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FishingService_FulfillFishing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FishingServiceServer).FulfillFishing(ctx, req.(*FulfillFishingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FishingService_GetFishingState_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetFishingStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FishingServiceServer).GetFishingState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FishingService_GetFishingState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FishingServiceServer).GetFishingState(ctx, req.(*GetFishingStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FishingService_AbandonFishing_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(AbandonFishingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FishingServiceServer).AbandonFishing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FishingService_AbandonFishing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FishingServiceServer).AbandonFishing(ctx, req.(*AbandonFishingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FishingService_ServiceDesc is the grpc.ServiceDesc for FishingService
var FishingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tides.v1alpha1.FishingService",
	HandlerType: (*FishingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitiateFishing", Handler: _FishingService_InitiateFishing_Handler},
		{MethodName: "FulfillFishing", Handler: _FishingService_FulfillFishing_Handler},
		{MethodName: "GetFishingState", Handler: _FishingService_GetFishingState_Handler},
		{MethodName: "AbandonFishing", Handler: _FishingService_AbandonFishing_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tides/v1alpha1",
}

// FishingServiceClient is the client API for FishingService
type FishingServiceClient interface {
	InitiateFishing(ctx context.Context, in *InitiateFishingRequest, opts ...grpc.CallOption) (*InitiateFishingResponse, error)
	FulfillFishing(ctx context.Context, in *FulfillFishingRequest, opts ...grpc.CallOption) (*FulfillFishingResponse, error)
	GetFishingState(ctx context.Context, in *GetFishingStateRequest, opts ...grpc.CallOption) (*GetFishingStateResponse, error)
	AbandonFishing(ctx context.Context, in *AbandonFishingRequest, opts ...grpc.CallOption) (*AbandonFishingResponse, error)
}

type fishingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFishingServiceClient creates a client that speaks the JSON codec
func NewFishingServiceClient(cc grpc.ClientConnInterface) FishingServiceClient {
	return &fishingServiceClient{cc: cc}
}

func (c *fishingServiceClient) InitiateFishing(ctx context.Context, in *InitiateFishingRequest, opts ...grpc.CallOption) (*InitiateFishingResponse, error) {
	out := new(InitiateFishingResponse)
	if err := c.cc.Invoke(ctx, FishingService_InitiateFishing_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fishingServiceClient) FulfillFishing(ctx context.Context, in *FulfillFishingRequest, opts ...grpc.CallOption) (*FulfillFishingResponse, error) {
	out := new(FulfillFishingResponse)
	if err := c.cc.Invoke(ctx, FishingService_FulfillFishing_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fishingServiceClient) GetFishingState(ctx context.Context, in *GetFishingStateRequest, opts ...grpc.CallOption) (*GetFishingStateResponse, error) {
	out := new(GetFishingStateResponse)
	if err := c.cc.Invoke(ctx, FishingService_GetFishingState_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fishingServiceClient) AbandonFishing(ctx context.Context, in *AbandonFishingRequest, opts ...grpc.CallOption) (*AbandonFishingResponse, error) {
	out := new(AbandonFishingResponse)
	if err := c.cc.Invoke(ctx, FishingService_AbandonFishing_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
