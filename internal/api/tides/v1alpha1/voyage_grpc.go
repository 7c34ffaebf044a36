package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of VoyageService
const (
	VoyageService_RegisterPlayer_FullMethodName = "/tides.v1alpha1.VoyageService/RegisterPlayer"
	VoyageService_GetPlayer_FullMethodName      = "/tides.v1alpha1.VoyageService/GetPlayer"
	VoyageService_MovePlayer_FullMethodName     = "/tides.v1alpha1.VoyageService/MovePlayer"
	VoyageService_PurchaseFuel_FullMethodName   = "/tides.v1alpha1.VoyageService/PurchaseFuel"
	VoyageService_GrantBait_FullMethodName      = "/tides.v1alpha1.VoyageService/GrantBait"
	VoyageService_PurchaseBait_FullMethodName   = "/tides.v1alpha1.VoyageService/PurchaseBait"
)

// VoyageServiceServer registers players and sails them across the map
type VoyageServiceServer interface {
	RegisterPlayer(context.Context, *RegisterPlayerRequest) (*RegisterPlayerResponse, error)
	GetPlayer(context.Context, *GetPlayerRequest) (*GetPlayerResponse, error)
	MovePlayer(context.Context, *MovePlayerRequest) (*MovePlayerResponse, error)
	PurchaseFuel(context.Context, *PurchaseFuelRequest) (*PurchaseFuelResponse, error)
	GrantBait(context.Context, *GrantBaitRequest) (*GrantBaitResponse, error)
	PurchaseBait(context.Context, *PurchaseBaitRequest) (*PurchaseBaitResponse, error)
}

// UnimplementedVoyageServiceServer returns Unimplemented for every method
type UnimplementedVoyageServiceServer struct{}

func (UnimplementedVoyageServiceServer) RegisterPlayer(context.Context, *RegisterPlayerRequest) (*RegisterPlayerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterPlayer not implemented")
}

func (UnimplementedVoyageServiceServer) GetPlayer(context.Context, *GetPlayerRequest) (*GetPlayerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPlayer not implemented")
}

func (UnimplementedVoyageServiceServer) MovePlayer(context.Context, *MovePlayerRequest) (*MovePlayerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MovePlayer not implemented")
}

func (UnimplementedVoyageServiceServer) PurchaseFuel(context.Context, *PurchaseFuelRequest) (*PurchaseFuelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PurchaseFuel not implemented")
}

func (UnimplementedVoyageServiceServer) GrantBait(context.Context, *GrantBaitRequest) (*GrantBaitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GrantBait not implemented")
}

func (UnimplementedVoyageServiceServer) PurchaseBait(context.Context, *PurchaseBaitRequest) (*PurchaseBaitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PurchaseBait not implemented")
}

// RegisterVoyageServiceServer registers srv on s
func RegisterVoyageServiceServer(s grpc.ServiceRegistrar, srv VoyageServiceServer) {
	s.RegisterService(&VoyageService_ServiceDesc, srv)
}

func _VoyageService_RegisterPlayer_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(RegisterPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).RegisterPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_RegisterPlayer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).RegisterPlayer(ctx, req.(*RegisterPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoyageService_GetPlayer_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetPlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).GetPlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_GetPlayer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).GetPlayer(ctx, req.(*GetPlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoyageService_MovePlayer_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(MovePlayerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).MovePlayer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_MovePlayer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).MovePlayer(ctx, req.(*MovePlayerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoyageService_PurchaseFuel_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(PurchaseFuelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).PurchaseFuel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_PurchaseFuel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).PurchaseFuel(ctx, req.(*PurchaseFuelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoyageService_GrantBait_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GrantBaitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).GrantBait(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_GrantBait_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).GrantBait(ctx, req.(*GrantBaitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VoyageService_PurchaseBait_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(PurchaseBaitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoyageServiceServer).PurchaseBait(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VoyageService_PurchaseBait_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VoyageServiceServer).PurchaseBait(ctx, req.(*PurchaseBaitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VoyageService_ServiceDesc is the grpc.ServiceDesc for VoyageService
var VoyageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tides.v1alpha1.VoyageService",
	HandlerType: (*VoyageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterPlayer", Handler: _VoyageService_RegisterPlayer_Handler},
		{MethodName: "GetPlayer", Handler: _VoyageService_GetPlayer_Handler},
		{MethodName: "MovePlayer", Handler: _VoyageService_MovePlayer_Handler},
		{MethodName: "PurchaseFuel", Handler: _VoyageService_PurchaseFuel_Handler},
		{MethodName: "GrantBait", Handler: _VoyageService_GrantBait_Handler},
		{MethodName: "PurchaseBait", Handler: _VoyageService_PurchaseBait_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tides/v1alpha1",
}

// VoyageServiceClient is the client API for VoyageService
type VoyageServiceClient interface {
	RegisterPlayer(ctx context.Context, in *RegisterPlayerRequest, opts ...grpc.CallOption) (*RegisterPlayerResponse, error)
	GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*GetPlayerResponse, error)
	MovePlayer(ctx context.Context, in *MovePlayerRequest, opts ...grpc.CallOption) (*MovePlayerResponse, error)
	PurchaseFuel(ctx context.Context, in *PurchaseFuelRequest, opts ...grpc.CallOption) (*PurchaseFuelResponse, error)
	GrantBait(ctx context.Context, in *GrantBaitRequest, opts ...grpc.CallOption) (*GrantBaitResponse, error)
	PurchaseBait(ctx context.Context, in *PurchaseBaitRequest, opts ...grpc.CallOption) (*PurchaseBaitResponse, error)
}

type voyageServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewVoyageServiceClient creates a client that speaks the JSON codec
func NewVoyageServiceClient(cc grpc.ClientConnInterface) VoyageServiceClient {
	return &voyageServiceClient{cc: cc}
}

func (c *voyageServiceClient) RegisterPlayer(ctx context.Context, in *RegisterPlayerRequest, opts ...grpc.CallOption) (*RegisterPlayerResponse, error) {
	out := new(RegisterPlayerResponse)
	if err := c.cc.Invoke(ctx, VoyageService_RegisterPlayer_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voyageServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*GetPlayerResponse, error) {
	out := new(GetPlayerResponse)
	if err := c.cc.Invoke(ctx, VoyageService_GetPlayer_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voyageServiceClient) MovePlayer(ctx context.Context, in *MovePlayerRequest, opts ...grpc.CallOption) (*MovePlayerResponse, error) {
	out := new(MovePlayerResponse)
	if err := c.cc.Invoke(ctx, VoyageService_MovePlayer_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voyageServiceClient) PurchaseFuel(ctx context.Context, in *PurchaseFuelRequest, opts ...grpc.CallOption) (*PurchaseFuelResponse, error) {
	out := new(PurchaseFuelResponse)
	if err := c.cc.Invoke(ctx, VoyageService_PurchaseFuel_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voyageServiceClient) GrantBait(ctx context.Context, in *GrantBaitRequest, opts ...grpc.CallOption) (*GrantBaitResponse, error) {
	out := new(GrantBaitResponse)
	if err := c.cc.Invoke(ctx, VoyageService_GrantBait_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *voyageServiceClient) PurchaseBait(ctx context.Context, in *PurchaseBaitRequest, opts ...grpc.CallOption) (*PurchaseBaitResponse, error) {
	out := new(PurchaseBaitResponse)
	if err := c.cc.Invoke(ctx, VoyageService_PurchaseBait_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
