package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of InventoryService
const (
	InventoryService_GetInventory_FullMethodName = "/tides.v1alpha1.InventoryService/GetInventory"
	InventoryService_EquipItem_FullMethodName    = "/tides.v1alpha1.InventoryService/EquipItem"
	InventoryService_RemoveItem_FullMethodName   = "/tides.v1alpha1.InventoryService/RemoveItem"
	InventoryService_QueryCell_FullMethodName    = "/tides.v1alpha1.InventoryService/QueryCell"
)

// InventoryServiceServer manages the cargo grid of a ship
type InventoryServiceServer interface {
	GetInventory(context.Context, *GetInventoryRequest) (*GetInventoryResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error)
	QueryCell(context.Context, *QueryCellRequest) (*QueryCellResponse, error)
}

// UnimplementedInventoryServiceServer returns Unimplemented for every method
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) GetInventory(context.Context, *GetInventoryRequest) (*GetInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInventory not implemented")
}

func (UnimplementedInventoryServiceServer) EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipItem not implemented")
}

func (UnimplementedInventoryServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedInventoryServiceServer) QueryCell(context.Context, *QueryCellRequest) (*QueryCellResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QueryCell not implemented")
}

// RegisterInventoryServiceServer registers srv on s
func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_GetInventory_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).GetInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_GetInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).GetInventory(ctx, req.(*GetInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_EquipItem_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(EquipItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).EquipItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_EquipItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).EquipItem(ctx, req.(*EquipItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_RemoveItem_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(RemoveItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).RemoveItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_RemoveItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).RemoveItem(ctx, req.(*RemoveItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_QueryCell_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(QueryCellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).QueryCell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_QueryCell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).QueryCell(ctx, req.(*QueryCellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tides.v1alpha1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetInventory", Handler: _InventoryService_GetInventory_Handler},
		{MethodName: "EquipItem", Handler: _InventoryService_EquipItem_Handler},
		{MethodName: "RemoveItem", Handler: _InventoryService_RemoveItem_Handler},
		{MethodName: "QueryCell", Handler: _InventoryService_QueryCell_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tides/v1alpha1",
}

// InventoryServiceClient is the client API for InventoryService
type InventoryServiceClient interface {
	GetInventory(ctx context.Context, in *GetInventoryRequest, opts ...grpc.CallOption) (*GetInventoryResponse, error)
	EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error)
	QueryCell(ctx context.Context, in *QueryCellRequest, opts ...grpc.CallOption) (*QueryCellResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInventoryServiceClient creates a client that speaks the JSON codec
func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) GetInventory(ctx context.Context, in *GetInventoryRequest, opts ...grpc.CallOption) (*GetInventoryResponse, error) {
	out := new(GetInventoryResponse)
	if err := c.cc.Invoke(ctx, InventoryService_GetInventory_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error) {
	out := new(EquipItemResponse)
	if err := c.cc.Invoke(ctx, InventoryService_EquipItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error) {
	out := new(RemoveItemResponse)
	if err := c.cc.Invoke(ctx, InventoryService_RemoveItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) QueryCell(ctx context.Context, in *QueryCellRequest, opts ...grpc.CallOption) (*QueryCellResponse, error) {
	out := new(QueryCellResponse)
	if err := c.cc.Invoke(ctx, InventoryService_QueryCell_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
