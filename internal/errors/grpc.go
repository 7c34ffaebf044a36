package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error.
// Metadata (including the domain reason) travels as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if len(customErr.Meta) > 0 {
			if withDetails, detailErr := st.WithDetails(metaToStruct(customErr.Meta)); detailErr == nil {
				st = withDetails
			}
		}

		return st.Err()
	}

	// Default to internal error
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// metaToStruct converts error metadata into a protobuf Struct.
// Values structpb cannot represent directly are rendered with fmt.
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		val, err := structpb.NewValue(v)
		if err != nil {
			val = structpb.NewStringValue(fmt.Sprint(v))
		}
		fields[k] = val
	}
	return &structpb.Struct{Fields: fields}
}
