package errors

import "google.golang.org/grpc/codes"

// Code classifies an error. Each code maps onto exactly one gRPC code.
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// CodeInvalidArgument rejects malformed input: bad coordinates, unknown directions,
	// zero amounts, results from the future.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeDeadlineExceeded marks a fishing result signed outside the signature window
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"

	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeFailedPrecondition rejects a valid request the current state does not allow,
	// such as casting with a pending request or moving on cooldown.
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"

	// CodeAborted covers nonce mismatches and contended market settles
	CodeAborted Code = "ABORTED"

	// CodeOutOfRange covers grid and map bounds and checked arithmetic overflow
	CodeOutOfRange Code = "OUT_OF_RANGE"

	CodeInternal        Code = "INTERNAL"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeInternal:           codes.Internal,
	CodeUnauthenticated:    codes.Unauthenticated,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the corresponding gRPC code. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC reverses GRPCCode. gRPC codes the service never emits map to CodeInternal.
func codeFromGRPC(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
