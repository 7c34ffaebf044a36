// Package errors provides the structured error type used across tides-api.
//
// Every error carries a Code (mapped to a gRPC status code), a user-facing
// message, an optional cause and a metadata map. Domain rejections additionally
// carry a machine-readable reason under the "reason" metadata key so callers can
// distinguish, say, OUT_OF_BOUNDS from POSITION_OCCUPIED without parsing text.
//
// # Basic Usage
//
//	err := errors.NotFound("catch not found").
//	    WithMeta("player_id", playerID).
//	    WithMeta("instance_id", instanceID)
//
//	err := errors.Reasoned(errors.CodeOutOfRange, entities.ReasonOutOfBounds,
//	    "item footprint exceeds the grid")
//
// Wrapping keeps the original code and metadata:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load inventory")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) { ... }
//	if errors.HasReason(err, entities.ReasonNonceMismatch) { ... }
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if input.PlayerID == "" {
//	    vb.RequiredField("player_id")
//	}
//	if err := vb.Build(); err != nil {
//	    return err // InvalidArgument, reason INVALID_FIELDS
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err); metadata is attached to the status
// as a google.protobuf.Struct detail. Clients call errors.FromGRPCError to get
// the code, message and reason back.
package errors
