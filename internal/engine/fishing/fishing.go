// Package fishing implements the per-player fishing request state machine.
//
// A request is Idle when PendingNonce is 0 and Pending when PendingNonce equals
// FishingNonce. Initiate moves Idle to Pending and Fulfill moves Pending back to
// Idle. Failed transitions leave the request unchanged.
package fishing

import (
	"math"
	"time"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const (
	// DefaultSignatureTimeout bounds how old a fulfillment result may be
	DefaultSignatureTimeout = 300 * time.Second

	// DefaultRequestExpiry is how long a pending request blocks a new initiation
	DefaultRequestExpiry = 10 * time.Minute
)

// InitiateInput holds the arguments of an initiation
type InitiateInput struct {
	BaitKind uint64
	Now      int64

	// Expiry lets a pending request older than this be replaced. Zero disables it.
	Expiry time.Duration
}

// InitiateOutput reports the issued nonce
type InitiateOutput struct {
	Nonce uint64

	// Replaced is the nonce of an expired request that was abandoned, if any
	Replaced uint64
}

// Initiate issues a new nonce for the request
func Initiate(req *entities.FishingRequest, input InitiateInput) (*InitiateOutput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("fishing request is required")
	}

	var replaced uint64
	if req.IsPending() {
		if !Expired(req, input.Now, input.Expiry) {
			return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonPendingRequestExists,
				"fishing request %d is still pending", req.PendingNonce).
				WithMeta("pending_nonce", req.PendingNonce)
		}
		replaced = req.PendingNonce
	}

	if req.FishingNonce == math.MaxUint64 {
		return nil, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"fishing nonce exhausted")
	}

	req.FishingNonce++
	req.PendingNonce = req.FishingNonce
	req.BaitKindInUse = input.BaitKind
	req.IssuedAt = input.Now

	return &InitiateOutput{Nonce: req.PendingNonce, Replaced: replaced}, nil
}

// Expired reports whether a pending request is older than expiry at now
func Expired(req *entities.FishingRequest, now int64, expiry time.Duration) bool {
	if !req.IsPending() || expiry <= 0 {
		return false
	}
	return now-req.IssuedAt >= int64(expiry/time.Second)
}

// Abandon clears a pending request that has expired
func Abandon(req *entities.FishingRequest, now int64, expiry time.Duration) (uint64, error) {
	if req == nil || !req.IsPending() {
		return 0, errors.Reasoned(errors.CodeFailedPrecondition, entities.ReasonNoPendingRequest,
			"no pending fishing request")
	}
	if !Expired(req, now, expiry) {
		return 0, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonPendingRequestExists,
			"fishing request %d has not expired", req.PendingNonce)
	}

	nonce := req.PendingNonce
	reset(req)
	return nonce, nil
}

// Fulfill validates a result against the pending request and resets it to Idle
func Fulfill(req *entities.FishingRequest, result entities.FishingResult, now int64, timeout time.Duration) error {
	if req == nil || !req.IsPending() {
		return errors.Reasoned(errors.CodeFailedPrecondition, entities.ReasonNoPendingRequest,
			"no pending fishing request")
	}
	if result.Nonce != req.PendingNonce {
		return errors.Reasonedf(errors.CodeAborted, entities.ReasonNonceMismatch,
			"result nonce %d does not match pending nonce %d", result.Nonce, req.PendingNonce).
			WithMeta("pending_nonce", req.PendingNonce)
	}
	if result.Nonce == 0 {
		return errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidResult,
			"result nonce must be positive")
	}
	if err := VerifyTimestamp(result.Timestamp, now, timeout); err != nil {
		return err
	}

	reset(req)
	return nil
}

// VerifyTimestamp checks now - timeout <= ts <= now
func VerifyTimestamp(ts, now int64, timeout time.Duration) error {
	if ts > now {
		return errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonResultFromFuture,
			"result timestamp %d is after %d", ts, now)
	}
	if ts < now-int64(timeout/time.Second) {
		return errors.Reasonedf(errors.CodeDeadlineExceeded, entities.ReasonResultExpired,
			"result timestamp %d is older than %s", ts, timeout)
	}
	return nil
}

func reset(req *entities.FishingRequest) {
	req.PendingNonce = 0
	req.BaitKindInUse = 0
	req.IssuedAt = 0
}
