package fishing_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/engine/fishing"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const now = int64(1_700_000_000)

type FishingStateTestSuite struct {
	suite.Suite
	req *entities.FishingRequest
}

func TestFishingStateSuite(t *testing.T) {
	suite.Run(t, new(FishingStateTestSuite))
}

func (s *FishingStateTestSuite) SetupTest() {
	s.req = &entities.FishingRequest{PlayerID: "player-1"}
}

func (s *FishingStateTestSuite) initiate(at int64) uint64 {
	out, err := fishing.Initiate(s.req, fishing.InitiateInput{BaitKind: 2, Now: at})
	s.Require().NoError(err)
	return out.Nonce
}

func (s *FishingStateTestSuite) TestInitiateFromIdle() {
	nonce := s.initiate(now)

	s.Assert().Equal(uint64(1), nonce)
	s.Assert().Equal(&entities.FishingRequest{
		PlayerID:      "player-1",
		PendingNonce:  1,
		BaitKindInUse: 2,
		FishingNonce:  1,
		IssuedAt:      now,
	}, s.req)
}

func (s *FishingStateTestSuite) TestNonceSingleFlight() {
	nonce := s.initiate(now)
	before := *s.req

	_, err := fishing.Initiate(s.req, fishing.InitiateInput{BaitKind: 2, Now: now + 1})
	s.Require().Error(err)
	s.Assert().Equal(entities.ReasonPendingRequestExists, errors.GetReason(err))
	s.Assert().Equal(before, *s.req)

	for _, wrong := range []uint64{nonce + 1, nonce + 100} {
		err = fishing.Fulfill(s.req, entities.FishingResult{Nonce: wrong, Timestamp: now}, now, fishing.DefaultSignatureTimeout)
		s.Require().Error(err)
		s.Assert().Equal(entities.ReasonNonceMismatch, errors.GetReason(err))
		s.Assert().True(errors.IsAborted(err))
		s.Assert().Equal(before, *s.req)
	}
}

func (s *FishingStateTestSuite) TestFulfillResetsToIdle() {
	nonce := s.initiate(now)

	err := fishing.Fulfill(s.req, entities.FishingResult{Nonce: nonce, SpeciesID: 4, Weight: 10, Timestamp: now}, now+5, fishing.DefaultSignatureTimeout)
	s.Require().NoError(err)
	s.Assert().False(s.req.IsPending())
	s.Assert().Equal(uint64(0), s.req.BaitKindInUse)
	s.Assert().Equal(uint64(1), s.req.FishingNonce)

	next := s.initiate(now + 10)
	s.Assert().Equal(uint64(2), next)
}

func (s *FishingStateTestSuite) TestFulfillFailures() {
	testCases := []struct {
		name    string
		pending bool
		result  entities.FishingResult
		reason  string
		code    errors.Code
	}{
		{name: "idle request", pending: false, result: entities.FishingResult{Nonce: 1, Timestamp: now}, reason: entities.ReasonNoPendingRequest, code: errors.CodeFailedPrecondition},
		{name: "zero nonce", pending: true, result: entities.FishingResult{Nonce: 0, Timestamp: now}, reason: entities.ReasonNonceMismatch, code: errors.CodeAborted},
		{name: "expired result", pending: true, result: entities.FishingResult{Nonce: 1, Timestamp: now - 301}, reason: entities.ReasonResultExpired, code: errors.CodeDeadlineExceeded},
		{name: "result from future", pending: true, result: entities.FishingResult{Nonce: 1, Timestamp: now + 1}, reason: entities.ReasonResultFromFuture, code: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.pending {
				s.initiate(now - 10)
			}
			before := *s.req

			err := fishing.Fulfill(s.req, tc.result, now, fishing.DefaultSignatureTimeout)
			s.Require().Error(err)
			s.Assert().Equal(tc.reason, errors.GetReason(err))
			s.Assert().Equal(tc.code, errors.GetCode(err))
			s.Assert().Equal(before, *s.req)
		})
	}
}

func (s *FishingStateTestSuite) TestTimestampWindowEdges() {
	s.Assert().NoError(fishing.VerifyTimestamp(now-300, now, fishing.DefaultSignatureTimeout))
	s.Assert().NoError(fishing.VerifyTimestamp(now, now, fishing.DefaultSignatureTimeout))
	s.Assert().Error(fishing.VerifyTimestamp(now-301, now, fishing.DefaultSignatureTimeout))
	s.Assert().Error(fishing.VerifyTimestamp(now+1, now, fishing.DefaultSignatureTimeout))
}

func (s *FishingStateTestSuite) TestExpiredPendingCanBeReplaced() {
	first := s.initiate(now)
	expiry := fishing.DefaultRequestExpiry

	_, err := fishing.Initiate(s.req, fishing.InitiateInput{BaitKind: 3, Now: now + 599, Expiry: expiry})
	s.Require().Error(err)

	out, err := fishing.Initiate(s.req, fishing.InitiateInput{BaitKind: 3, Now: now + 600, Expiry: expiry})
	s.Require().NoError(err)
	s.Assert().Equal(first, out.Replaced)
	s.Assert().Equal(first+1, out.Nonce)
	s.Assert().Equal(uint64(3), s.req.BaitKindInUse)

	// the replaced nonce can no longer be fulfilled
	err = fishing.Fulfill(s.req, entities.FishingResult{Nonce: first, Timestamp: now + 600}, now+600, fishing.DefaultSignatureTimeout)
	s.Assert().Equal(entities.ReasonNonceMismatch, errors.GetReason(err))
}

func (s *FishingStateTestSuite) TestAbandon() {
	_, err := fishing.Abandon(s.req, now, time.Minute)
	s.Assert().Equal(entities.ReasonNoPendingRequest, errors.GetReason(err))

	nonce := s.initiate(now)

	_, err = fishing.Abandon(s.req, now+30, time.Minute)
	s.Assert().Equal(entities.ReasonPendingRequestExists, errors.GetReason(err))
	s.Assert().True(s.req.IsPending())

	abandoned, err := fishing.Abandon(s.req, now+60, time.Minute)
	s.Require().NoError(err)
	s.Assert().Equal(nonce, abandoned)
	s.Assert().False(s.req.IsPending())
	s.Assert().Equal(nonce, s.req.FishingNonce)
}

func (s *FishingStateTestSuite) TestNonceOverflow() {
	s.req.FishingNonce = math.MaxUint64

	_, err := fishing.Initiate(s.req, fishing.InitiateInput{BaitKind: 1, Now: now})
	s.Require().Error(err)
	s.Assert().Equal(entities.ReasonArithmeticOverflow, errors.GetReason(err))
	s.Assert().False(s.req.IsPending())
}
