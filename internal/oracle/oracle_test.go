package oracle_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/oracle"
)

// scriptedRoller returns queued rolls in order
type scriptedRoller struct {
	rolls []int
	sizes []int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ dice.Roller = (*scriptedRoller)(nil)

type OracleTestSuite struct {
	suite.Suite
	signer   *auth.Signer
	verifier *auth.Ed25519Verifier
	catalog  *catalog.Catalog
}

func (s *OracleTestSuite) SetupTest() {
	var err error
	s.signer, err = auth.GenerateSigner()
	s.Require().NoError(err)
	s.verifier, err = auth.NewEd25519Verifier(s.signer.PublicKey())
	s.Require().NoError(err)
	s.catalog = catalog.Default()
}

func (s *OracleTestSuite) newOracle(roller dice.Roller) *oracle.Oracle {
	o, err := oracle.New(&oracle.Config{Catalog: s.catalog, Roller: roller, Signer: s.signer})
	s.Require().NoError(err)
	return o
}

func (s *OracleTestSuite) TestCatch() {
	roller := &scriptedRoller{rolls: []int{4, 2, 321}}
	out, err := s.newOracle(roller).Roll(context.Background(), oracle.RollInput{
		PlayerID:  "player-1",
		Nonce:     7,
		Timestamp: 1_700_000_000,
	})
	s.Require().NoError(err)

	s.Equal(uint64(2), out.Result.SpeciesID)
	s.Equal(uint16(321), out.Result.Weight)
	s.Equal(uint64(7), out.Result.Nonce)
	s.Equal([]int{oracle.MissSides, 4, 400}, roller.sizes)

	claim := auth.ClaimFor("player-1", out.Result)
	s.NoError(s.verifier.Verify(context.Background(), claim, out.Signature))
}

func (s *OracleTestSuite) TestMiss() {
	out, err := s.newOracle(&scriptedRoller{rolls: []int{1}}).Roll(context.Background(), oracle.RollInput{
		PlayerID: "player-1",
		Nonce:    1,
	})
	s.Require().NoError(err)
	s.Zero(out.Result.SpeciesID)
	s.Zero(out.Result.Weight)
	s.NoError(s.verifier.Verify(context.Background(), auth.ClaimFor("player-1", out.Result), out.Signature))
}

func (s *OracleTestSuite) TestRejectsZeroNonce() {
	_, err := s.newOracle(dice.DefaultRoller).Roll(context.Background(), oracle.RollInput{PlayerID: "p"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OracleTestSuite) TestDefaultRollerStaysInCatalog() {
	o := s.newOracle(dice.DefaultRoller)
	for i := 0; i < 50; i++ {
		out, err := o.Roll(context.Background(), oracle.RollInput{PlayerID: "p", Nonce: uint64(i + 1)})
		s.Require().NoError(err)
		if out.Result.SpeciesID == 0 {
			continue
		}
		sp, err := s.catalog.GetSpecies(out.Result.SpeciesID)
		s.Require().NoError(err)
		s.LessOrEqual(out.Result.Weight, sp.MaxWeight)
		s.Positive(out.Result.Weight)
	}
}

func TestOracleTestSuite(t *testing.T) {
	suite.Run(t, new(OracleTestSuite))
}

func TestNewValidates(t *testing.T) {
	_, err := oracle.New(&oracle.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
