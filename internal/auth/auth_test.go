package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

func testClaim() auth.Claim {
	return auth.Claim{
		PlayerID:  "player-1",
		Nonce:     4,
		SpeciesID: 2,
		Weight:    350,
		Timestamp: 1_700_000_000,
	}
}

func TestDigestCoversEveryField(t *testing.T) {
	base := auth.Digest(testClaim())

	mutations := map[string]func(c *auth.Claim){
		"player":    func(c *auth.Claim) { c.PlayerID = "player-2" },
		"nonce":     func(c *auth.Claim) { c.Nonce++ },
		"species":   func(c *auth.Claim) { c.SpeciesID++ },
		"weight":    func(c *auth.Claim) { c.Weight++ },
		"timestamp": func(c *auth.Claim) { c.Timestamp++ },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := testClaim()
			mutate(&c)
			assert.NotEqual(t, base, auth.Digest(c))
		})
	}

	assert.Equal(t, base, auth.Digest(testClaim()))
}

func TestEd25519RoundTrip(t *testing.T) {
	signer, err := auth.GenerateSigner()
	require.NoError(t, err)

	verifier, err := auth.NewEd25519Verifier(signer.PublicKey())
	require.NoError(t, err)

	claim := testClaim()
	sig := signer.Sign(claim)
	require.NoError(t, verifier.Verify(context.Background(), claim, sig))

	tampered := claim
	tampered.Weight = 9999
	err = verifier.Verify(context.Background(), tampered, sig)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
	assert.Equal(t, entities.ReasonInvalidSignature, errors.GetReason(err))

	err = verifier.Verify(context.Background(), claim, sig[:10])
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestSeedAndKeyParsing(t *testing.T) {
	signer, err := auth.GenerateSigner()
	require.NoError(t, err)

	restored, err := auth.ParseSeed(signer.Seed())
	require.NoError(t, err)
	assert.Equal(t, signer.PublicKey(), restored.PublicKey())

	claim := testClaim()
	assert.Equal(t, signer.Sign(claim), restored.Sign(claim))

	_, err = auth.ParseSeed("not-hex")
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = auth.ParseSeed("abcd")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = auth.ParsePublicKey("00")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestTimestampOnlyVerifierAcceptsAnything(t *testing.T) {
	var v auth.Verifier = auth.TimestampOnlyVerifier{}
	assert.NoError(t, v.Verify(context.Background(), testClaim(), nil))
}

func TestClaimFor(t *testing.T) {
	claim := auth.ClaimFor("p", entities.FishingResult{Nonce: 1, SpeciesID: 2, Weight: 3, Timestamp: 4})
	assert.Equal(t, auth.Claim{PlayerID: "p", Nonce: 1, SpeciesID: 2, Weight: 3, Timestamp: 4}, claim)
}
