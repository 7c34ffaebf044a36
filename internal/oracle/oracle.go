// Package oracle is a development stand-in for the off-chain fishing oracle.
// It rolls catches with rpg-toolkit dice and signs the results.
package oracle

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const (
	// MissSides is the die rolled for a miss; a 1 lands nothing
	MissSides = 6

	// DefaultMaxWeight applies to species without a max weight
	DefaultMaxWeight = uint16(100)
)

// Config contains the dependencies of an Oracle
type Config struct {
	Catalog catalog.Lookup
	Roller  dice.Roller
	Signer  *auth.Signer
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Signer == nil {
		vb.RequiredField("Signer")
	}
	return vb.Build()
}

// Oracle rolls and signs fishing results
type Oracle struct {
	catalog catalog.Lookup
	roller  dice.Roller
	signer  *auth.Signer
}

// New creates an Oracle
func New(cfg *Config) (*Oracle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Oracle{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		signer:  cfg.Signer,
	}, nil
}

// RollInput identifies the pending request being answered
type RollInput struct {
	PlayerID  string
	Nonce     uint64
	Timestamp int64
}

// RollOutput is a signed result ready for fulfillment
type RollOutput struct {
	Result    entities.FishingResult
	Signature []byte
}

// Roll decides the catch for a pending request and signs it
func (o *Oracle) Roll(_ context.Context, input RollInput) (*RollOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Nonce == 0 {
		return nil, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidResult,
			"nonce must be positive")
	}

	result := entities.FishingResult{
		Nonce:     input.Nonce,
		Timestamp: input.Timestamp,
	}

	miss, err := o.roller.Roll(MissSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll for a bite")
	}

	species := o.catalog.ListSpecies()
	if miss != 1 && len(species) > 0 {
		pick, err := o.roller.Roll(len(species))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll species")
		}
		sp := species[pick-1]

		maxWeight := sp.MaxWeight
		if maxWeight == 0 {
			maxWeight = DefaultMaxWeight
		}
		weight, err := o.roller.Roll(int(maxWeight))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll weight")
		}

		result.SpeciesID = sp.ID
		result.Weight = uint16(weight)
	}

	return &RollOutput{
		Result:    result,
		Signature: o.signer.Sign(auth.ClaimFor(input.PlayerID, result)),
	}, nil
}
