package fishing

import (
	"github.com/tides-game/tides-api/internal/entities"
)

// InitiateFishingInput defines the request for casting a line
type InitiateFishingInput struct {
	PlayerID string
	BaitID   uint64
}

// InitiateFishingOutput defines the response for casting a line
type InitiateFishingOutput struct {
	Nonce uint64

	// ReplacedNonce is the expired request this one superseded, 0 if none
	ReplacedNonce uint64
	BaitRemaining uint64
	Request       *entities.FishingRequest
}

// FulfillFishingInput carries an oracle result and where to stow the fish
type FulfillFishingInput struct {
	PlayerID   string
	Result     entities.FishingResult
	Signature  []byte
	ShouldKeep bool
	X, Y       uint8
	Rotation   uint8
}

// FulfillFishingOutput defines the response for a fulfillment.
// InstanceID is 0 when the catch was discarded.
type FulfillFishingOutput struct {
	Kept       bool
	InstanceID uint64
	Record     *entities.CatchRecord
	Grid       *entities.InventoryGrid
}

// GetFishingStateInput defines the request for reading a fishing request
type GetFishingStateInput struct {
	PlayerID string
}

// GetFishingStateOutput defines the response for reading a fishing request
type GetFishingStateOutput struct {
	Request *entities.FishingRequest
	Expired bool
}

// AbandonFishingInput defines the request for clearing an expired request
type AbandonFishingInput struct {
	PlayerID string
}

// AbandonFishingOutput defines the response for clearing an expired request
type AbandonFishingOutput struct {
	AbandonedNonce uint64
	Request        *entities.FishingRequest
}
