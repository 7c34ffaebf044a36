package testutils

import (
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
)

const (
	// TestPlayerID is the default player for fixtures
	TestPlayerID = "player-test-001"

	// TestNow is a fixed unix time used by fixtures and manual clocks
	TestNow = int64(1_700_000_000)

	// TestStartingFuel mirrors a freshly registered ship
	TestStartingFuel = uint64(100_000_000_000)
)

// CreateTestPlayer creates a registered player at the harbor
func CreateTestPlayer(playerID string) *entities.PlayerState {
	return &entities.PlayerState{
		ID:            playerID,
		MapID:         1,
		ShipID:        1,
		Fuel:          TestStartingFuel,
		MovementSpeed: navigation.BaseMovementSpeed,
		Bait:          map[uint64]uint64{1: 10},
		RegisteredAt:  TestNow,
	}
}

// CreateTestGrid builds an all-Normal grid with every cell empty
func CreateTestGrid(playerID string, width, height uint8) *entities.InventoryGrid {
	n := int(width) * int(height)
	slots := make([]entities.SlotKind, n)
	for i := range slots {
		slots[i] = entities.SlotKindNormal
	}
	return &entities.InventoryGrid{
		PlayerID:       playerID,
		Width:          width,
		Height:         height,
		Items:          make([]entities.GridCell, n),
		SlotKinds:      slots,
		NextInstanceID: 1,
	}
}

// CreateTestCatch creates a catch record caught at TestNow
func CreateTestCatch(owner string, instanceID, speciesID uint64, weight uint16) *entities.CatchRecord {
	return &entities.CatchRecord{
		Owner:      owner,
		InstanceID: instanceID,
		SpeciesID:  speciesID,
		Weight:     weight,
		CaughtAt:   TestNow,
	}
}
