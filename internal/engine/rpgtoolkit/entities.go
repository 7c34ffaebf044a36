package rpgtoolkit

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/tides-game/tides-api/internal/entities"
)

var (
	_ core.Entity = (*PlayerEntity)(nil)
	_ core.Entity = (*CatchEntity)(nil)
	_ core.Entity = (*SettlementEntity)(nil)
	_ core.Entity = (*MarketEntity)(nil)
)

// Entity types reported to rpg-toolkit
const (
	EntityTypePlayer     = "player"
	EntityTypeCatch      = "catch"
	EntityTypeSettlement = "settlement"
	EntityTypeMarket     = "species_market"
)

// PlayerEntity wraps entities.PlayerState to implement core.Entity interface
type PlayerEntity struct {
	*entities.PlayerState
}

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// CatchEntity wraps entities.CatchRecord to implement core.Entity interface
type CatchEntity struct {
	*entities.CatchRecord
}

// GetID returns owner/instance, unique across the ledger
func (c *CatchEntity) GetID() string {
	return fmt.Sprintf("%s/%d", c.Owner, c.InstanceID)
}

// GetType returns the entity type for rpg-toolkit
func (c *CatchEntity) GetType() string {
	return EntityTypeCatch
}

// SettlementEntity wraps entities.Settlement to implement core.Entity interface
type SettlementEntity struct {
	*entities.Settlement
}

// GetID returns the settlement's ID
func (s *SettlementEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SettlementEntity) GetType() string {
	return EntityTypeSettlement
}

// MarketEntity wraps a species market record
type MarketEntity struct {
	*entities.MarketRecord
}

// GetID returns the species ID
func (m *MarketEntity) GetID() string {
	return strconv.FormatUint(m.SpeciesID, 10)
}

// GetType returns the entity type for rpg-toolkit
func (m *MarketEntity) GetType() string {
	return EntityTypeMarket
}

func wrapPlayer(player *entities.PlayerState) *PlayerEntity {
	return &PlayerEntity{PlayerState: player}
}

func wrapCatch(rec *entities.CatchRecord) *CatchEntity {
	return &CatchEntity{CatchRecord: rec}
}

func wrapSettlement(s *entities.Settlement) *SettlementEntity {
	return &SettlementEntity{Settlement: s}
}

func wrapMarket(rec *entities.MarketRecord) *MarketEntity {
	return &MarketEntity{MarketRecord: rec}
}
