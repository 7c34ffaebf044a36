package v1alpha1

import (
	"math"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// toUint8 narrows a wire coordinate; gRPC has no 8-bit integers
func toUint8(field string, v uint32) (uint8, error) {
	if v > math.MaxUint8 {
		return 0, errors.InvalidArgumentf("%s must be at most %d, got %d", field, math.MaxUint8, v)
	}
	return uint8(v), nil
}

func toUint16(field string, v uint32) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, errors.InvalidArgumentf("%s must be at most %d, got %d", field, math.MaxUint16, v)
	}
	return uint16(v), nil
}

func convertPlayer(p *entities.PlayerState) *tidesv1alpha1.Player {
	if p == nil {
		return nil
	}
	return &tidesv1alpha1.Player{
		ID:            p.ID,
		MapID:         p.MapID,
		ShipID:        p.ShipID,
		X:             p.X,
		Y:             p.Y,
		Fuel:          p.Fuel,
		MovementSpeed: p.MovementSpeed,
		CooldownUntil: p.CooldownUntil,
		Bait:          p.Bait,
		RegisteredAt:  p.RegisteredAt,
	}
}

func convertItem(item entities.PlacedItem) *tidesv1alpha1.Item {
	return &tidesv1alpha1.Item{
		Kind:       item.Kind.String(),
		CatalogID:  item.CatalogID,
		InstanceID: item.InstanceID,
		X:          uint32(item.X),
		Y:          uint32(item.Y),
		Width:      uint32(item.Width),
		Height:     uint32(item.Height),
		Rotation:   uint32(item.Rotation),
	}
}

func convertInventory(grid *entities.InventoryGrid) *tidesv1alpha1.Inventory {
	if grid == nil {
		return nil
	}

	slots := make([]string, len(grid.SlotKinds))
	for i, kind := range grid.SlotKinds {
		slots[i] = kind.String()
	}

	placed := inventory.Items(grid)
	items := make([]*tidesv1alpha1.Item, 0, len(placed))
	for _, item := range placed {
		items = append(items, convertItem(item))
	}

	return &tidesv1alpha1.Inventory{
		PlayerID:       grid.PlayerID,
		Width:          uint32(grid.Width),
		Height:         uint32(grid.Height),
		SlotKinds:      slots,
		Items:          items,
		NextInstanceID: grid.NextInstanceID,
	}
}

func convertFishingRequest(req *entities.FishingRequest) *tidesv1alpha1.FishingRequest {
	if req == nil {
		return nil
	}
	return &tidesv1alpha1.FishingRequest{
		PlayerID:      req.PlayerID,
		PendingNonce:  req.PendingNonce,
		FishingNonce:  req.FishingNonce,
		BaitKindInUse: req.BaitKindInUse,
		IssuedAt:      req.IssuedAt,
	}
}

func convertCatch(rec *entities.CatchRecord, freshness uint64) *tidesv1alpha1.CatchRecord {
	if rec == nil {
		return nil
	}
	return &tidesv1alpha1.CatchRecord{
		Owner:      rec.Owner,
		InstanceID: rec.InstanceID,
		SpeciesID:  rec.SpeciesID,
		Weight:     uint32(rec.Weight),
		CaughtAt:   rec.CaughtAt,
		Freshness:  freshness,
	}
}

func convertMarket(rec *entities.MarketRecord) *tidesv1alpha1.MarketRecord {
	if rec == nil {
		return nil
	}
	return &tidesv1alpha1.MarketRecord{
		SpeciesID:    rec.SpeciesID,
		CurrentValue: rec.CurrentValue,
		LastSaleTime: rec.LastSaleTime,
	}
}
