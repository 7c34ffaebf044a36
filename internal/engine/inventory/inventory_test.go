package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

type InventoryTestSuite struct {
	suite.Suite
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func normalSlots(w, h int) []entities.SlotKind {
	return make([]entities.SlotKind, w*h)
}

func (s *InventoryTestSuite) newGrid(w, h uint8) *entities.InventoryGrid {
	grid, err := inventory.NewGrid("player-1", w, h, normalSlots(int(w), int(h)))
	s.Require().NoError(err)
	return grid
}

func (s *InventoryTestSuite) TestNewGrid() {
	grid := s.newGrid(4, 3)

	s.Assert().Len(grid.Items, 12)
	s.Assert().Len(grid.SlotKinds, 12)
	s.Assert().Equal(uint64(1), grid.NextInstanceID)
	for _, cell := range grid.Items {
		s.Assert().True(cell.IsEmpty())
	}
}

func (s *InventoryTestSuite) TestNewGridRejectsBadInput() {
	testCases := []struct {
		name   string
		w, h   uint8
		slots  int
		reason string
	}{
		{name: "zero width", w: 0, h: 3, slots: 0, reason: entities.ReasonInvalidDimensions},
		{name: "zero height", w: 3, h: 0, slots: 0, reason: entities.ReasonInvalidDimensions},
		{name: "short layout", w: 3, h: 3, slots: 8, reason: entities.ReasonArrayLengthMismatch},
		{name: "long layout", w: 3, h: 3, slots: 10, reason: entities.ReasonArrayLengthMismatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := inventory.NewGrid("p", tc.w, tc.h, make([]entities.SlotKind, tc.slots))
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Equal(tc.reason, errors.GetReason(err))
		})
	}
}

func (s *InventoryTestSuite) TestEngineSlotScenario() {
	slots := normalSlots(4, 3)
	slots[1*4+1] = entities.SlotKindEngine
	grid, err := inventory.NewGrid("p", 4, 3, slots)
	s.Require().NoError(err)

	id, err := inventory.Place(grid, entities.ItemKindEngine, 7, 1, 1, 0, 1, 1)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), id)

	_, err = inventory.Place(grid, entities.ItemKindFish, 3, 1, 1, 0, 1, 1)
	s.Require().Error(err)
	s.Assert().Equal(entities.ReasonPositionOccupied, errors.GetReason(err))
	s.Assert().True(errors.IsAlreadyExists(err))

	s.Require().NoError(inventory.Remove(grid, 1))

	_, err = inventory.Place(grid, entities.ItemKindFish, 3, 1, 1, 0, 1, 1)
	s.Require().Error(err)
	s.Assert().Equal(entities.ReasonIncompatibleSlot, errors.GetReason(err))
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *InventoryTestSuite) TestPlaceRejectionsLeaveGridUnchanged() {
	slots := normalSlots(4, 3)
	slots[2] = entities.SlotKindBlocked
	base, err := inventory.NewGrid("p", 4, 3, slots)
	s.Require().NoError(err)
	_, err = inventory.Place(base, entities.ItemKindFish, 1, 0, 1, 0, 1, 1)
	s.Require().NoError(err)

	testCases := []struct {
		name      string
		kind      entities.ItemKind
		x, y, rot uint8
		w, h      uint8
		reason    string
	}{
		{name: "bad rotation", kind: entities.ItemKindFish, rot: 4, w: 1, h: 1, reason: entities.ReasonInvalidRotation},
		{name: "origin out of bounds", kind: entities.ItemKindFish, x: 4, y: 0, w: 1, h: 1, reason: entities.ReasonOutOfBounds},
		{name: "footprint overflows width", kind: entities.ItemKindFish, x: 3, y: 0, w: 2, h: 1, reason: entities.ReasonOutOfBounds},
		{name: "rotated footprint overflows height", kind: entities.ItemKindFish, x: 3, y: 0, rot: 1, w: 4, h: 1, reason: entities.ReasonOutOfBounds},
		{name: "overlaps existing item", kind: entities.ItemKindFish, x: 0, y: 0, w: 1, h: 2, reason: entities.ReasonPositionOccupied},
		{name: "covers blocked slot", kind: entities.ItemKindFish, x: 1, y: 0, w: 2, h: 1, reason: entities.ReasonIncompatibleSlot},
		{name: "rod needs rod slot", kind: entities.ItemKindFishingRod, x: 3, y: 2, w: 1, h: 1, reason: entities.ReasonIncompatibleSlot},
		{name: "zero shape", kind: entities.ItemKindFish, x: 3, y: 2, w: 0, h: 1, reason: entities.ReasonInvalidDimensions},
		{name: "empty kind", kind: entities.ItemKindEmpty, x: 3, y: 2, w: 1, h: 1, reason: entities.ReasonInvalidItemKind},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			grid := base.Clone()

			_, err := inventory.Place(grid, tc.kind, 9, tc.x, tc.y, tc.rot, tc.w, tc.h)
			s.Require().Error(err)
			s.Assert().Equal(tc.reason, errors.GetReason(err))
			s.Assert().Equal(base, grid)
		})
	}
}

func (s *InventoryTestSuite) TestRotationSymmetry() {
	rotated := s.newGrid(5, 5)
	upright := s.newGrid(5, 5)

	_, err := inventory.Place(rotated, entities.ItemKindFish, 1, 1, 1, 1, 2, 3)
	s.Require().NoError(err)
	_, err = inventory.Place(upright, entities.ItemKindFish, 1, 1, 1, 0, 3, 2)
	s.Require().NoError(err)

	rotatedItems := inventory.Items(rotated)
	uprightItems := inventory.Items(upright)
	s.Require().Len(rotatedItems, 1)
	s.Require().Len(uprightItems, 1)
	s.Assert().Equal(uint8(3), rotatedItems[0].Width)
	s.Assert().Equal(uint8(2), rotatedItems[0].Height)
	s.Assert().Equal(uprightItems[0].Width, rotatedItems[0].Width)
	s.Assert().Equal(uprightItems[0].Height, rotatedItems[0].Height)

	for i := range rotated.Items {
		s.Assert().Equal(upright.Items[i].IsEmpty(), rotated.Items[i].IsEmpty(), "cell %d", i)
	}
}

func (s *InventoryTestSuite) TestRemoveThenPlace() {
	grid := s.newGrid(4, 4)

	id, err := inventory.Place(grid, entities.ItemKindFish, 5, 1, 1, 0, 2, 2)
	s.Require().NoError(err)
	s.Require().NoError(inventory.Remove(grid, id))

	for _, cell := range grid.Items {
		s.Assert().True(cell.IsEmpty())
	}

	next, err := inventory.Place(grid, entities.ItemKindFish, 5, 1, 1, 0, 2, 2)
	s.Require().NoError(err)
	s.Assert().NotEqual(id, next)
}

func (s *InventoryTestSuite) TestRemoveUnknown() {
	grid := s.newGrid(2, 2)

	err := inventory.Remove(grid, 42)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(entities.ReasonItemNotFound, errors.GetReason(err))

	err = inventory.Remove(grid, 0)
	s.Assert().Equal(entities.ReasonItemNotFound, errors.GetReason(err))
}

func (s *InventoryTestSuite) TestUniqueInstanceIDs() {
	grid := s.newGrid(6, 6)
	seen := map[uint64]bool{}

	for y := uint8(0); y < 6; y += 2 {
		for x := uint8(0); x < 6; x += 2 {
			id, err := inventory.Place(grid, entities.ItemKindFish, 1, x, y, 0, 2, 2)
			s.Require().NoError(err)
			s.Assert().False(seen[id])
			seen[id] = true
		}
	}

	items := inventory.Items(grid)
	s.Assert().Len(items, 9)
	for _, item := range items {
		s.Assert().Equal(uint8(2), item.Width)
		s.Assert().Equal(uint8(2), item.Height)
	}
}

func (s *InventoryTestSuite) TestInstanceCounterOverflow() {
	grid := s.newGrid(2, 2)
	grid.NextInstanceID = math.MaxUint64
	before := grid.Clone()

	_, err := inventory.Place(grid, entities.ItemKindFish, 1, 0, 0, 0, 1, 1)
	s.Require().Error(err)
	s.Assert().Equal(entities.ReasonArithmeticOverflow, errors.GetReason(err))
	s.Assert().Equal(before, grid)
}

func (s *InventoryTestSuite) TestQueryAndHasItemKind() {
	slots := normalSlots(3, 2)
	slots[5] = entities.SlotKindFishingRod
	grid, err := inventory.NewGrid("p", 3, 2, slots)
	s.Require().NoError(err)

	s.Assert().False(inventory.HasItemKind(grid, entities.ItemKindFishingRod))

	id, err := inventory.Place(grid, entities.ItemKindFishingRod, 11, 2, 1, 0, 1, 1)
	s.Require().NoError(err)
	s.Assert().True(inventory.HasItemKind(grid, entities.ItemKindFishingRod))

	cell, err := inventory.Query(grid, 2, 1)
	s.Require().NoError(err)
	s.Assert().Equal(entities.GridCell{
		Kind:       entities.ItemKindFishingRod,
		CatalogID:  11,
		InstanceID: id,
	}, cell)

	_, err = inventory.Query(grid, 3, 0)
	s.Assert().Equal(entities.ReasonOutOfBounds, errors.GetReason(err))

	item, ok := inventory.Find(grid, id)
	s.Require().True(ok)
	s.Assert().Equal(uint8(2), item.X)
	s.Assert().Equal(uint8(1), item.Y)
}

func (s *InventoryTestSuite) TestFootprint() {
	w, h := inventory.Footprint(0, 2, 3)
	s.Assert().Equal([2]uint8{2, 3}, [2]uint8{w, h})
	w, h = inventory.Footprint(1, 2, 3)
	s.Assert().Equal([2]uint8{3, 2}, [2]uint8{w, h})
	w, h = inventory.Footprint(2, 2, 3)
	s.Assert().Equal([2]uint8{2, 3}, [2]uint8{w, h})
	w, h = inventory.Footprint(3, 2, 3)
	s.Assert().Equal([2]uint8{3, 2}, [2]uint8{w, h})
}
