// Package inventory implements the spatial cargo-hold rules: placement with
// rotation and slot compatibility, removal by instance id, and cell queries.
//
// Items are stored as axis-aligned bounding rectangles. Placement validates the
// whole footprint before writing any cell, so a rejected placement leaves the
// grid untouched.
package inventory

import (
	"math"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// NewGrid creates an empty grid of the given dimensions and slot layout
func NewGrid(playerID string, width, height uint8, slotKinds []entities.SlotKind) (*entities.InventoryGrid, error) {
	if width == 0 || height == 0 {
		return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidDimensions,
			"grid dimensions must be positive, got %dx%d", width, height)
	}

	cells := int(width) * int(height)
	if len(slotKinds) != cells {
		return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonArrayLengthMismatch,
			"slot layout has %d entries, grid needs %d", len(slotKinds), cells)
	}

	return &entities.InventoryGrid{
		PlayerID:       playerID,
		Width:          width,
		Height:         height,
		Items:          make([]entities.GridCell, cells),
		SlotKinds:      append([]entities.SlotKind(nil), slotKinds...),
		NextInstanceID: 1,
	}, nil
}

// Validate checks the structural invariants of a stored grid
func Validate(grid *entities.InventoryGrid) error {
	if grid == nil {
		return errors.InvalidArgument("grid is required")
	}
	if grid.Width == 0 || grid.Height == 0 {
		return errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidDimensions,
			"grid dimensions must be positive, got %dx%d", grid.Width, grid.Height)
	}
	cells := int(grid.Width) * int(grid.Height)
	if len(grid.Items) != cells || len(grid.SlotKinds) != cells {
		return errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonArrayLengthMismatch,
			"grid %dx%d has %d items and %d slot kinds", grid.Width, grid.Height, len(grid.Items), len(grid.SlotKinds))
	}
	return nil
}

// Footprint returns the effective width and height of a shape under rotation.
// Odd quarter turns swap the axes.
func Footprint(rotation, shapeWidth, shapeHeight uint8) (uint8, uint8) {
	if rotation%2 == 1 {
		return shapeHeight, shapeWidth
	}
	return shapeWidth, shapeHeight
}

// Accepts reports whether a slot of the given kind may hold the item kind
func Accepts(slot entities.SlotKind, kind entities.ItemKind) bool {
	switch kind {
	case entities.ItemKindEngine:
		return slot == entities.SlotKindEngine
	case entities.ItemKindFishingRod:
		return slot == entities.SlotKindFishingRod
	default:
		return slot != entities.SlotKindBlocked
	}
}

// Place puts an item with the given shape at (x, y) and returns its new instance id
func Place(
	grid *entities.InventoryGrid,
	kind entities.ItemKind,
	catalogID uint64,
	x, y, rotation, shapeWidth, shapeHeight uint8,
) (uint64, error) {
	if err := Validate(grid); err != nil {
		return 0, err
	}
	if kind == entities.ItemKindEmpty {
		return 0, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidItemKind,
			"cannot place an empty item")
	}
	if rotation >= entities.MaxRotation {
		return 0, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidRotation,
			"rotation must be below %d, got %d", entities.MaxRotation, rotation)
	}
	if shapeWidth == 0 || shapeHeight == 0 {
		return 0, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidDimensions,
			"shape dimensions must be positive, got %dx%d", shapeWidth, shapeHeight)
	}
	if !grid.InBounds(x, y) {
		return 0, errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonOutOfBounds,
			"position (%d,%d) is outside the %dx%d grid", x, y, grid.Width, grid.Height)
	}

	footW, footH := Footprint(rotation, shapeWidth, shapeHeight)
	if int(x)+int(footW) > int(grid.Width) || int(y)+int(footH) > int(grid.Height) {
		return 0, errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonOutOfBounds,
			"footprint %dx%d at (%d,%d) exceeds the %dx%d grid", footW, footH, x, y, grid.Width, grid.Height).
			WithMeta("rotation", rotation)
	}

	// validation pass
	for dy := uint8(0); dy < footH; dy++ {
		for dx := uint8(0); dx < footW; dx++ {
			idx := grid.Index(x+dx, y+dy)
			if !grid.Items[idx].IsEmpty() {
				return 0, errors.Reasonedf(errors.CodeAlreadyExists, entities.ReasonPositionOccupied,
					"cell (%d,%d) is occupied", x+dx, y+dy).
					WithMeta("instance_id", grid.Items[idx].InstanceID)
			}
			if !Accepts(grid.SlotKinds[idx], kind) {
				return 0, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonIncompatibleSlot,
					"%s slot at (%d,%d) does not accept %s", grid.SlotKinds[idx], x+dx, y+dy, kind)
			}
		}
	}

	instanceID := grid.NextInstanceID
	if instanceID == 0 {
		instanceID = 1
	}
	if instanceID == math.MaxUint64 {
		return 0, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"instance id counter exhausted")
	}

	// commit pass
	cell := entities.GridCell{
		Kind:       kind,
		CatalogID:  catalogID,
		InstanceID: instanceID,
		Rotation:   rotation,
	}
	for dy := uint8(0); dy < footH; dy++ {
		for dx := uint8(0); dx < footW; dx++ {
			grid.Items[grid.Index(x+dx, y+dy)] = cell
		}
	}
	grid.NextInstanceID = instanceID + 1

	return instanceID, nil
}

// Remove clears every cell holding the instance id
func Remove(grid *entities.InventoryGrid, instanceID uint64) error {
	if err := Validate(grid); err != nil {
		return err
	}

	found := false
	if instanceID != 0 {
		for i := range grid.Items {
			if grid.Items[i].InstanceID == instanceID && !grid.Items[i].IsEmpty() {
				grid.Items[i] = entities.GridCell{}
				found = true
			}
		}
	}

	if !found {
		return errors.Reasonedf(errors.CodeNotFound, entities.ReasonItemNotFound,
			"no item with instance id %d", instanceID).
			WithMeta("instance_id", instanceID)
	}
	return nil
}

// Query returns the cell at (x, y)
func Query(grid *entities.InventoryGrid, x, y uint8) (entities.GridCell, error) {
	if err := Validate(grid); err != nil {
		return entities.GridCell{}, err
	}
	if !grid.InBounds(x, y) {
		return entities.GridCell{}, errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonOutOfBounds,
			"position (%d,%d) is outside the %dx%d grid", x, y, grid.Width, grid.Height)
	}
	return grid.Items[grid.Index(x, y)], nil
}

// HasItemKind reports whether any cell holds an item of the kind
func HasItemKind(grid *entities.InventoryGrid, kind entities.ItemKind) bool {
	if grid == nil {
		return false
	}
	for _, cell := range grid.Items {
		if cell.Kind == kind {
			return true
		}
	}
	return false
}

// Find returns the placed item with the instance id, or false
func Find(grid *entities.InventoryGrid, instanceID uint64) (entities.PlacedItem, bool) {
	for _, item := range Items(grid) {
		if item.InstanceID == instanceID {
			return item, true
		}
	}
	return entities.PlacedItem{}, false
}

// Items lists placed items in row-major order of their top-left cell
func Items(grid *entities.InventoryGrid) []entities.PlacedItem {
	if grid == nil || grid.Width == 0 {
		return nil
	}

	byID := make(map[uint64]int)
	var out []entities.PlacedItem
	for i, cell := range grid.Items {
		if cell.IsEmpty() {
			continue
		}
		x := uint8(i % int(grid.Width))
		y := uint8(i / int(grid.Width))

		pos, seen := byID[cell.InstanceID]
		if !seen {
			byID[cell.InstanceID] = len(out)
			out = append(out, entities.PlacedItem{
				Kind:       cell.Kind,
				CatalogID:  cell.CatalogID,
				InstanceID: cell.InstanceID,
				Rotation:   cell.Rotation,
				X:          x,
				Y:          y,
				Width:      1,
				Height:     1,
			})
			continue
		}

		item := &out[pos]
		if x < item.X {
			item.Width += item.X - x
			item.X = x
		}
		if w := x - item.X + 1; w > item.Width {
			item.Width = w
		}
		if h := y - item.Y + 1; h > item.Height {
			item.Height = h
		}
	}
	return out
}
