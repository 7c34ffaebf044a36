package entities

// ItemKind identifies what occupies an inventory cell
type ItemKind uint8

const (
	ItemKindEmpty ItemKind = iota
	ItemKindFish
	ItemKindEngine
	ItemKindFishingRod
)

// String returns the lowercase name of the kind
func (k ItemKind) String() string {
	switch k {
	case ItemKindEmpty:
		return "empty"
	case ItemKindFish:
		return "fish"
	case ItemKindEngine:
		return "engine"
	case ItemKindFishingRod:
		return "fishing_rod"
	default:
		return "unknown"
	}
}

// SlotKind restricts which item kinds a cell accepts
type SlotKind uint8

const (
	SlotKindNormal SlotKind = iota
	SlotKindEngine
	SlotKindFishingRod
	SlotKindBlocked
)

// String returns the lowercase name of the slot kind
func (s SlotKind) String() string {
	switch s {
	case SlotKindNormal:
		return "normal"
	case SlotKindEngine:
		return "engine"
	case SlotKindFishingRod:
		return "fishing_rod"
	case SlotKindBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// MaxRotation is the exclusive upper bound for quarter-turn rotations
const MaxRotation = 4

// GridCell is one cell of an inventory grid. Kind Empty marks a free cell.
type GridCell struct {
	Kind       ItemKind `json:"kind"`
	CatalogID  uint64   `json:"catalog_id"`
	InstanceID uint64   `json:"instance_id"`
	Rotation   uint8    `json:"rotation"`
}

// IsEmpty reports whether the cell holds no item
func (c GridCell) IsEmpty() bool {
	return c.Kind == ItemKindEmpty
}

// InventoryGrid is a player's spatial cargo hold, stored row-major.
type InventoryGrid struct {
	PlayerID       string     `json:"player_id"`
	Width          uint8      `json:"width"`
	Height         uint8      `json:"height"`
	Items          []GridCell `json:"items"`
	SlotKinds      []SlotKind `json:"slot_kinds"`
	NextInstanceID uint64     `json:"next_instance_id"`
}

// Index returns the row-major index of (x, y). Callers check bounds first.
func (g *InventoryGrid) Index(x, y uint8) int {
	return int(y)*int(g.Width) + int(x)
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *InventoryGrid) InBounds(x, y uint8) bool {
	return x < g.Width && y < g.Height
}

// Clone returns a deep copy of the grid
func (g *InventoryGrid) Clone() *InventoryGrid {
	if g == nil {
		return nil
	}
	out := *g
	out.Items = append([]GridCell(nil), g.Items...)
	out.SlotKinds = append([]SlotKind(nil), g.SlotKinds...)
	return &out
}

// PlacedItem describes one item on the grid with its bounding rectangle
type PlacedItem struct {
	Kind       ItemKind `json:"kind"`
	CatalogID  uint64   `json:"catalog_id"`
	InstanceID uint64   `json:"instance_id"`
	Rotation   uint8    `json:"rotation"`
	X          uint8    `json:"x"`
	Y          uint8    `json:"y"`
	Width      uint8    `json:"width"`
	Height     uint8    `json:"height"`
}
