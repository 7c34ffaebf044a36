// Package catalog holds the read-only reference data of the game: fish species,
// bait, ships, engines, rods and maps. Catalogs are YAML documents validated
// against an embedded JSON schema before use.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

//go:embed catalog.schema.json
var schemaJSON []byte

//go:embed default.yaml
var defaultYAML []byte

const schemaURL = "https://tides-game.dev/schemas/catalog.schema.json"

// Species is a catchable fish
type Species struct {
	ID        uint64 `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	BasePrice uint64 `yaml:"base_price" json:"base_price"`
	Width     uint8  `yaml:"width" json:"width"`
	Height    uint8  `yaml:"height" json:"height"`
	MaxWeight uint16 `yaml:"max_weight" json:"max_weight"`
}

// Bait is a consumable spent on each fishing attempt
type Bait struct {
	ID     uint64 `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Price  uint64 `yaml:"price" json:"price"`
	Active bool   `yaml:"active" json:"active"`
}

// Gear is an equippable engine or rod
type Gear struct {
	ID     uint64 `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Width  uint8  `yaml:"width" json:"width"`
	Height uint8  `yaml:"height" json:"height"`
	Speed  uint64 `yaml:"speed" json:"speed,omitempty"`
}

// StarterItem is gear a new ship comes fitted with
type StarterItem struct {
	Kind      string `yaml:"kind" json:"kind"`
	CatalogID uint64 `yaml:"catalog_id" json:"catalog_id"`
	X         uint8  `yaml:"x" json:"x"`
	Y         uint8  `yaml:"y" json:"y"`
	Rotation  uint8  `yaml:"rotation" json:"rotation"`
}

// StarterBait is bait granted at registration
type StarterBait struct {
	BaitID uint64 `yaml:"bait_id" json:"bait_id"`
	Amount uint64 `yaml:"amount" json:"amount"`
}

// Ship defines a hull and its cargo layout.
// Layout rows use N (normal), E (engine), R (rod) and X (blocked).
type Ship struct {
	ID           uint64        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Layout       []string      `yaml:"layout" json:"layout"`
	StarterItems []StarterItem `yaml:"starter_items" json:"starter_items,omitempty"`
	StarterBait  []StarterBait `yaml:"starter_bait" json:"starter_bait,omitempty"`
}

// Harbor is a named safe position on a map
type Harbor struct {
	X int32 `yaml:"x" json:"x"`
	Y int32 `yaml:"y" json:"y"`
}

// Map is a sailable region
type Map struct {
	ID      uint64   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	MinX    int32    `yaml:"min_x" json:"min_x"`
	MaxX    int32    `yaml:"max_x" json:"max_x"`
	MinY    int32    `yaml:"min_y" json:"min_y"`
	MaxY    int32    `yaml:"max_y" json:"max_y"`
	Harbors []Harbor `yaml:"harbors" json:"harbors,omitempty"`
}

// Lookup resolves catalog ids. *Catalog implements it.
type Lookup interface {
	GetSpecies(id uint64) (*Species, error)
	GetBait(id uint64) (*Bait, error)
	GetEngine(id uint64) (*Gear, error)
	GetRod(id uint64) (*Gear, error)
	GetGear(kind entities.ItemKind, id uint64) (*Gear, error)
	GetShip(id uint64) (*Ship, error)
	GetMap(id uint64) (*Map, error)
	DefaultShip() uint64
	DefaultMap() uint64
	ListSpecies() []Species
}

type catalogFile struct {
	DefaultShip uint64    `yaml:"default_ship"`
	DefaultMap  uint64    `yaml:"default_map"`
	Species     []Species `yaml:"species"`
	Bait        []Bait    `yaml:"bait"`
	Engines     []Gear    `yaml:"engines"`
	Rods        []Gear    `yaml:"rods"`
	Ships       []Ship    `yaml:"ships"`
	Maps        []Map     `yaml:"maps"`
}

// Catalog is an indexed, validated catalog document
type Catalog struct {
	defaultShip uint64
	defaultMap  uint64
	species     map[uint64]*Species
	bait        map[uint64]*Bait
	engines     map[uint64]*Gear
	rods        map[uint64]*Gear
	ships       map[uint64]*Ship
	maps        map[uint64]*Map
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	return Parse(raw)
}

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse validates and indexes a YAML catalog document
func Parse(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	c := &Catalog{
		defaultShip: file.DefaultShip,
		defaultMap:  file.DefaultMap,
		species:     make(map[uint64]*Species, len(file.Species)),
		bait:        make(map[uint64]*Bait, len(file.Bait)),
		engines:     make(map[uint64]*Gear, len(file.Engines)),
		rods:        make(map[uint64]*Gear, len(file.Rods)),
		ships:       make(map[uint64]*Ship, len(file.Ships)),
		maps:        make(map[uint64]*Map, len(file.Maps)),
	}

	vb := errors.NewValidationBuilder()
	for i := range file.Species {
		sp := &file.Species[i]
		if _, dup := c.species[sp.ID]; dup {
			vb.Fieldf("species", "duplicate id %d", sp.ID)
		}
		c.species[sp.ID] = sp
	}
	for i := range file.Bait {
		b := &file.Bait[i]
		if _, dup := c.bait[b.ID]; dup {
			vb.Fieldf("bait", "duplicate id %d", b.ID)
		}
		c.bait[b.ID] = b
	}
	for i := range file.Engines {
		g := &file.Engines[i]
		if _, dup := c.engines[g.ID]; dup {
			vb.Fieldf("engines", "duplicate id %d", g.ID)
		}
		c.engines[g.ID] = g
	}
	for i := range file.Rods {
		g := &file.Rods[i]
		if _, dup := c.rods[g.ID]; dup {
			vb.Fieldf("rods", "duplicate id %d", g.ID)
		}
		c.rods[g.ID] = g
	}
	for i := range file.Maps {
		m := &file.Maps[i]
		if _, dup := c.maps[m.ID]; dup {
			vb.Fieldf("maps", "duplicate id %d", m.ID)
		}
		if m.MinX > m.MaxX || m.MinY > m.MaxY {
			vb.Fieldf("maps", "map %d has inverted bounds", m.ID)
		}
		c.maps[m.ID] = m
	}
	for i := range file.Ships {
		s := &file.Ships[i]
		if _, dup := c.ships[s.ID]; dup {
			vb.Fieldf("ships", "duplicate id %d", s.ID)
		}
		if _, _, _, err := s.Grid(); err != nil {
			vb.Fieldf("ships", "ship %d: %s", s.ID, errors.GetMessage(err))
		}
		for _, item := range s.StarterItems {
			if _, err := c.gear(item.Kind, item.CatalogID); err != nil {
				vb.Fieldf("ships", "ship %d: %s", s.ID, errors.GetMessage(err))
			}
		}
		for _, sb := range s.StarterBait {
			if _, ok := c.bait[sb.BaitID]; !ok {
				vb.Fieldf("ships", "ship %d: unknown starter bait %d", s.ID, sb.BaitID)
			}
		}
		c.ships[s.ID] = s
	}
	if _, ok := c.ships[c.defaultShip]; !ok {
		vb.Fieldf("default_ship", "unknown ship %d", c.defaultShip)
	}
	if _, ok := c.maps[c.defaultMap]; !ok {
		vb.Fieldf("default_map", "unknown map %d", c.defaultMap)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return c, nil
}

func validateSchema(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return errors.Wrap(err, "failed to load catalog schema")
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return errors.Wrap(err, "failed to compile catalog schema")
	}

	// the validator expects JSON-decoded values
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not valid YAML")
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not representable as JSON")
	}
	var value interface{}
	if err := json.Unmarshal(asJSON, &value); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not representable as JSON")
	}

	if err := schema.Validate(value); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog does not match schema")
	}
	return nil
}

// Grid returns the cargo dimensions and slot layout of the ship
func (s *Ship) Grid() (uint8, uint8, []entities.SlotKind, error) {
	if len(s.Layout) == 0 || len(s.Layout) > 255 {
		return 0, 0, nil, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidDimensions,
			"layout must have between 1 and 255 rows")
	}
	width := len(s.Layout[0])
	if width == 0 || width > 255 {
		return 0, 0, nil, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidDimensions,
			"layout rows must have between 1 and 255 cells")
	}

	slots := make([]entities.SlotKind, 0, width*len(s.Layout))
	for y, row := range s.Layout {
		if len(row) != width {
			return 0, 0, nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonArrayLengthMismatch,
				"layout row %d has %d cells, expected %d", y, len(row), width)
		}
		for _, ch := range row {
			switch ch {
			case 'N':
				slots = append(slots, entities.SlotKindNormal)
			case 'E':
				slots = append(slots, entities.SlotKindEngine)
			case 'R':
				slots = append(slots, entities.SlotKindFishingRod)
			case 'X':
				slots = append(slots, entities.SlotKindBlocked)
			default:
				return 0, 0, nil, errors.InvalidArgumentf("layout row %d has unknown slot %q", y, ch)
			}
		}
	}
	return uint8(width), uint8(len(s.Layout)), slots, nil
}

// GearKind maps a starter item kind name to an item kind
func GearKind(kind string) (entities.ItemKind, error) {
	switch kind {
	case "engine":
		return entities.ItemKindEngine, nil
	case "fishing_rod":
		return entities.ItemKindFishingRod, nil
	default:
		return entities.ItemKindEmpty, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidItemKind,
			"%q is not equippable gear", kind)
	}
}

func (c *Catalog) gear(kind string, id uint64) (*Gear, error) {
	itemKind, err := GearKind(kind)
	if err != nil {
		return nil, err
	}
	return c.GetGear(itemKind, id)
}

// GetGear resolves an engine or rod by item kind
func (c *Catalog) GetGear(kind entities.ItemKind, id uint64) (*Gear, error) {
	switch kind {
	case entities.ItemKindEngine:
		return c.GetEngine(id)
	case entities.ItemKindFishingRod:
		return c.GetRod(id)
	default:
		return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidItemKind,
			"%s is not equippable gear", kind)
	}
}

// GetSpecies returns the species with the id
func (c *Catalog) GetSpecies(id uint64) (*Species, error) {
	if sp, ok := c.species[id]; ok {
		return sp, nil
	}
	return nil, errors.NotFoundf("species %d not found", id).WithReason(entities.ReasonInvalidSpecies)
}

// GetBait returns the bait with the id
func (c *Catalog) GetBait(id uint64) (*Bait, error) {
	if b, ok := c.bait[id]; ok {
		return b, nil
	}
	return nil, errors.NotFoundf("bait %d not found", id).WithReason(entities.ReasonInvalidBait)
}

// GetEngine returns the engine with the id
func (c *Catalog) GetEngine(id uint64) (*Gear, error) {
	if g, ok := c.engines[id]; ok {
		return g, nil
	}
	return nil, errors.NotFoundf("engine %d not found", id).WithReason(entities.ReasonInvalidItemKind)
}

// GetRod returns the fishing rod with the id
func (c *Catalog) GetRod(id uint64) (*Gear, error) {
	if g, ok := c.rods[id]; ok {
		return g, nil
	}
	return nil, errors.NotFoundf("fishing rod %d not found", id).WithReason(entities.ReasonInvalidItemKind)
}

// GetShip returns the ship with the id
func (c *Catalog) GetShip(id uint64) (*Ship, error) {
	if s, ok := c.ships[id]; ok {
		return s, nil
	}
	return nil, errors.NotFoundf("ship %d not found", id).WithReason(entities.ReasonInvalidShip)
}

// GetMap returns the map with the id
func (c *Catalog) GetMap(id uint64) (*Map, error) {
	if m, ok := c.maps[id]; ok {
		return m, nil
	}
	return nil, errors.NotFoundf("map %d not found", id).WithReason(entities.ReasonInvalidMap)
}

// DefaultShip returns the ship new players start with
func (c *Catalog) DefaultShip() uint64 {
	return c.defaultShip
}

// DefaultMap returns the map new players start on
func (c *Catalog) DefaultMap() uint64 {
	return c.defaultMap
}

// ListSpecies returns all species ordered by id
func (c *Catalog) ListSpecies() []Species {
	out := make([]Species, 0, len(c.species))
	for _, sp := range c.species {
		out = append(out, *sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EngineSpeeds returns the catalog speed of every engine among items.
// Engines missing from the catalog are skipped.
func EngineSpeeds(l Lookup, items []entities.PlacedItem) []uint64 {
	var speeds []uint64
	for _, item := range items {
		if item.Kind != entities.ItemKindEngine {
			continue
		}
		engine, err := l.GetEngine(item.CatalogID)
		if err != nil {
			continue
		}
		speeds = append(speeds, engine.Speed)
	}
	return speeds
}
