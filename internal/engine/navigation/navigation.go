// Package navigation implements hex-grid ship movement and fuel accounting.
package navigation

import (
	"math"
	"math/bits"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const (
	// HexMoveCost is the fuel burned per hex, in base units
	HexMoveCost = uint64(1_000_000_000)

	// FuelUnit is one whole unit of fuel in base units
	FuelUnit = uint64(1_000_000_000)

	// BaseMovementSpeed is the seconds one hex takes on an unpowered ship
	BaseMovementSpeed = uint64(1000)

	// MaxMoves bounds the directions of a single move
	MaxMoves = 20

	// DefaultCoordinateLimit is the map edge when the map defines none
	DefaultCoordinateLimit = int32(1000)
)

// Direction is one of the six hex neighbours
type Direction uint8

const (
	DirectionEast Direction = iota
	DirectionNorthEast
	DirectionNorthWest
	DirectionWest
	DirectionSouthWest
	DirectionSouthEast
)

var (
	hexDX = [6]int32{1, 1, 0, -1, -1, 0}
	hexDY = [6]int32{0, -1, -1, 0, 1, 1}
)

// Bounds is the inclusive coordinate range of a map
type Bounds struct {
	MinX, MaxX int32
	MinY, MaxY int32
}

// DefaultBounds returns the ±DefaultCoordinateLimit square
func DefaultBounds() Bounds {
	return Bounds{
		MinX: -DefaultCoordinateLimit, MaxX: DefaultCoordinateLimit,
		MinY: -DefaultCoordinateLimit, MaxY: DefaultCoordinateLimit,
	}
}

// Contains reports whether (x, y) lies inside the bounds
func (b Bounds) Contains(x, y int32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// MoveInput describes a requested voyage
type MoveInput struct {
	Directions []Direction
	Bounds     Bounds
	Now        int64
}

// MoveOutput reports the result of a move
type MoveOutput struct {
	X, Y          int32
	FuelConsumed  uint64
	CooldownUntil int64
}

// Move advances the player along the directions, burning fuel and starting a cooldown.
// The player is only modified on success.
func Move(player *entities.PlayerState, input MoveInput) (*MoveOutput, error) {
	if player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Now < player.CooldownUntil {
		return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonOnCooldown,
			"ship is moving until %d", player.CooldownUntil).
			WithMeta("cooldown_until", player.CooldownUntil)
	}
	if len(input.Directions) == 0 {
		return nil, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonNoDirections,
			"at least one direction is required")
	}
	if len(input.Directions) > MaxMoves {
		return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonTooManyMoves,
			"at most %d moves per voyage, got %d", MaxMoves, len(input.Directions))
	}

	hexes := uint64(len(input.Directions))
	cost, err := FuelCost(hexes)
	if err != nil {
		return nil, err
	}
	if player.Fuel < cost {
		return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonInsufficientFuel,
			"voyage needs %d fuel, ship has %d", cost, player.Fuel)
	}

	x, y := player.X, player.Y
	for i, dir := range input.Directions {
		if dir > DirectionSouthEast {
			return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidDirection,
				"direction %d at step %d is not a hex direction", dir, i)
		}
		x += hexDX[dir]
		y += hexDY[dir]
		if !input.Bounds.Contains(x, y) {
			return nil, errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonOutOfMap,
				"step %d leaves the map at (%d,%d)", i, x, y)
		}
	}

	cooldown, err := Cooldown(player.MovementSpeed, hexes)
	if err != nil {
		return nil, err
	}
	if input.Now > math.MaxInt64-cooldown {
		return nil, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"cooldown overflows the clock")
	}

	player.X, player.Y = x, y
	player.Fuel -= cost
	player.CooldownUntil = input.Now + cooldown

	return &MoveOutput{
		X:             x,
		Y:             y,
		FuelConsumed:  cost,
		CooldownUntil: player.CooldownUntil,
	}, nil
}

// FuelCost returns the fuel burned over the given number of hexes
func FuelCost(hexes uint64) (uint64, error) {
	hi, cost := bits.Mul64(hexes, HexMoveCost)
	if hi != 0 {
		return 0, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"fuel cost overflows")
	}
	return cost, nil
}

// Cooldown returns the seconds a move of hexes keeps the ship busy:
// speed seconds per hex.
func Cooldown(speed, hexes uint64) (int64, error) {
	if speed == 0 {
		speed = BaseMovementSpeed
	}
	hi, lo := bits.Mul64(speed, hexes)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"cooldown overflows")
	}
	return int64(lo), nil
}

// AddFuel credits whole fuel units to the player
func AddFuel(player *entities.PlayerState, units uint64) error {
	if units == 0 {
		return errors.InvalidArgument("fuel amount must be positive")
	}
	hi, amount := bits.Mul64(units, FuelUnit)
	if hi != 0 {
		return errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"fuel amount overflows")
	}
	total, carry := bits.Add64(player.Fuel, amount, 0)
	if carry != 0 {
		return errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"fuel tank overflows")
	}
	player.Fuel = total
	return nil
}

// ShipSpeed returns the speed of the fastest fitted engine.
// Lower values are faster; a ship with no engine moves at BaseMovementSpeed.
func ShipSpeed(engineSpeeds []uint64) uint64 {
	best := uint64(0)
	for _, s := range engineSpeeds {
		if s == 0 {
			continue
		}
		if best == 0 || s < best {
			best = s
		}
	}
	if best == 0 {
		return BaseMovementSpeed
	}
	return best
}
