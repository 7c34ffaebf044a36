package entities

// PlayerState is a registered player's ship position, fuel and bait stock
type PlayerState struct {
	ID            string            `json:"id"`
	MapID         uint64            `json:"map_id"`
	ShipID        uint64            `json:"ship_id"`
	X             int32             `json:"x"`
	Y             int32             `json:"y"`
	Fuel          uint64            `json:"fuel"`
	MovementSpeed uint64            `json:"movement_speed"`
	CooldownUntil int64             `json:"cooldown_until"`
	Bait          map[uint64]uint64 `json:"bait,omitempty"`
	RegisteredAt  int64             `json:"registered_at"`
}

// BaitCount returns how many units of the bait kind the player holds
func (p *PlayerState) BaitCount(baitID uint64) uint64 {
	if p.Bait == nil {
		return 0
	}
	return p.Bait[baitID]
}

// Clone returns a deep copy of the player state
func (p *PlayerState) Clone() *PlayerState {
	if p == nil {
		return nil
	}
	out := *p
	if p.Bait != nil {
		out.Bait = make(map[uint64]uint64, len(p.Bait))
		for k, v := range p.Bait {
			out.Bait[k] = v
		}
	}
	return &out
}
