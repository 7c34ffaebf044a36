package entities

// FishingRequest tracks the single outstanding fishing attempt of a player.
// PendingNonce is 0 when idle, otherwise equal to FishingNonce.
type FishingRequest struct {
	PlayerID      string `json:"player_id"`
	PendingNonce  uint64 `json:"pending_nonce"`
	BaitKindInUse uint64 `json:"bait_kind_in_use"`
	FishingNonce  uint64 `json:"fishing_nonce"`
	IssuedAt      int64  `json:"issued_at"`
}

// IsPending reports whether a request is awaiting fulfillment
func (r *FishingRequest) IsPending() bool {
	return r.PendingNonce != 0
}

// FishingResult is the oracle's answer to a pending request.
// SpeciesID 0 means nothing was caught.
type FishingResult struct {
	Nonce     uint64 `json:"nonce"`
	SpeciesID uint64 `json:"species_id"`
	Weight    uint16 `json:"weight"`
	Timestamp int64  `json:"timestamp"`
}

// CatchRecord is the immutable proof of a kept catch
type CatchRecord struct {
	Owner      string `json:"owner"`
	InstanceID uint64 `json:"instance_id"`
	SpeciesID  uint64 `json:"species_id"`
	Weight     uint16 `json:"weight"`
	CaughtAt   int64  `json:"caught_at"`
}
