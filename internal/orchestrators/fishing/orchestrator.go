// Package fishing drives the request/fulfillment protocol for catching fish
package fishing

//go:generate mockgen -destination=mock/mock_service.go -package=fishingmock github.com/tides-game/tides-api/internal/orchestrators/fishing Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	rules "github.com/tides-game/tides-api/internal/engine/fishing"
	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/engine/rpgtoolkit"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/players"
)

// Service defines the interface for fishing operations
type Service interface {
	InitiateFishing(ctx context.Context, input *InitiateFishingInput) (*InitiateFishingOutput, error)
	FulfillFishing(ctx context.Context, input *FulfillFishingInput) (*FulfillFishingOutput, error)
	GetFishingState(ctx context.Context, input *GetFishingStateInput) (*GetFishingStateOutput, error)
	AbandonFishing(ctx context.Context, input *AbandonFishingInput) (*AbandonFishingOutput, error)
}

// Config holds the dependencies for the fishing orchestrator
type Config struct {
	PlayerRepo    players.Repository
	InventoryRepo inventories.Repository
	FishingRepo   fishingrequests.Repository
	CatchRepo     catches.Repository
	Catalog       catalog.Lookup
	Verifier      auth.Verifier
	Publisher     rpgtoolkit.Publisher
	Clock         clock.Clock
	Locker        *keylock.Locker

	// SignatureTimeout bounds result age; defaults to rules.DefaultSignatureTimeout
	SignatureTimeout time.Duration

	// RequestExpiry lets stale pending requests be replaced; defaults to rules.DefaultRequestExpiry
	RequestExpiry time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.FishingRepo == nil {
		vb.RequiredField("FishingRepo")
	}
	if c.CatchRepo == nil {
		vb.RequiredField("CatchRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Verifier == nil {
		vb.RequiredField("Verifier")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo       players.Repository
	inventoryRepo    inventories.Repository
	fishingRepo      fishingrequests.Repository
	catchRepo        catches.Repository
	catalog          catalog.Lookup
	verifier         auth.Verifier
	publisher        rpgtoolkit.Publisher
	clock            clock.Clock
	locker           *keylock.Locker
	signatureTimeout time.Duration
	requestExpiry    time.Duration
}

// NewOrchestrator creates a new fishing orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.SignatureTimeout
	if timeout <= 0 {
		timeout = rules.DefaultSignatureTimeout
	}
	expiry := cfg.RequestExpiry
	if expiry <= 0 {
		expiry = rules.DefaultRequestExpiry
	}
	// a request must outlive the window its result is accepted in
	if expiry < timeout {
		expiry = timeout
	}

	return &orchestrator{
		playerRepo:       cfg.PlayerRepo,
		inventoryRepo:    cfg.InventoryRepo,
		fishingRepo:      cfg.FishingRepo,
		catchRepo:        cfg.CatchRepo,
		catalog:          cfg.Catalog,
		verifier:         cfg.Verifier,
		publisher:        cfg.Publisher,
		clock:            cfg.Clock,
		locker:           cfg.Locker,
		signatureTimeout: timeout,
		requestExpiry:    expiry,
	}, nil
}

// InitiateFishing spends one bait and opens a pending request
func (o *orchestrator) InitiateFishing(ctx context.Context, input *InitiateFishingInput) (*InitiateFishingOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	bait, err := o.catalog.GetBait(input.BaitID)
	if err != nil {
		return nil, err
	}
	if !bait.Active {
		return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonInvalidBait,
			"bait %d is not in season", bait.ID)
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	player := got.Player

	inv, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	if !inventory.HasItemKind(inv.Grid, entities.ItemKindFishingRod) {
		return nil, errors.Reasoned(errors.CodeFailedPrecondition, entities.ReasonNoFishingRod,
			"a fishing rod must be equipped")
	}

	if player.BaitCount(bait.ID) == 0 {
		return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonInsufficientBait,
			"no %s bait left", bait.Name).
			WithMeta("bait_id", bait.ID)
	}

	req, err := o.fishingRepo.Get(ctx, fishingrequests.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	issued, err := rules.Initiate(req.Request, rules.InitiateInput{
		BaitKind: bait.ID,
		Now:      clock.Unix(o.clock),
		Expiry:   o.requestExpiry,
	})
	if err != nil {
		return nil, err
	}

	before := player.Clone()
	player.Bait[bait.ID]--
	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: player}); err != nil {
		return nil, errors.Wrap(err, "failed to consume bait")
	}
	if _, err := o.fishingRepo.Save(ctx, fishingrequests.SaveInput{Request: req.Request}); err != nil {
		if _, rerr := o.playerRepo.Update(ctx, players.UpdateInput{Player: before}); rerr != nil {
			slog.Error("failed to restore bait",
				"player_id", input.PlayerID,
				"bait_id", bait.ID,
				"error", rerr)
		}
		return nil, errors.Wrap(err, "failed to save fishing request")
	}

	if issued.Replaced != 0 {
		slog.Info("expired fishing request replaced",
			"player_id", input.PlayerID,
			"replaced_nonce", issued.Replaced)
	}
	slog.Debug("fishing initiated",
		"player_id", input.PlayerID,
		"nonce", issued.Nonce,
		"bait_id", bait.ID)

	return &InitiateFishingOutput{
		Nonce:         issued.Nonce,
		ReplacedNonce: issued.Replaced,
		BaitRemaining: player.BaitCount(bait.ID),
		Request:       req.Request,
	}, nil
}

// FulfillFishing settles a pending request with an authenticated oracle result
func (o *orchestrator) FulfillFishing(ctx context.Context, input *FulfillFishingInput) (*FulfillFishingOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	if err := o.verifier.Verify(ctx, auth.ClaimFor(input.PlayerID, input.Result), input.Signature); err != nil {
		return nil, err
	}

	keep := input.ShouldKeep && input.Result.SpeciesID != 0

	var species *catalog.Species
	if keep {
		var err error
		species, err = o.catalog.GetSpecies(input.Result.SpeciesID)
		if err != nil {
			return nil, err
		}
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	req, err := o.fishingRepo.Get(ctx, fishingrequests.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	now := clock.Unix(o.clock)
	if err := rules.Fulfill(req.Request, input.Result, now, o.signatureTimeout); err != nil {
		return nil, err
	}
	if _, err := o.fishingRepo.Save(ctx, fishingrequests.SaveInput{Request: req.Request}); err != nil {
		return nil, errors.Wrap(err, "failed to save fishing request")
	}

	if !keep {
		slog.Debug("catch discarded",
			"player_id", input.PlayerID,
			"nonce", input.Result.Nonce,
			"species_id", input.Result.SpeciesID)
		return &FulfillFishingOutput{}, nil
	}

	out, err := o.stow(ctx, input, species, now)
	if err != nil {
		// the nonce is spent; this catch cannot be fulfilled again
		slog.Error("catch lost",
			"player_id", input.PlayerID,
			"nonce", input.Result.Nonce,
			"species_id", input.Result.SpeciesID,
			"weight", input.Result.Weight,
			"x", input.X,
			"y", input.Y,
			"error", err)
		return nil, err
	}

	if err := o.publisher.FishCaught(ctx, got.Player, out.Record); err != nil {
		slog.Warn("failed to publish catch", "player_id", input.PlayerID, "error", err)
	}

	slog.Info("fish caught",
		"player_id", input.PlayerID,
		"species_id", out.Record.SpeciesID,
		"weight", out.Record.Weight,
		"instance_id", out.InstanceID)

	return out, nil
}

// stow places a kept fish and records its catch. Caller holds the player lock.
func (o *orchestrator) stow(
	ctx context.Context,
	input *FulfillFishingInput,
	species *catalog.Species,
	now int64,
) (*FulfillFishingOutput, error) {
	inv, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	grid := inv.Grid

	// a caught fish always takes a single cell
	instanceID, err := inventory.Place(grid, entities.ItemKindFish, species.ID,
		input.X, input.Y, input.Rotation, 1, 1)
	if err != nil {
		return nil, err
	}

	record := &entities.CatchRecord{
		Owner:      input.PlayerID,
		InstanceID: instanceID,
		SpeciesID:  species.ID,
		Weight:     input.Result.Weight,
		CaughtAt:   now,
	}
	if _, err := o.catchRepo.Create(ctx, catches.CreateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to record catch")
	}

	if _, err := o.inventoryRepo.Save(ctx, inventories.SaveInput{Grid: grid}); err != nil {
		if _, derr := o.catchRepo.Delete(ctx, catches.DeleteInput{Owner: input.PlayerID, InstanceID: instanceID}); derr != nil {
			slog.Error("orphaned catch record",
				"player_id", input.PlayerID,
				"instance_id", instanceID,
				"error", derr)
		}
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	return &FulfillFishingOutput{
		Kept:       true,
		InstanceID: instanceID,
		Record:     record,
		Grid:       grid,
	}, nil
}

// GetFishingState returns the player's request and whether it has expired
func (o *orchestrator) GetFishingState(ctx context.Context, input *GetFishingStateInput) (*GetFishingStateOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	req, err := o.fishingRepo.Get(ctx, fishingrequests.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &GetFishingStateOutput{
		Request: req.Request,
		Expired: rules.Expired(req.Request, clock.Unix(o.clock), o.requestExpiry),
	}, nil
}

// AbandonFishing clears an expired pending request. The bait is not returned.
func (o *orchestrator) AbandonFishing(ctx context.Context, input *AbandonFishingInput) (*AbandonFishingOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	req, err := o.fishingRepo.Get(ctx, fishingrequests.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	nonce, err := rules.Abandon(req.Request, clock.Unix(o.clock), o.requestExpiry)
	if err != nil {
		return nil, err
	}
	if _, err := o.fishingRepo.Save(ctx, fishingrequests.SaveInput{Request: req.Request}); err != nil {
		return nil, errors.Wrap(err, "failed to save fishing request")
	}

	slog.Info("fishing request abandoned", "player_id", input.PlayerID, "nonce", nonce)

	return &AbandonFishingOutput{AbandonedNonce: nonce, Request: req.Request}, nil
}
