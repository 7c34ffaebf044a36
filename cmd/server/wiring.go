package main

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/config"
	"github.com/tides-game/tides-api/internal/engine/rpgtoolkit"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/fishing"
	"github.com/tides-game/tides-api/internal/orchestrators/inventory"
	"github.com/tides-game/tides-api/internal/orchestrators/market"
	"github.com/tides-game/tides-api/internal/orchestrators/voyage"
	"github.com/tides-game/tides-api/internal/payout"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/idgen"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	redisclient "github.com/tides-game/tides-api/internal/redis"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/markets"
	"github.com/tides-game/tides-api/internal/repositories/players"
	"github.com/tides-game/tides-api/internal/snapshot"
)

type repositories struct {
	players         players.Repository
	inventories     inventories.Repository
	fishingRequests fishingrequests.Repository
	markets         markets.Repository
	catches         catches.Repository
}

// services is everything the gRPC handlers and the ticker need
type services struct {
	voyage    voyage.Service
	inventory inventory.Service
	fishing   fishing.Service
	market    market.Service
	bus       events.EventBus

	// memory is set for the memory backend so state can be snapshotted
	memory  *snapshot.Stores
	closers []func() error
}

func (s *services) close(logger *zap.Logger) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			logger.Warn("failed to close dependency", zap.Error(err))
		}
	}
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Path)
}

func newVerifier(cfg config.FishingConfig) (auth.Verifier, error) {
	if cfg.AuthMode == config.AuthTimestampOnly {
		return auth.TimestampOnlyVerifier{}, nil
	}

	if cfg.TrustedPublicKey != "" {
		key, err := auth.ParsePublicKey(cfg.TrustedPublicKey)
		if err != nil {
			return nil, errors.Wrap(err, "invalid fishing.trusted_public_key")
		}
		return auth.NewEd25519Verifier(key)
	}

	signer, err := auth.ParseSeed(cfg.OracleSeed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid fishing.oracle_seed")
	}
	return auth.NewEd25519Verifier(signer.PublicKey())
}

func buildRepositories(ctx context.Context, cfg *config.Config, svc *services) (*repositories, error) {
	repos := &repositories{}

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := redisclient.Connect(ctx, cfg.Storage.RedisAddresses, &redisclient.Options{
			Username: cfg.Storage.RedisUsername,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			UseTLS:   cfg.Storage.RedisTLS,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}
		svc.closers = append(svc.closers, client.Close)

		repos.players = players.NewRedisRepository(client)
		repos.inventories = inventories.NewRedisRepository(client)
		repos.fishingRequests = fishingrequests.NewRedisRepository(client)
		repos.markets = markets.NewRedisRepository(client, cfg.Market.SettleRetries)

	default:
		stores := &snapshot.Stores{
			Players:         players.NewInMemory(),
			Inventories:     inventories.NewInMemory(),
			FishingRequests: fishingrequests.NewInMemory(),
			Markets:         markets.NewInMemory(),
		}
		svc.memory = stores

		repos.players = stores.Players
		repos.inventories = stores.Inventories
		repos.fishingRequests = stores.FishingRequests
		repos.markets = stores.Markets
	}

	if cfg.Ledger.Driver == config.LedgerMemory {
		ledger := catches.NewInMemory()
		if svc.memory != nil {
			svc.memory.Catches = ledger
		}
		repos.catches = ledger
		return repos, nil
	}

	ledger, err := catches.OpenSQL(ctx, &catches.SQLConfig{
		Driver: cfg.Ledger.Driver,
		DSN:    cfg.Ledger.DSN,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catch ledger")
	}
	svc.closers = append(svc.closers, ledger.Close)
	repos.catches = ledger

	return repos, nil
}

func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	svc := &services{}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	verifier, err := newVerifier(cfg.Fishing)
	if err != nil {
		return nil, err
	}

	repos, err := buildRepositories(ctx, cfg, svc)
	if err != nil {
		svc.closeQuietly()
		return nil, err
	}

	bus := events.NewBus()
	svc.bus = bus
	publisher, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	if err != nil {
		svc.closeQuietly()
		return nil, err
	}

	custodian := payout.NewMemoryCustodian(&payout.MemoryConfig{
		StartingBalance: cfg.Payout.StartingBalance,
	})
	clk := clock.New()
	locker := keylock.New()

	svc.voyage, err = voyage.NewOrchestrator(&voyage.Config{
		PlayerRepo:    repos.players,
		InventoryRepo: repos.inventories,
		FishingRepo:   repos.fishingRequests,
		Catalog:       cat,
		Custodian:     custodian,
		Clock:         clk,
		Locker:        locker,
	})
	if err != nil {
		svc.closeQuietly()
		return nil, errors.Wrap(err, "failed to create voyage orchestrator")
	}

	svc.inventory, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: repos.inventories,
		PlayerRepo:    repos.players,
		CatchRepo:     repos.catches,
		Catalog:       cat,
		Locker:        locker,
	})
	if err != nil {
		svc.closeQuietly()
		return nil, errors.Wrap(err, "failed to create inventory orchestrator")
	}

	svc.fishing, err = fishing.NewOrchestrator(&fishing.Config{
		PlayerRepo:       repos.players,
		InventoryRepo:    repos.inventories,
		FishingRepo:      repos.fishingRequests,
		CatchRepo:        repos.catches,
		Catalog:          cat,
		Verifier:         verifier,
		Publisher:        publisher,
		Clock:            clk,
		Locker:           locker,
		SignatureTimeout: cfg.Fishing.SignatureTimeout,
		RequestExpiry:    cfg.Fishing.RequestExpiry,
	})
	if err != nil {
		svc.closeQuietly()
		return nil, errors.Wrap(err, "failed to create fishing orchestrator")
	}

	svc.market, err = market.NewOrchestrator(&market.Config{
		MarketRepo:    repos.markets,
		CatchRepo:     repos.catches,
		InventoryRepo: repos.inventories,
		Catalog:       cat,
		Custodian:     custodian,
		Publisher:     publisher,
		IDGenerator:   idgen.NewUUID("settlement"),
		Clock:         clk,
		Locker:        locker,
	})
	if err != nil {
		svc.closeQuietly()
		return nil, errors.Wrap(err, "failed to create market orchestrator")
	}

	return svc, nil
}

func (s *services) closeQuietly() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]() // nolint:errcheck // startup already failed
	}
}
