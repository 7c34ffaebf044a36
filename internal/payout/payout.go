// Package payout is the boundary to currency custody. Sales pay players out
// and purchases charge them; the custodian owns balances.
package payout

//go:generate mockgen -destination=mock/mock_custodian.go -package=payoutmock github.com/tides-game/tides-api/internal/payout Custodian

import (
	"context"
	"log/slog"
	"math/bits"
	"sync"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// Custodian moves currency in and out of player accounts
type Custodian interface {
	// Charge debits amount from the player
	// Returns errors.FailedPrecondition with reason INSUFFICIENT_FUNDS when the balance is short
	Charge(ctx context.Context, playerID string, amount uint64, memo string) error

	// Payout credits amount to the player
	Payout(ctx context.Context, playerID string, amount uint64, memo string) error
}

// MemoryConfig configures a MemoryCustodian
type MemoryConfig struct {
	Logger *slog.Logger

	// StartingBalance is credited the first time a player is seen
	StartingBalance uint64
}

// MemoryCustodian keeps balances in process and logs every movement.
// It stands in for an external custody service in development.
type MemoryCustodian struct {
	mu       sync.Mutex
	balances map[string]uint64
	starting uint64
	logger   *slog.Logger
}

// NewMemoryCustodian creates a MemoryCustodian
func NewMemoryCustodian(cfg *MemoryConfig) *MemoryCustodian {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryCustodian{
		balances: make(map[string]uint64),
		starting: cfg.StartingBalance,
		logger:   logger,
	}
}

var _ Custodian = (*MemoryCustodian)(nil)

func (c *MemoryCustodian) balanceLocked(playerID string) uint64 {
	bal, ok := c.balances[playerID]
	if !ok {
		bal = c.starting
		c.balances[playerID] = bal
	}
	return bal
}

// Charge debits the player
func (c *MemoryCustodian) Charge(ctx context.Context, playerID string, amount uint64, memo string) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bal := c.balanceLocked(playerID)
	if bal < amount {
		return errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonInsufficientFunds,
			"charge of %d exceeds balance %d", amount, bal).
			WithMeta("balance", bal)
	}
	c.balances[playerID] = bal - amount

	c.logger.InfoContext(ctx, "custody charge",
		"player_id", playerID,
		"amount", amount,
		"balance", bal-amount,
		"memo", memo)
	return nil
}

// Payout credits the player
func (c *MemoryCustodian) Payout(ctx context.Context, playerID string, amount uint64, memo string) error {
	if playerID == "" {
		return errors.InvalidArgument("player ID is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bal := c.balanceLocked(playerID)
	total, carry := bits.Add64(bal, amount, 0)
	if carry != 0 {
		return errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"payout of %d overflows balance", amount)
	}
	c.balances[playerID] = total

	c.logger.InfoContext(ctx, "custody payout",
		"player_id", playerID,
		"amount", amount,
		"balance", total,
		"memo", memo)
	return nil
}

// Balance returns the player's current balance
func (c *MemoryCustodian) Balance(playerID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balanceLocked(playerID)
}
