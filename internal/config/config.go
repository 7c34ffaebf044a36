// Package config loads the TOML configuration of the tides server
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tides-game/tides-api/internal/errors"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Ledger drivers
const (
	LedgerMemory   = "memory"
	LedgerSQLite   = "sqlite"
	LedgerPostgres = "postgres"
	LedgerMySQL    = "mysql"
)

// Result authentication modes
const (
	AuthEd25519       = "ed25519"
	AuthTimestampOnly = "timestamp_only"
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
	Ledger  LedgerConfig  `toml:"ledger"`
	Catalog CatalogConfig `toml:"catalog"`
	Fishing FishingConfig `toml:"fishing"`
	Market  MarketConfig  `toml:"market"`
	Payout  PayoutConfig  `toml:"payout"`
	Ticker  TickerConfig  `toml:"ticker"`
}

type ServerConfig struct {
	Port            int           `toml:"port"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type StorageConfig struct {
	Backend string `toml:"backend"`

	// RedisAddresses with more than one entry selects a cluster client
	RedisAddresses []string `toml:"redis_addresses"`
	RedisUsername  string   `toml:"redis_username"`
	RedisPassword  string   `toml:"redis_password"`
	RedisDB        int      `toml:"redis_db"`
	RedisTLS       bool     `toml:"redis_tls"`

	// SnapshotPath is only used by the memory backend. Empty disables snapshots.
	SnapshotPath string `toml:"snapshot_path"`
}

type LedgerConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type CatalogConfig struct {
	// Path to a catalog YAML file. Empty uses the built-in catalog.
	Path string `toml:"path"`
}

type FishingConfig struct {
	SignatureTimeout time.Duration `toml:"signature_timeout"`
	RequestExpiry    time.Duration `toml:"request_expiry"`
	AuthMode         string        `toml:"auth_mode"`

	// TrustedPublicKey is the hex ed25519 key fishing results must be signed with
	TrustedPublicKey string `toml:"trusted_public_key"`

	// OracleSeed is the hex ed25519 seed of the development oracle
	OracleSeed string `toml:"oracle_seed"`
}

type MarketConfig struct {
	SettleRetries int `toml:"settle_retries"`
}

type PayoutConfig struct {
	StartingBalance uint64 `toml:"starting_balance"`
}

type TickerConfig struct {
	Enabled     bool   `toml:"enabled"`
	BindAddress string `toml:"bind_address"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Defaults returns a configuration for a single in-memory development server
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Backend:        StorageMemory,
			RedisAddresses: []string{"localhost:6379"},
		},
		Ledger: LedgerConfig{
			Driver: LedgerMemory,
		},
		Fishing: FishingConfig{
			SignatureTimeout: 300 * time.Second,
			RequestExpiry:    10 * time.Minute,
			AuthMode:         AuthTimestampOnly,
		},
		Market: MarketConfig{
			SettleRetries: 8,
		},
		Payout: PayoutConfig{
			StartingBalance: 0,
		},
		Ticker: TickerConfig{
			Enabled:     false,
			BindAddress: "127.0.0.1:8090",
		},
	}
}

// Validate checks the configuration for contradictions
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"json", "console"}, vb)
	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("storage.backend", c.Storage.Backend, []string{StorageMemory, StorageRedis}, vb)
	errors.ValidateEnum("ledger.driver", c.Ledger.Driver,
		[]string{LedgerMemory, LedgerSQLite, LedgerPostgres, LedgerMySQL}, vb)
	errors.ValidateEnum("fishing.auth_mode", c.Fishing.AuthMode, []string{AuthEd25519, AuthTimestampOnly}, vb)

	if c.Storage.Backend == StorageRedis && len(c.Storage.RedisAddresses) == 0 {
		vb.RequiredField("storage.redis_addresses")
	}
	if c.Ledger.Driver != LedgerMemory {
		errors.ValidateRequired("ledger.dsn", c.Ledger.DSN, vb)
	}
	if c.Fishing.AuthMode == AuthEd25519 && c.Fishing.TrustedPublicKey == "" && c.Fishing.OracleSeed == "" {
		vb.InvalidField("fishing.trusted_public_key", "required for ed25519 auth unless oracle_seed is set")
	}
	if c.Fishing.SignatureTimeout <= 0 {
		vb.InvalidField("fishing.signature_timeout", "must be positive")
	}
	if c.Fishing.RequestExpiry < c.Fishing.SignatureTimeout {
		vb.InvalidField("fishing.request_expiry", "must not be shorter than signature_timeout")
	}
	if c.Market.SettleRetries < 1 {
		vb.InvalidField("market.settle_retries", "must be at least 1")
	}
	if c.Ticker.Enabled {
		errors.ValidateRequired("ticker.bind_address", c.Ticker.BindAddress, vb)
	}

	return vb.Build()
}
