package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/config"
	"github.com/tides-game/tides-api/internal/oracle"
)

var (
	oraclePlayer    string
	oracleNonce     uint64
	oracleTimestamp int64
	oracleSeed      string
	oracleKeep      bool
	oracleX         uint32
	oracleY         uint32
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Development fishing oracle",
	Long:  `Roll and sign fishing results the way the production oracle does, for local play and testing.`,
}

var oracleRollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a signed result for a pending request",
	Long: `Roll a catch for a pending nonce and print a FulfillFishing request. Example:

  tides-api oracle roll --player captain --nonce 1 --keep | tides-api client fulfill-fishing -`,
	RunE: runOracleRoll,
}

var oracleKeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an oracle signing key",
	RunE:  runOracleKeygen,
}

func init() {
	oracleRollCmd.Flags().StringVar(&oraclePlayer, "player", "", "player the result is issued to")
	oracleRollCmd.Flags().Uint64Var(&oracleNonce, "nonce", 0, "pending nonce being answered")
	oracleRollCmd.Flags().Int64Var(&oracleTimestamp, "timestamp", 0, "result timestamp in unix seconds (default now)")
	oracleRollCmd.Flags().StringVar(&oracleSeed, "seed", "", "hex ed25519 seed (default fishing.oracle_seed)")
	oracleRollCmd.Flags().BoolVar(&oracleKeep, "keep", false, "keep the catch")
	oracleRollCmd.Flags().Uint32Var(&oracleX, "x", 0, "cargo column to stow the catch")
	oracleRollCmd.Flags().Uint32Var(&oracleY, "y", 0, "cargo row to stow the catch")
	_ = oracleRollCmd.MarkFlagRequired("player") // nolint:errcheck // flag exists
	_ = oracleRollCmd.MarkFlagRequired("nonce")  // nolint:errcheck // flag exists

	oracleCmd.AddCommand(oracleRollCmd)
	oracleCmd.AddCommand(oracleKeygenCmd)
}

func runOracleRoll(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	seed := oracleSeed
	if seed == "" {
		seed = cfg.Fishing.OracleSeed
	}
	if seed == "" {
		return fmt.Errorf("an oracle seed is required; pass --seed or set fishing.oracle_seed")
	}
	signer, err := auth.ParseSeed(seed)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	o, err := oracle.New(&oracle.Config{
		Catalog: cat,
		Roller:  dice.DefaultRoller,
		Signer:  signer,
	})
	if err != nil {
		return err
	}

	timestamp := oracleTimestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := o.Roll(ctx, oracle.RollInput{
		PlayerID:  oraclePlayer,
		Nonce:     oracleNonce,
		Timestamp: timestamp,
	})
	if err != nil {
		return err
	}

	req := &tidesv1alpha1.FulfillFishingRequest{
		PlayerID: oraclePlayer,
		Result: &tidesv1alpha1.FishingResult{
			Nonce:     out.Result.Nonce,
			SpeciesID: out.Result.SpeciesID,
			Weight:    uint32(out.Result.Weight),
			Timestamp: out.Result.Timestamp,
		},
		Signature:  out.Signature,
		ShouldKeep: oracleKeep,
		X:          oracleX,
		Y:          oracleY,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(req)
}

func runOracleKeygen(_ *cobra.Command, _ []string) error {
	signer, err := auth.GenerateSigner()
	if err != nil {
		return err
	}

	fmt.Printf("oracle_seed        = %q\n", signer.Seed())
	fmt.Printf("trusted_public_key = %q\n", hex.EncodeToString(signer.PublicKey()))
	return nil
}
