// Package main provides a command-line client that plays a full fishing trip
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/oracle"
)

var (
	serverAddr string
	timeout    time.Duration

	seed   string
	baitID uint64
	stowX  uint32
	stowY  uint32
	hold   bool
)

var rootCmd = &cobra.Command{
	Use:   "tides-client",
	Short: "Tides client for playing through the services",
}

var tripCmd = &cobra.Command{
	Use:   "trip [player-id]",
	Short: "Register, cast, land and sell one catch",
	Long: `Run one fishing trip against a server. The result is rolled and signed locally,
so --seed must match the oracle key the server trusts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		playerID := args[0]

		signer, err := auth.ParseSeed(seed)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		o, err := oracle.New(&oracle.Config{
			Catalog: catalog.Default(),
			Roller:  dice.DefaultRoller,
			Signer:  signer,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Printf("Failed to close connection: %v", err)
			}
		}()

		voyageClient := tidesv1alpha1.NewVoyageServiceClient(conn)
		fishingClient := tidesv1alpha1.NewFishingServiceClient(conn)
		marketClient := tidesv1alpha1.NewMarketServiceClient(conn)

		registered, err := voyageClient.RegisterPlayer(ctx, &tidesv1alpha1.RegisterPlayerRequest{PlayerID: playerID})
		switch rerr := errors.FromGRPCError(err); {
		case errors.IsAlreadyExists(rerr):
			log.Printf("%s is already registered", playerID)
		case rerr != nil:
			return stepError("register", rerr)
		default:
			printStep("registered", registered)
		}

		if _, err := voyageClient.GrantBait(ctx, &tidesv1alpha1.GrantBaitRequest{
			PlayerID: playerID,
			BaitID:   baitID,
			Amount:   1,
		}); err != nil {
			return stepError("grant bait", err)
		}

		cast, err := fishingClient.InitiateFishing(ctx, &tidesv1alpha1.InitiateFishingRequest{
			PlayerID: playerID,
			BaitID:   baitID,
		})
		if err != nil {
			return stepError("cast", err)
		}
		printStep("cast", cast)

		roll, err := o.Roll(ctx, oracle.RollInput{
			PlayerID:  playerID,
			Nonce:     cast.Nonce,
			Timestamp: time.Now().Unix(),
		})
		if err != nil {
			return fmt.Errorf("failed to roll: %w", err)
		}

		landed, err := fishingClient.FulfillFishing(ctx, &tidesv1alpha1.FulfillFishingRequest{
			PlayerID: playerID,
			Result: &tidesv1alpha1.FishingResult{
				Nonce:     roll.Result.Nonce,
				SpeciesID: roll.Result.SpeciesID,
				Weight:    uint32(roll.Result.Weight),
				Timestamp: roll.Result.Timestamp,
			},
			Signature:  roll.Signature,
			ShouldKeep: true,
			X:          stowX,
			Y:          stowY,
		})
		if err != nil {
			return stepError("land catch", err)
		}
		printStep("landed", landed)

		if !landed.Kept || hold {
			return nil
		}

		sold, err := marketClient.SellCatch(ctx, &tidesv1alpha1.SellCatchRequest{
			PlayerID:   playerID,
			InstanceID: landed.InstanceID,
		})
		if err != nil {
			return stepError("sell", err)
		}
		printStep("sold", sold)
		return nil
	},
}

// stepError decodes a server error so the rejection reason is printed
func stepError(step string, err error) error {
	rerr := errors.FromGRPCError(err)
	if reason := errors.GetReason(rerr); reason != "" {
		return fmt.Errorf("failed to %s: %s (%s)", step, errors.GetMessage(rerr), reason)
	}
	return fmt.Errorf("failed to %s: %w", step, rerr)
}

func printStep(step string, resp any) {
	output, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal %s response: %v", step, err)
		return
	}
	fmt.Printf("== %s ==\n%s\n", step, output)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	tripCmd.Flags().StringVar(&seed, "seed", "", "hex ed25519 oracle seed")
	tripCmd.Flags().Uint64Var(&baitID, "bait", 1, "bait to cast with")
	tripCmd.Flags().Uint32Var(&stowX, "x", 1, "cargo column to stow the catch")
	tripCmd.Flags().Uint32Var(&stowY, "y", 0, "cargo row to stow the catch")
	tripCmd.Flags().BoolVar(&hold, "hold", false, "keep the catch instead of selling it")
	_ = tripCmd.MarkFlagRequired("seed") // nolint:errcheck // flag exists

	rootCmd.AddCommand(tripCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
