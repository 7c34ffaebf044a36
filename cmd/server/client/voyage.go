package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
)

var registerMapID uint64

var registerPlayerCmd = &cobra.Command{
	Use:   "register-player [player-id]",
	Short: "Register a player with the default ship",
	Args:  cobra.ExactArgs(1),
	RunE:  registerPlayer,
}

var getPlayerCmd = &cobra.Command{
	Use:   "get-player [player-id]",
	Short: "Get a registered player",
	Args:  cobra.ExactArgs(1),
	RunE:  getPlayer,
}

var movePlayerCmd = &cobra.Command{
	Use:   "move [player-id] [direction...]",
	Short: "Sail along hex directions",
	Long: `Sail one step per direction. Directions are 0-5 counter-clockwise from east. Example:

  move captain 0 0 1`,
	Args: cobra.MinimumNArgs(2),
	RunE: movePlayer,
}

var purchaseFuelCmd = &cobra.Command{
	Use:   "purchase-fuel [player-id] [units]",
	Short: "Buy fuel",
	Args:  cobra.ExactArgs(2),
	RunE:  purchaseFuel,
}

var grantBaitCmd = &cobra.Command{
	Use:   "grant-bait [player-id] [bait-id] [amount]",
	Short: "Credit bait without payment",
	Args:  cobra.ExactArgs(3),
	RunE:  grantBait,
}

var purchaseBaitCmd = &cobra.Command{
	Use:   "purchase-bait [player-id] [bait-id] [amount]",
	Short: "Buy bait",
	Args:  cobra.ExactArgs(3),
	RunE:  purchaseBait,
}

func init() {
	registerPlayerCmd.Flags().Uint64Var(&registerMapID, "map", 0, "map to start on (default from catalog)")
}

func registerPlayer(_ *cobra.Command, args []string) error {
	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RegisterPlayer(ctx, &tidesv1alpha1.RegisterPlayerRequest{
		PlayerID: args[0],
		MapID:    registerMapID,
	})
	if err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}

	return printJSON(resp)
}

func getPlayer(_ *cobra.Command, args []string) error {
	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetPlayer(ctx, &tidesv1alpha1.GetPlayerRequest{PlayerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get player: %w", err)
	}

	return printJSON(resp)
}

func movePlayer(_ *cobra.Command, args []string) error {
	directions := make([]uint32, 0, len(args)-1)
	for _, arg := range args[1:] {
		d, err := parseUint32("direction", arg)
		if err != nil {
			return err
		}
		directions = append(directions, d)
	}

	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.MovePlayer(ctx, &tidesv1alpha1.MovePlayerRequest{
		PlayerID:   args[0],
		Directions: directions,
	})
	if err != nil {
		return fmt.Errorf("failed to move player: %w", err)
	}

	return printJSON(resp)
}

func purchaseFuel(_ *cobra.Command, args []string) error {
	units, err := parseUint64("units", args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PurchaseFuel(ctx, &tidesv1alpha1.PurchaseFuelRequest{
		PlayerID: args[0],
		Units:    units,
	})
	if err != nil {
		return fmt.Errorf("failed to purchase fuel: %w", err)
	}

	return printJSON(resp)
}

func parseBaitArgs(args []string) (uint64, uint64, error) {
	baitID, err := parseUint64("bait-id", args[1])
	if err != nil {
		return 0, 0, err
	}
	amount, err := parseUint64("amount", args[2])
	if err != nil {
		return 0, 0, err
	}
	return baitID, amount, nil
}

func grantBait(_ *cobra.Command, args []string) error {
	baitID, amount, err := parseBaitArgs(args)
	if err != nil {
		return err
	}

	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GrantBait(ctx, &tidesv1alpha1.GrantBaitRequest{
		PlayerID: args[0],
		BaitID:   baitID,
		Amount:   amount,
	})
	if err != nil {
		return fmt.Errorf("failed to grant bait: %w", err)
	}

	return printJSON(resp)
}

func purchaseBait(_ *cobra.Command, args []string) error {
	baitID, amount, err := parseBaitArgs(args)
	if err != nil {
		return err
	}

	client, cleanup, err := createVoyageClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PurchaseBait(ctx, &tidesv1alpha1.PurchaseBaitRequest{
		PlayerID: args[0],
		BaitID:   baitID,
		Amount:   amount,
	})
	if err != nil {
		return fmt.Errorf("failed to purchase bait: %w", err)
	}

	return printJSON(resp)
}
