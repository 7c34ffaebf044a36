package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
)

var sellCatchCmd = &cobra.Command{
	Use:   "sell [player-id] [instance-id]",
	Short: "Sell a held catch",
	Args:  cobra.ExactArgs(2),
	RunE:  sellCatch,
}

var getMarketCmd = &cobra.Command{
	Use:   "get-market [species-id]",
	Short: "Show the price state of a species",
	Args:  cobra.ExactArgs(1),
	RunE:  getMarket,
}

var listMarketsCmd = &cobra.Command{
	Use:   "list-markets",
	Short: "List every traded species",
	Args:  cobra.NoArgs,
	RunE:  listMarkets,
}

var listCatchesCmd = &cobra.Command{
	Use:   "list-catches [player-id]",
	Short: "List a player's held catches with freshness",
	Args:  cobra.ExactArgs(1),
	RunE:  listCatches,
}

func sellCatch(_ *cobra.Command, args []string) error {
	instanceID, err := parseUint64("instance-id", args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createMarketClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SellCatch(ctx, &tidesv1alpha1.SellCatchRequest{
		PlayerID:   args[0],
		InstanceID: instanceID,
	})
	if err != nil {
		return fmt.Errorf("failed to sell catch: %w", err)
	}

	return printJSON(resp)
}

func getMarket(_ *cobra.Command, args []string) error {
	speciesID, err := parseUint64("species-id", args[0])
	if err != nil {
		return err
	}

	client, cleanup, err := createMarketClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetMarket(ctx, &tidesv1alpha1.GetMarketRequest{SpeciesID: speciesID})
	if err != nil {
		return fmt.Errorf("failed to get market: %w", err)
	}

	return printJSON(resp)
}

func listMarkets(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMarketClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListMarkets(ctx, &tidesv1alpha1.ListMarketsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list markets: %w", err)
	}

	return printJSON(resp)
}

func listCatches(_ *cobra.Command, args []string) error {
	client, cleanup, err := createMarketClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCatches(ctx, &tidesv1alpha1.ListCatchesRequest{PlayerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to list catches: %w", err)
	}

	return printJSON(resp)
}
