package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
)

var initiateFishingCmd = &cobra.Command{
	Use:   "initiate-fishing [player-id] [bait-id]",
	Short: "Cast a line with one bait",
	Args:  cobra.ExactArgs(2),
	RunE:  initiateFishing,
}

var fulfillFishingCmd = &cobra.Command{
	Use:   "fulfill-fishing [request.json|-]",
	Short: "Submit a signed oracle result",
	Long: `Submit a FulfillFishing request read from a file, or stdin when the path is "-".
The oracle roll command prints requests in this format.`,
	Args: cobra.ExactArgs(1),
	RunE: fulfillFishing,
}

var fishingStateCmd = &cobra.Command{
	Use:   "fishing-state [player-id]",
	Short: "Show a player's fishing request",
	Args:  cobra.ExactArgs(1),
	RunE:  fishingState,
}

var abandonFishingCmd = &cobra.Command{
	Use:   "abandon-fishing [player-id]",
	Short: "Clear an expired pending request",
	Args:  cobra.ExactArgs(1),
	RunE:  abandonFishing,
}

func initiateFishing(_ *cobra.Command, args []string) error {
	baitID, err := parseUint64("bait-id", args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createFishingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.InitiateFishing(ctx, &tidesv1alpha1.InitiateFishingRequest{
		PlayerID: args[0],
		BaitID:   baitID,
	})
	if err != nil {
		return fmt.Errorf("failed to initiate fishing: %w", err)
	}

	return printJSON(resp)
}

func readFulfillRequest(path string) (*tidesv1alpha1.FulfillFishingRequest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open request: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req tidesv1alpha1.FulfillFishingRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}

func fulfillFishing(_ *cobra.Command, args []string) error {
	req, err := readFulfillRequest(args[0])
	if err != nil {
		return err
	}

	client, cleanup, err := createFishingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.FulfillFishing(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to fulfill fishing: %w", err)
	}

	return printJSON(resp)
}

func fishingState(_ *cobra.Command, args []string) error {
	client, cleanup, err := createFishingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetFishingState(ctx, &tidesv1alpha1.GetFishingStateRequest{PlayerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get fishing state: %w", err)
	}

	return printJSON(resp)
}

func abandonFishing(_ *cobra.Command, args []string) error {
	client, cleanup, err := createFishingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AbandonFishing(ctx, &tidesv1alpha1.AbandonFishingRequest{PlayerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to abandon fishing: %w", err)
	}

	return printJSON(resp)
}
