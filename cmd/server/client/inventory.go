package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
)

var equipRotation uint32

var getInventoryCmd = &cobra.Command{
	Use:   "get-inventory [player-id]",
	Short: "Show a player's cargo grid",
	Args:  cobra.ExactArgs(1),
	RunE:  getInventory,
}

var equipItemCmd = &cobra.Command{
	Use:   "equip [player-id] [engine|fishing_rod] [catalog-id] [x] [y]",
	Short: "Fit an engine or fishing rod",
	Args:  cobra.ExactArgs(5),
	RunE:  equipItem,
}

var removeItemCmd = &cobra.Command{
	Use:   "remove-item [player-id] [instance-id]",
	Short: "Remove an item from the grid",
	Long:  `Remove an item from the grid. Removing a fish discards the catch.`,
	Args:  cobra.ExactArgs(2),
	RunE:  removeItem,
}

var queryCellCmd = &cobra.Command{
	Use:   "query-cell [player-id] [x] [y]",
	Short: "Show one grid cell",
	Args:  cobra.ExactArgs(3),
	RunE:  queryCell,
}

func init() {
	equipItemCmd.Flags().Uint32Var(&equipRotation, "rotation", 0, "quarter turns clockwise (0-3)")
}

func getInventory(_ *cobra.Command, args []string) error {
	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetInventory(ctx, &tidesv1alpha1.GetInventoryRequest{PlayerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get inventory: %w", err)
	}

	return printJSON(resp)
}

func equipItem(_ *cobra.Command, args []string) error {
	catalogID, err := parseUint64("catalog-id", args[2])
	if err != nil {
		return err
	}
	x, err := parseUint32("x", args[3])
	if err != nil {
		return err
	}
	y, err := parseUint32("y", args[4])
	if err != nil {
		return err
	}

	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.EquipItem(ctx, &tidesv1alpha1.EquipItemRequest{
		PlayerID:  args[0],
		Kind:      args[1],
		CatalogID: catalogID,
		X:         x,
		Y:         y,
		Rotation:  equipRotation,
	})
	if err != nil {
		return fmt.Errorf("failed to equip item: %w", err)
	}

	return printJSON(resp)
}

func removeItem(_ *cobra.Command, args []string) error {
	instanceID, err := parseUint64("instance-id", args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RemoveItem(ctx, &tidesv1alpha1.RemoveItemRequest{
		PlayerID:   args[0],
		InstanceID: instanceID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	return printJSON(resp)
}

func queryCell(_ *cobra.Command, args []string) error {
	x, err := parseUint32("x", args[1])
	if err != nil {
		return err
	}
	y, err := parseUint32("y", args[2])
	if err != nil {
		return err
	}

	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.QueryCell(ctx, &tidesv1alpha1.QueryCellRequest{PlayerID: args[0], X: x, Y: y})
	if err != nil {
		return fmt.Errorf("failed to query cell: %w", err)
	}

	return printJSON(resp)
}
