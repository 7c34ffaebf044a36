package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tides-game/tides-api/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect memory backend snapshots",
}

var snapshotInspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Print a summary of a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotInspect,
}

func init() {
	snapshotCmd.AddCommand(snapshotInspectCmd)
}

func runSnapshotInspect(_ *cobra.Command, args []string) error {
	snap, err := snapshot.Read(args[0])
	if err != nil {
		return err
	}

	summary := snapshot.Summarize(snap)
	fmt.Printf("Snapshot %s\n", args[0])
	fmt.Printf("  Version:          %d\n", summary.Version)
	fmt.Printf("  Saved at:         %s\n", time.Unix(summary.SavedAt, 0).UTC().Format(time.RFC3339))
	fmt.Printf("  Players:          %d\n", summary.Players)
	fmt.Printf("  Inventories:      %d\n", summary.Inventories)
	fmt.Printf("  Fishing requests: %d\n", summary.FishingRequests)
	fmt.Printf("  Markets:          %d\n", summary.Markets)
	fmt.Printf("  Catches:          %d\n", summary.Catches)
	return nil
}
