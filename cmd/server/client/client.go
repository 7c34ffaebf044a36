// Package client provides test commands for the tides gRPC services
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the tides API",
	Long:  `Client commands allow you to test the tides API by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Voyage commands
	ClientCmd.AddCommand(registerPlayerCmd)
	ClientCmd.AddCommand(getPlayerCmd)
	ClientCmd.AddCommand(movePlayerCmd)
	ClientCmd.AddCommand(purchaseFuelCmd)
	ClientCmd.AddCommand(grantBaitCmd)
	ClientCmd.AddCommand(purchaseBaitCmd)

	// Inventory commands
	ClientCmd.AddCommand(getInventoryCmd)
	ClientCmd.AddCommand(equipItemCmd)
	ClientCmd.AddCommand(removeItemCmd)
	ClientCmd.AddCommand(queryCellCmd)

	// Fishing commands
	ClientCmd.AddCommand(initiateFishingCmd)
	ClientCmd.AddCommand(fulfillFishingCmd)
	ClientCmd.AddCommand(fishingStateCmd)
	ClientCmd.AddCommand(abandonFishingCmd)

	// Market commands
	ClientCmd.AddCommand(sellCatchCmd)
	ClientCmd.AddCommand(getMarketCmd)
	ClientCmd.AddCommand(listMarketsCmd)
	ClientCmd.AddCommand(listCatchesCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

func withConnection[T any](newClient func(grpc.ClientConnInterface) T) (T, func(), error) {
	conn, err := createConnection()
	if err != nil {
		var zero T
		return zero, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return newClient(conn), cleanup, nil
}

func createVoyageClient() (tidesv1alpha1.VoyageServiceClient, func(), error) {
	return withConnection(tidesv1alpha1.NewVoyageServiceClient)
}

func createInventoryClient() (tidesv1alpha1.InventoryServiceClient, func(), error) {
	return withConnection(tidesv1alpha1.NewInventoryServiceClient)
}

func createFishingClient() (tidesv1alpha1.FishingServiceClient, func(), error) {
	return withConnection(tidesv1alpha1.NewFishingServiceClient)
}

func createMarketClient() (tidesv1alpha1.MarketServiceClient, func(), error) {
	return withConnection(tidesv1alpha1.NewMarketServiceClient)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseUint64(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func parseUint32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return uint32(v), nil
}
