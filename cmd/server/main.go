// Package main is the entry point for the tides gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tides-game/tides-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tides-api",
	Short: "Tides gRPC Server",
	Long:  `Tides provides a gRPC interface for sailing, fishing and selling catches on a hex ocean.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
