package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/stockkeeper/core/cmd/inventory/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockkeeper",
		Short: "StockKeeper inventory ledger",
		Long:  `StockKeeper tracks per-item stock quantities, persists them to a JSON file, and reports low-stock items.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewQuantityCommand())
	rootCmd.AddCommand(commands.NewLowStockCommand())
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
