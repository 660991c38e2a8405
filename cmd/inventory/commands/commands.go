package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stockkeeper/core/internal/adapters/audit"
	"github.com/stockkeeper/core/internal/adapters/repository"
	"github.com/stockkeeper/core/internal/application/services"
	"github.com/stockkeeper/core/internal/infrastructure/config"
	"github.com/stockkeeper/core/internal/infrastructure/logger"
	"github.com/stockkeeper/core/internal/infrastructure/metrics"
	"github.com/stockkeeper/core/internal/ports"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add stock for an item",
		Long:  "Increase an item's quantity in the ledger, creating the entry if it does not exist",
		Run: func(cmd *cobra.Command, args []string) {
			item, _ := cmd.Flags().GetString("item")
			qty, _ := cmd.Flags().GetInt("qty")
			file, _ := cmd.Flags().GetString("file")

			runMutation(file, func(ctx context.Context, svc ports.InventoryService, cfg *config.Config) error {
				return svc.AddStock(ctx, ports.AddStockRequest{Item: item, Quantity: qty})
			})
		},
	}

	addCmd.Flags().String("item", "", "Item name (required)")
	addCmd.Flags().Int("qty", 0, "Quantity to add")
	addCmd.Flags().String("file", "", "Inventory file path (defaults to configuration)")

	return addCmd
}

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove stock for an item",
		Long:  "Decrease an item's quantity in the ledger, deleting the entry when it reaches zero",
		Run: func(cmd *cobra.Command, args []string) {
			item, _ := cmd.Flags().GetString("item")
			qty, _ := cmd.Flags().GetInt("qty")
			file, _ := cmd.Flags().GetString("file")

			runMutation(file, func(ctx context.Context, svc ports.InventoryService, cfg *config.Config) error {
				return svc.RemoveStock(ctx, ports.RemoveStockRequest{Item: item, Quantity: qty})
			})
		},
	}

	removeCmd.Flags().String("item", "", "Item name (required)")
	removeCmd.Flags().Int("qty", 0, "Quantity to remove")
	removeCmd.Flags().String("file", "", "Inventory file path (defaults to configuration)")

	return removeCmd
}

// NewQuantityCommand creates the quantity command
func NewQuantityCommand() *cobra.Command {
	quantityCmd := &cobra.Command{
		Use:   "quantity",
		Short: "Print an item's current quantity",
		Run: func(cmd *cobra.Command, args []string) {
			item, _ := cmd.Flags().GetString("item")
			file, _ := cmd.Flags().GetString("file")

			runQuery(file, func(ctx context.Context, svc ports.InventoryService, cfg *config.Config) error {
				qty, err := svc.GetQuantity(ctx, item)
				if err != nil {
					return err
				}
				fmt.Printf("%s -> %d\n", item, qty)
				return nil
			})
		},
	}

	quantityCmd.Flags().String("item", "", "Item name (required)")
	quantityCmd.Flags().String("file", "", "Inventory file path (defaults to configuration)")

	return quantityCmd
}

// NewLowStockCommand creates the low-stock command
func NewLowStockCommand() *cobra.Command {
	lowStockCmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List items below the low-stock threshold",
		Run: func(cmd *cobra.Command, args []string) {
			threshold, _ := cmd.Flags().GetInt("threshold")
			file, _ := cmd.Flags().GetString("file")

			runQuery(file, func(ctx context.Context, svc ports.InventoryService, cfg *config.Config) error {
				if !cmd.Flags().Changed("threshold") {
					threshold = cfg.Inventory.LowStockThreshold
				}
				low, err := svc.ListLowStock(ctx, threshold)
				if err != nil {
					return err
				}
				for _, name := range low {
					fmt.Println(name)
				}
				return nil
			})
		},
	}

	lowStockCmd.Flags().Int("threshold", 5, "Quantity threshold")
	lowStockCmd.Flags().String("file", "", "Inventory file path (defaults to configuration)")

	return lowStockCmd
}

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print a report of all items and quantities",
		Run: func(cmd *cobra.Command, args []string) {
			file, _ := cmd.Flags().GetString("file")

			runQuery(file, func(ctx context.Context, svc ports.InventoryService, cfg *config.Config) error {
				return svc.Report(ctx, os.Stdout)
			})
		},
	}

	reportCmd.Flags().String("file", "", "Inventory file path (defaults to configuration)")

	return reportCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print StockKeeper version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			fmt.Printf("%s %s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

func buildService(file string) (ports.InventoryService, *config.Config, *logger.Logger, string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	} else {
		m = metrics.New(prometheus.NewRegistry())
	}

	repo := repository.NewLedgerRepository(appLogger.WithComponent("repository"))
	svc := services.NewInventoryService(repo, appLogger, m, audit.NewLoggerSink(appLogger))

	path := cfg.Inventory.FilePath
	if file != "" {
		path = file
	}

	return svc, cfg, appLogger, path
}

func runMutation(file string, op func(context.Context, ports.InventoryService, *config.Config) error) {
	svc, cfg, appLogger, path := buildService(file)
	defer appLogger.Close()

	ctx := context.Background()
	svc.Load(ctx, path)

	if err := op(ctx, svc, cfg); err != nil {
		appLogger.Fatalw("Operation failed", "error", err)
	}

	if err := svc.Save(ctx, path); err != nil {
		appLogger.Fatalw("Failed to persist inventory", "error", err)
	}
}

func runQuery(file string, op func(context.Context, ports.InventoryService, *config.Config) error) {
	svc, cfg, appLogger, path := buildService(file)
	defer appLogger.Close()

	ctx := context.Background()
	svc.Load(ctx, path)

	if err := op(ctx, svc, cfg); err != nil {
		appLogger.Fatalw("Operation failed", "error", err)
	}
}
