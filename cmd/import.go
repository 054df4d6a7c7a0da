package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"catalog-importer/core/config"
	"catalog-importer/core/database"
	"catalog-importer/core/logger"
	"catalog-importer/core/storage"
	"catalog-importer/feature/catalog"
	"catalog-importer/feature/catalog/feed"
	catalogmodels "catalog-importer/feature/catalog/models"
	"catalog-importer/feature/clients"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// importCmd groups the offline import commands
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Apply a feed page from a local JSON file",
}

var importCatalogCmd = &cobra.Command{
	Use:   "catalog [file]",
	Short: "Apply a catalog feed page",
	Long:  `Reads one catalog feed page from a JSON file and applies it to the store, printing the resulting id mappings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCatalogImport(cmd.Context(), args[0])
	},
}

var importClientsCmd = &cobra.Command{
	Use:   "clients [file]",
	Short: "Apply a client directory page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runClientsImport(cmd.Context(), args[0])
	},
}

func init() {
	importCmd.AddCommand(importCatalogCmd)
	importCmd.AddCommand(importClientsCmd)
	RootCmd.AddCommand(importCmd)
}

func runCatalogImport(ctx context.Context, file string) {
	cfg, logg, db := importBootstrap()

	if err := catalogmodels.Migrate(db); err != nil {
		logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
	}

	var store storage.Client
	if cfg.Storage.Enabled {
		s, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := storage.EnsureBucket(ctx, s, cfg.Storage.Bucket); err != nil {
			logg.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		store = s
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		logg.Fatal("Failed to read feed file", zap.Error(err))
	}
	payload := new(feed.Payload)
	if err := json.Unmarshal(raw, payload); err != nil {
		logg.Fatal("Failed to decode feed file", zap.Error(err))
	}

	svc := catalog.NewService(db, store, cfg.Storage.Bucket, logg, cfg.Import)
	result, err := svc.Import(ctx, payload)
	if err != nil {
		logg.Fatal("Catalog import failed", zap.Error(err))
	}

	printJSON(result)
}

func runClientsImport(ctx context.Context, file string) {
	cfg, logg, db := importBootstrap()

	if err := clients.Migrate(db); err != nil {
		logg.Fatal("Failed to migrate clients schema", zap.Error(err))
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		logg.Fatal("Failed to read directory file", zap.Error(err))
	}
	dir := new(clients.Directory)
	if err := json.Unmarshal(raw, dir); err != nil {
		logg.Fatal("Failed to decode directory file", zap.Error(err))
	}

	svc := clients.NewService(db, logg, cfg.Clients)
	result, err := svc.Import(ctx, dir)
	if err != nil {
		logg.Fatal("Clients import failed", zap.Error(err))
	}

	printJSON(result)
}

func importBootstrap() (*config.Config, *zap.Logger, *gorm.DB) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	return cfg, logg, db
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(out))
}
