package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-importer/core/config"
	"catalog-importer/core/database"
	"catalog-importer/core/loader"
	"catalog-importer/core/logger"
	"catalog-importer/core/middleware/auth"
	"catalog-importer/core/middleware/rayid"
	"catalog-importer/core/storage"

	"catalog-importer/feature/catalog"
	catalogmodels "catalog-importer/feature/catalog/models"
	"catalog-importer/feature/clients"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog import server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := catalogmodels.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
		}
		if err := clients.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate clients schema", zap.Error(err))
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket); err != nil {
				logg.Fatal("Failed to ensure storage bucket", zap.Error(err))
			}
		} else {
			logg.Info("Media mirroring disabled, keeping files locally only")
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, store, cfg.Storage.Bucket, logg, cfg.Import))
		mgr.Register(clients.NewFeature(db, logg, cfg.Clients))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
