package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"society-service/internal/app/console"
	"society-service/internal/domain/services/container"
	"society-service/internal/infrastructure/config"
	"society-service/internal/infrastructure/database"
	Logger "society-service/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "society",
		Short: "Residential society management console",
		Long:  "Console-driven residential society management: resident registration and approval, complaints, delivery skips, amenity bookings, polls and announcements.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			services := container.NewServiceContainer(pool.GetDB(), config.GetConfig())
			console.New(services, os.Stdin, os.Stdout).Run()
			return nil
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Run schema migration and admin seeding, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			Logger.Info("migration complete")
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging, opens the database pool and
// brings the schema and admin seed up to date.
func bootstrap() (*database.ConnectionPool, error) {
	// Environment variables may already be set without a .env file
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env file")
	}

	cfg := config.GetConfig()

	if err := Logger.SetupLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}

	if err := pool.HealthCheck(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database health check: %w", err)
	}

	if err := database.Migrate(pool.GetDB()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	if err := pool.WithTransaction(func(tx *gorm.DB) error {
		return database.SeedAdmin(tx, cfg)
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool ready: open=%v idle=%v", stats["open_connections"], stats["idle"])
	}

	return pool, nil
}
