package main

import (
	"fmt"
	"log/slog"

	"foodapp/internal/config"
	"foodapp/internal/infra/db"
	"foodapp/internal/infra/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel, "foodapp")

			gormDB, err := db.Connect(cfg)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			if err := db.Migrate(gormDB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			slog.Info("migration completed", slog.Int("models", len(db.Models())))
			return nil
		},
	}
}
