package main

import (
	"secondhand/market-service/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			if err := repository.RunMigrations(cfg.Database.DSN()); err != nil {
				return err
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
}
