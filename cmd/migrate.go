package main

import (
	"github.com/shenikar/emergensys/pkg/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}

		log.Info("Running database migrations...")
		version, err := postgres.Migrate(cfg.DatabaseURL, migrationsSource)
		if err != nil {
			return err
		}
		log.WithField("version", version).Info("Database migrations applied successfully")
		return nil
	},
}
