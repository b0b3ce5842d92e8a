package main

import (
	"github.com/shenikar/emergensys/internal/config"
	"github.com/shenikar/emergensys/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrationsSource string

var rootCmd = &cobra.Command{
	Use:           "emergensys",
	Short:         "emergensys is an emergency incident intake and dispatcher board",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsSource, "migrations", "file://migrations", "golang-migrate source URL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
}

// bootstrap загружает конфигурацию и создает логгер
func bootstrap() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}
