package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// @title EmergenSys Incident Board API
// @version 1.0
// @description Emergency incident intake, live dispatcher board, status tracking and export.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
