package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/repository"
	"github.com/shenikar/emergensys/pkg/postgres"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored incident as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer dbpool.Close()

		// кэш снимков здесь не нужен, читаем хранилище напрямую
		repo := repository.NewIncidentRepository(dbpool, nil, 0)
		incidents, err := repo.ListAll(ctx)
		if err != nil {
			return err
		}
		view := dashboard.Filter(incidents, dashboard.FilterConfig{Status: dashboard.StatusAll})

		var w io.Writer = cmd.OutOrStdout()
		name := exportOut
		if name == "" {
			name = dashboard.ExportFileName(time.Now())
		}
		if name != "-" {
			f, err := os.Create(name)
			if err != nil {
				return fmt.Errorf("could not create export file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := dashboard.WriteCSV(w, view.Filtered, loc); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"count": len(view.Filtered), "file": name}).Info("Incidents exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", `output file, "-" for stdout (default incidents-export-<timestamp>.csv)`)
}
