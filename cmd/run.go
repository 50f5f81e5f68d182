package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/reportcard/internal/app"
	"github.com/abhisek/reportcard/internal/logging"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

// runApp loads config, logging and the dataset, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	ds, err := loadDataset(cmd)
	if err != nil {
		logger.Error("dataset rejected", zap.Error(err))
		return err
	}

	session := viewmodel.NewSession(ds, defaultsFrom(cfg))
	logger.Info("starting",
		zap.String("version", version),
		zap.String("student", ds.Student().Name),
		zap.Int("quarter", cfg.UI.DefaultQuarter),
		zap.String("chart", string(cfg.Chart())))

	err = app.Run(session, logger)
	logger.Info("stopped", zap.Error(err))
	return err
}
