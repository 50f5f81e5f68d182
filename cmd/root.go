package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/reportcard/internal/config"
	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

var rootCmd = &cobra.Command{
	Use:   "reportcard",
	Short: "Student report card dashboard",
	Long:  "reportcard is a terminal dashboard for a student's quarterly report: progress, subjects, chapters and the class leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config TOML (overrides REPORTCARD_CONFIG env var)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to an alternative report JSON (default: built-in fixtures)")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config from --config, falling back to the default
// path resolution.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadDataset returns the --dataset file, or the embedded fixtures.
func loadDataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	path, _ := cmd.Flags().GetString("dataset")
	if path == "" {
		return dataset.Default(), nil
	}
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

// defaultsFrom maps the [ui] config section onto view-model defaults.
func defaultsFrom(cfg config.Config) viewmodel.Defaults {
	return viewmodel.Defaults{
		Quarter:           cfg.UI.DefaultQuarter,
		Chart:             cfg.Chart(),
		CollapsedSubjects: cfg.UI.CollapsedSubjects,
	}
}
