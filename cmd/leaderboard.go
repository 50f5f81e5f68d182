package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print leaderboard rows matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, err := loadDataset(cmd)
		if err != nil {
			return err
		}

		session := viewmodel.NewSession(ds, defaultsFrom(cfg))
		for _, dim := range filter.Dimensions() {
			v, _ := cmd.Flags().GetString(string(dim))
			if v == "" {
				continue
			}
			if err := session.Apply(viewmodel.SetFilter{Dimension: dim, Value: v}); err != nil {
				return err
			}
		}
		printLeaderboard(cmd.OutOrStdout(), session.View().Leaderboard.Rows)
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().String("division", "", "Division filter (default Overall)")
	leaderboardCmd.Flags().String("district", "", "District filter (default Overall)")
	leaderboardCmd.Flags().String("subject", "", "Subject filter (default Overall)")
}
