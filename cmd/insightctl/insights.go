package main

import (
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Prioritized insights for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			asOf, err := resolveAsOf(e.cfg.DefaultTZ)
			if err != nil {
				return err
			}
			insights, err := e.insights.Generate(cmd.Context(), userID, asOf)
			if err != nil {
				return err
			}
			return printJSON(cmd, insights)
		})
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
