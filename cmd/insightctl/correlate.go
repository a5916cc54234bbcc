package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var (
	correlateWindow int
	correlateAll    bool
)

type correlationRow struct {
	domain.MetricCorrelation
	Strength string `json:"strength"`
}

var correlateCmd = &cobra.Command{
	Use:   "correlate [metric-a metric-b]",
	Short: "Pearson correlation between two daily metrics, or the default pairs with --all",
	Args: func(cmd *cobra.Command, args []string) error {
		if correlateAll {
			return cobra.NoArgs(cmd, args)
		}
		if len(args) != 2 {
			return fmt.Errorf("expected two metric names (one of %v)", domain.AllMetrics)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			asOf, err := resolveAsOf(e.cfg.DefaultTZ)
			if err != nil {
				return err
			}

			if correlateAll {
				all, err := e.correlations.CorrelateAll(cmd.Context(), userID, correlateWindow, asOf)
				if err != nil {
					return err
				}
				rows := make([]correlationRow, 0, len(all))
				for _, c := range all {
					rows = append(rows, correlationRow{MetricCorrelation: c, Strength: domain.CorrelationStrength(c.CorrelationCoefficient)})
				}
				return printJSON(cmd, rows)
			}

			c, err := e.correlations.Correlate(cmd.Context(), userID, args[0], args[1], correlateWindow, asOf)
			var insufficient *domain.InsufficientDataError
			if errors.As(err, &insufficient) {
				return printJSON(cmd, map[string]any{
					"status":      "insufficient_data",
					"sample_size": insufficient.SampleSize,
					"required":    insufficient.Required,
				})
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, correlationRow{MetricCorrelation: *c, Strength: domain.CorrelationStrength(c.CorrelationCoefficient)})
		})
	},
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().IntVar(&correlateWindow, "window", 30, "Window in days (1-366)")
	correlateCmd.Flags().BoolVar(&correlateAll, "all", false, "Correlate the default metric pairs")
}
