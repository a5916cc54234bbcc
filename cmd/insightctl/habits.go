package main

import (
	"github.com/spf13/cobra"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/domain"
)

var habitsWindow int

type habitRow struct {
	domain.HabitPattern
	Severity string `json:"severity"`
}

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Habit patterns over a trailing window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd.Context(), func(e *engine) error {
			asOf, err := resolveAsOf(e.cfg.DefaultTZ)
			if err != nil {
				return err
			}
			patterns, err := e.habits.Detect(cmd.Context(), userID, habitsWindow, asOf)
			if err != nil {
				return err
			}
			rows := make([]habitRow, 0, len(patterns))
			for _, p := range patterns {
				rows = append(rows, habitRow{HabitPattern: p, Severity: domain.Severity(p.FrequencyScore)})
			}
			return printJSON(cmd, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(habitsCmd)
	habitsCmd.Flags().IntVar(&habitsWindow, "window", 30, "Window in days (1-366)")
}
