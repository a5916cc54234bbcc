package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	userID  string
	asOfArg string
	tzArg   string
)

var rootCmd = &cobra.Command{
	Use:   "insightctl",
	Short: "insightctl runs the nutrition analytics engine against the configured store",
	Long: "insightctl computes insights, habit patterns and metric correlations for a user " +
		"directly from the log store, and mints API tokens. Output is JSON.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to a SQLite database (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User id")
	rootCmd.PersistentFlags().StringVar(&asOfArg, "as-of", "", "RFC3339 instant or YYYY-MM-DD (default now)")
	rootCmd.PersistentFlags().StringVar(&tzArg, "tz", "", "IANA timezone (default DEFAULT_TZ)")
}
