package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/core/services"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for --user signed with JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(userID) == "" {
			return fmt.Errorf("--user is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}

		token, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, tokenTTL).GenerateToken(userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}
