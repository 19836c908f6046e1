package main

import (
	"context"

	"riskmonitor/internal/config"
	"riskmonitor/internal/monitor"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// registerCommand constructs the 'register' subcommand that adds a website to
// the monitored set. The URL is normalized before storage so the per-user
// uniqueness constraint deduplicates equivalent spellings.
func registerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [user-id] [url]",
		Short: "Registers a website for scheduled risk monitoring",
		Args:  cobra.ExactArgs(2), //nolint: mnd
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			userID, err := uuid.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.String("userID", args[0]), zap.Error(err))
			}

			url, err := monitor.NormalizeURL(args[1])
			if err != nil {
				logger.Fatal(ctx, "invalid URL", zap.String("url", args[1]), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			websites, err := strg.StoreWebsites(ctx, domain.Website{
				UserID: domain.UserID(userID),
				URL:    url,
				Status: domain.WebsiteStatusActive,
			})
			if err != nil {
				logger.Fatal(ctx, "could not store website", zap.Error(err))
			}

			logger.Info(ctx, "website registered",
				zap.String("websiteID", uuid.UUID(websites[0].ID).String()),
				zap.String("url", url))
		},
	}

	return cmd
}
