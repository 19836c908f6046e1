package main

import (
	"context"

	"riskmonitor/internal/config"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deactivateCommand constructs the 'deactivate' subcommand that excludes a
// website from future scheduled scans. Its stored scan history is kept.
func deactivateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deactivate [website-id]",
		Short: "Excludes a website from scheduled risk monitoring",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			websiteID, err := uuid.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid website id", zap.String("websiteID", args[0]), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			website, err := strg.UpdateWebsiteStatus(ctx, domain.WebsiteID(websiteID), domain.WebsiteStatusInactive)
			if err != nil {
				logger.Fatal(ctx, "could not update website status", zap.Error(err))
			}
			if website == nil {
				logger.Fatal(ctx, "website not found", zap.String("websiteID", args[0]))
			}

			logger.Info(ctx, "website deactivated",
				zap.String("websiteID", args[0]),
				zap.String("url", website.URL))
		},
	}

	return cmd
}
