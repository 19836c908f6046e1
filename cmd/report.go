package main

import (
	"context"
	"encoding/json"
	"os"

	"riskmonitor/internal/config"
	"riskmonitor/internal/report"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCommand constructs the 'report' subcommand that prints the risk
// report built from the latest stored scan of a website.
func reportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [website-id]",
		Short: "Prints the latest risk report of a monitored website",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			id, err := uuid.Parse(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid website id", zap.String("websiteID", args[0]), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			website, err := strg.WebsiteByID(ctx, domain.WebsiteID(id))
			if err != nil {
				logger.Fatal(ctx, "could not load website", zap.Error(err))
			}
			if website == nil {
				logger.Fatal(ctx, "website not found", zap.String("websiteID", args[0]))
			}

			scan, err := strg.LatestScan(ctx, website.ID)
			if err != nil {
				logger.Fatal(ctx, "could not load latest scan", zap.Error(err))
			}
			if scan == nil {
				logger.Fatal(ctx, "website has not been scanned yet", zap.String("websiteID", args[0]))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report.Build(website.URL, *scan)); err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}
		},
	}

	return cmd
}
