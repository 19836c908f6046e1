package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"riskmonitor/internal/checks"
	"riskmonitor/internal/config"
	"riskmonitor/internal/monitor"
	"riskmonitor/internal/report"
	"riskmonitor/internal/scoring"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher/httpfetcher"
	"riskmonitor/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCommand constructs the 'check' subcommand: a one-shot scan of a single
// URL that prints the risk report to stdout without touching the database.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url]",
		Short: "Scans a single URL once and prints its risk report",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			url, err := monitor.NormalizeURL(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid URL", zap.String("url", args[0]), zap.Error(err))
			}

			f := httpfetcher.New(httpfetcher.Options{
				Timeout:           cfg.Monitor.FetchTimeout,
				RequestsPerSecond: cfg.Monitor.FetchRPS,
			})

			res, err := f.Fetch(ctx, url)
			if err != nil {
				logger.Fatal(ctx, "could not fetch URL", zap.String("url", url), zap.Error(err))
			}

			findings := checks.Run(ctx, f, res)
			score, level := scoring.Score(findings)
			scan := domain.Scan{
				ID:        domain.ScanID(uuid.New()),
				ScannedAt: time.Now().UTC(),
				Findings:  findings,
				Score:     score,
				Level:     level,
				Summary:   scoring.Summary(level),
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report.Build(url, scan)); err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}
		},
	}

	return cmd
}
