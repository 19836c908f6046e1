package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"riskmonitor/internal/api"
	"riskmonitor/internal/config"
	"riskmonitor/internal/monitor"
	"riskmonitor/internal/scheduler"
	"riskmonitor/internal/worker"
	"riskmonitor/pkg/fetcher/httpfetcher"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/metrics"
	"riskmonitor/pkg/notifier"
	"riskmonitor/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the ops HTTP server in the background and returns a
// function that shuts it down.
func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) func(ctx context.Context) {
	server := api.NewServer(api.Deps{Storage: strg}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// monitorCommand constructs the 'monitor' subcommand: the long-running
// process hosting the scan scheduler, the queue workers and the ops HTTP
// server.
func monitorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Starts the scan scheduler, background workers and ops HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			mon, err := metrics.NewMonitor(mp.Meter("riskmonitor"))
			if err != nil {
				logger.Fatal(ctx, "could not create metrics monitor", zap.Error(err))
			}

			pipeline := monitor.New(strg,
				httpfetcher.New(httpfetcher.Options{
					Timeout:           cfg.Monitor.FetchTimeout,
					RequestsPerSecond: cfg.Monitor.FetchRPS,
				}),
				notifier.NewLog(),
				mon,
				monitor.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool,
				worker.NewWebsiteScanWorker(strg, pipeline),
				cfg.Monitor.MaxConcurrentScans)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, strg)

			sched := scheduler.New(strg, scheduler.NewOptions(cfg))
			go sched.Run(ctx)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
