package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/webcheck/internal/config"
	"github.com/hamed0406/webcheck/internal/httpapi"
	"github.com/hamed0406/webcheck/internal/logging"
	"github.com/hamed0406/webcheck/internal/report"
)

var (
	flagAddr   string
	flagReport string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the latest report over HTTP",
	Long: `Serve the report written by the last run as a small read-only API.

Routes:
  GET /healthz      liveness probe
  GET /api/report   the full JSON report
  GET /api/summary  reachable/unreachable counts

The server reads the report file on every request, so re-running the
check updates the API without a restart. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides serve.addr)")
	serveCmd.Flags().StringVar(&flagReport, "report", "", "report file to serve (defaults to the output path)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Serve.Addr = flagAddr
	}
	reportPath := cfg.Output
	if cmd.Flags().Changed("report") {
		reportPath = flagReport
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogDir, zap.InfoLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("serving_report",
		zap.String("addr", cfg.Serve.Addr),
		zap.String("report", reportPath),
	)
	srv := httpapi.NewServer(logger, report.NewFileStore(reportPath))
	return srv.Serve(ctx, cfg.Serve.Addr)
}
