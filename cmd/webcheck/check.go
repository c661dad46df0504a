package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/webcheck/internal/config"
	"github.com/hamed0406/webcheck/internal/domain"
	"github.com/hamed0406/webcheck/internal/logging"
	"github.com/hamed0406/webcheck/internal/notify"
	"github.com/hamed0406/webcheck/internal/probe"
	"github.com/hamed0406/webcheck/internal/report"
	"github.com/hamed0406/webcheck/internal/runner"
	"github.com/hamed0406/webcheck/internal/targets"
)

var (
	flagConfig      string
	flagFile        string
	flagWorkers     int
	flagTimeout     int
	flagRetries     int
	flagOutput      string
	flagLogDir      string
	flagVerbose     bool
	flagDiagnoseDNS bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagFile, "file", "f", "", "file with one URL per line")
	f.IntVarP(&flagWorkers, "workers", "w", 4, "number of concurrent workers")
	f.IntVarP(&flagTimeout, "timeout", "t", 5, "per-attempt timeout in seconds")
	f.IntVarP(&flagRetries, "retries", "r", 0, "extra attempts per URL after a failure")
	f.StringVarP(&flagOutput, "output", "o", "status.json", "path of the JSON report")
	f.StringVar(&flagLogDir, "log-dir", "", "write logs to this directory instead of stderr")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log every check as it completes")
	f.BoolVar(&flagDiagnoseDNS, "diagnose-dns", false, "classify DNS state of failed targets after the run")
}

// resolveConfig layers flag values over the loaded configuration. Only
// flags the user actually set override file and environment values.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if fl.Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}
	if fl.Changed("retries") {
		cfg.Retries = flagRetries
	}
	if fl.Changed("output") {
		cfg.Output = flagOutput
	}
	if fl.Changed("log-dir") {
		cfg.LogDir = flagLogDir
	}
	if fl.Changed("diagnose-dns") {
		cfg.DiagnoseDNS = flagDiagnoseDNS
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level := zap.InfoLevel
	if flagVerbose {
		level = zap.DebugLevel
	}
	logger, err := logging.NewLogger(cfg.LogDir, level)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logger.Sync()

	list := targets.FromArgs(args)
	if flagFile != "" {
		fromFile, err := targets.FromFile(flagFile)
		if err != nil {
			// a bad file is a warning; arguments may still carry the run
			logger.Warn("url_file_unreadable", zap.String("path", flagFile), zap.Error(err))
		}
		list = append(list, fromFile...)
	}
	if len(list) == 0 {
		return targets.ErrNoTargets
	}

	checker := &probe.RetryChecker{
		Inner:   probe.NewHTTPChecker(cfg.Timeout(), version),
		Retries: cfg.Retries,
	}
	pool := runner.NewPool(logger, checker, report.NewLineReporter(os.Stdout), cfg.Workers)

	start := time.Now()
	results := pool.Run(cmd.Context(), list)

	if err := report.NewFileStore(cfg.Output).Save(results); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Printf("Results saved to %s\n", cfg.Output)

	reachable := 0
	for _, r := range results {
		if r.Success {
			reachable++
		}
	}
	logger.Info("run_complete",
		zap.Int("targets", len(list)),
		zap.Int("reachable", reachable),
		zap.Int("unreachable", len(results)-reachable),
		zap.Duration("took", time.Since(start)),
	)

	if cfg.DiagnoseDNS {
		diagnoseFailures(cmd.Context(), logger, results)
	}
	notifyRun(cmd.Context(), logger, cfg, results)

	return nil
}

// diagnoseFailures runs after the pool has joined, so probe workers never
// wait on the resolver.
func diagnoseFailures(ctx context.Context, logger *zap.Logger, results []domain.CheckResult) {
	for _, r := range results {
		if r.Success {
			continue
		}
		dns := probe.DiagnoseDNS(ctx, r.URL)
		logger.Warn("dns_check",
			zap.String("url", r.URL),
			zap.String("host", dns.Host),
			zap.String("class", string(dns.Class)),
			zap.String("cname", dns.CNAME),
			zap.Strings("nameservers", dns.Nameservers),
			zap.String("resolver_error", dns.ResolverError),
		)
	}
}

func notifyRun(ctx context.Context, logger *zap.Logger, cfg config.Config, results []domain.CheckResult) {
	down := 0
	for _, r := range results {
		if !r.Success {
			down++
		}
	}
	if down == 0 {
		return
	}
	slack := notify.NewSlack(cfg.SlackWebhook)
	if slack == nil {
		return
	}

	title, text := notify.RunSummary(results)
	if err := (notify.Multi{slack}).Send(ctx, title, text); err != nil {
		logger.Warn("notify_failed", zap.Error(err))
	}
}
