package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamed0406/webcheck/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Resolve the configuration and check it",
	Long: `Resolve configuration from defaults, webcheck.yaml and WEBCHECK_*
environment variables, validate it, and print the effective values.
Exits non-zero when the configuration is unusable.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(format string, a ...any) { fmt.Printf("✔ "+format+"\n", a...) }

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ok("workers=%d", cfg.Workers)
	ok("timeout=%s per attempt", cfg.Timeout())
	ok("retries=%d", cfg.Retries)
	ok("output=%s", cfg.Output)
	ok("serve.addr=%s", cfg.Serve.Addr)

	if cfg.Workers > 64 {
		warn(fmt.Sprintf("workers=%d is a lot of concurrent requests; make sure the targets can take it", cfg.Workers))
	}
	if cfg.LogDir == "" {
		warn("log_dir empty; logs go to stderr")
	} else {
		ok("log_dir=%s", cfg.LogDir)
	}
	if cfg.SlackWebhook == "" {
		warn("slack_webhook empty; no notifications will be sent")
	} else {
		ok("slack_webhook present")
	}
	if cfg.DiagnoseDNS {
		ok("diagnose_dns on")
	}

	ok("configuration valid")
	return nil
}
