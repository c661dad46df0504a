// Package main is the entry point for the webcheck CLI.
//
// webcheck probes a list of URLs concurrently, prints one line per result
// as checks finish, and writes a JSON report when the run completes.
//
// Usage:
//
//	webcheck https://example.com https://golang.org
//	webcheck --file urls.txt --workers 8 --timeout 3 --retries 2
//	webcheck serve        # serve the latest report over HTTP
//	webcheck validate     # print and check the resolved configuration
//	webcheck version      # show version info
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamed0406/webcheck/internal/targets"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var rootCmd = &cobra.Command{
	Use:   "webcheck [url ...]",
	Short: "Check a list of URLs concurrently and report their status",
	Long: `webcheck sends one GET request to every URL you give it, using a fixed
pool of workers, and tells you which endpoints answered.

Any HTTP response counts as reachable, a 500 included: the question is
"does the endpoint answer", not "is the answer healthy". Results stream
to stdout in completion order while the run is going; the full outcome
is written as a JSON report (status.json by default) at the end.

URLs come from the arguments, from --file (one URL per line, # comments
allowed), or both. Per-URL failures never abort the run.`,
	Example: `  webcheck https://example.com https://golang.org
  webcheck --file urls.txt --workers 8 --retries 2
  webcheck --timeout 3 --output /tmp/report.json https://slow.example.com`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webcheck %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to webcheck.yaml (optional)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, targets.ErrNoTargets) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}
}
