package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"auctionscan/pkg/ui"
)

// Version information (set by build flags)
var (
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Root-level flags shared by every command
var (
	configFile  string
	logLevel    string
	historyPath string
)

var rootCmd = &cobra.Command{
	Use:   "auctionscan",
	Short: "Polling-driven auction house scanner",
	Long: `Auction Scan walks a paginated auction house listing page by page,
waits out the venue's query rate limit between pages, and records every
completed scan in a bounded history.

The venue is simulated: a deterministic listing population is generated
from a seed and served the way a live realm serves it, with owner names
trickling in over a few polls after each page query.

Running auctionscan with no arguments starts a scan.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep machine-readable output clean
		switch cmd.Name() {
		case "version", "help", "completion", "show":
		default:
			ui.PrintBanner()
		}
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .auctionscan.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history-path", "", "state file for the persisted scan history")

	rootCmd.SetVersionTemplate(fmt.Sprintf(`Auction Scan {{printf "version %%s" .Version}}
Go version: %s
OS/Arch:    %s/%s
`, runtime.Version(), runtime.GOOS, runtime.GOARCH))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// persistentFlags collects root-level overrides for the configuration
// load. Only flags the user actually set are merged.
func persistentFlags() map[string]interface{} {
	flags := make(map[string]interface{})
	if rootCmd.PersistentFlags().Changed("log-level") {
		flags["log-level"] = logLevel
	}
	if rootCmd.PersistentFlags().Changed("history-path") {
		flags["history-path"] = historyPath
	}
	return flags
}
