package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"auctionscan/pkg/config"
	"auctionscan/pkg/history"
	"auctionscan/pkg/metadata"
	"auctionscan/pkg/store"
	"auctionscan/pkg/ui"
)

var statsVerbose bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded scan history and totals",
	Long: `Stats lists the scans retained in the bounded history, newest first,
with the completion time, item count and duration of each. The most
recent scan also gets a full summary.`,
	Example: `  # Show the recorded history
  auctionscan stats

  # Full summary for every retained scan
  auctionscan stats --verbose`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVarP(&statsVerbose, "verbose", "v", false, "full summary for every retained scan")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, persistentFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	kv, err := store.NewFileKV(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}

	hist, err := history.New(kv, cfg.History.Capacity)
	if err != nil {
		return fmt.Errorf("failed to load scan history: %w", err)
	}

	entries := hist.Entries()
	if len(entries) == 0 {
		ui.PrintWarning("No scans recorded yet")
		fmt.Println("Run 'auctionscan scan' to record one.")
		return nil
	}

	scans, items := hist.Stats()
	ui.PrintHighlight(fmt.Sprintf("%d of %d history slots used, %s items recorded",
		scans, hist.Capacity(), humanize.Comma(int64(items))))
	fmt.Println()

	// Newest first, latest marked
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		marker := " "
		if i == len(entries)-1 {
			marker = ui.Green("▸")
		}
		fmt.Printf(" %s %s  %6s items  %8s  %s\n",
			marker,
			entry.CompletedAt.Local().Format("2006-01-02 15:04:05"),
			humanize.Comma(int64(entry.ItemCount)),
			entry.Elapsed.Round(time.Second),
			ui.Dim(humanize.RelTime(entry.CompletedAt, time.Now(), "ago", "from now")),
		)
		if statsVerbose {
			fmt.Println()
			fmt.Println(indent(metadata.FromEntry(entry).Render(), "   "))
		}
	}

	if !statsVerbose {
		if latest, ok := hist.Latest(); ok {
			fmt.Println()
			fmt.Print(metadata.FromEntry(latest).Render())
		}
	}

	fmt.Println()
	fmt.Printf("State file: %s\n", kv.Path())
	return nil
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
