package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"auctionscan/internal/simulator"
	"auctionscan/pkg/config"
	"auctionscan/pkg/history"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/poll"
	"auctionscan/pkg/scanner"
	"auctionscan/pkg/storage"
	"auctionscan/pkg/store"
	"auctionscan/pkg/ui"
	"auctionscan/pkg/ui/tui"
)

var (
	scanTUI          bool
	scanListings     int
	scanSeed         int64
	scanItemsPerPage int
	scanOutputDir    string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a full scan of the simulated auction house",
	Long: `Scan walks every page of the auction house listing, waiting out the
query rate limit between pages, and records the completed scan in the
bounded history.

Progress, ETA and the result summary print to the terminal. Pass --tui
for a full-screen dashboard where scans are started and cancelled with
keypresses instead.`,
	Example: `  # Scan the default simulated population
  auctionscan scan

  # A bigger realm, reproducible population, exported results
  auctionscan scan --listings 5000 --seed 42 --output ./scans

  # Full-screen dashboard; press s to scan, q to quit
  auctionscan scan --tui`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanTUI, "tui", false, "full-screen terminal dashboard")
	scanCmd.Flags().IntVar(&scanListings, "listings", 0, "simulated listing count")
	scanCmd.Flags().Int64Var(&scanSeed, "seed", 0, "listing generation seed (0 means time-based)")
	scanCmd.Flags().IntVar(&scanItemsPerPage, "items-per-page", 0, "venue page size")
	scanCmd.Flags().StringVarP(&scanOutputDir, "output", "o", "", "export completed scans to this directory")

	// Bare invocations default to a scan, so plain `auctionscan`
	// behaves like pressing the scan button.
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}
		return runScan(cmd, args)
	}
}

// scanFlags collects the scan command's overrides on top of the
// root-level ones.
func scanFlags(cmd *cobra.Command) map[string]interface{} {
	flags := persistentFlags()
	if cmd.Flags().Changed("listings") {
		flags["listings"] = scanListings
	}
	if cmd.Flags().Changed("seed") {
		flags["seed"] = scanSeed
	}
	if cmd.Flags().Changed("items-per-page") {
		flags["items-per-page"] = scanItemsPerPage
	}
	if cmd.Flags().Changed("output") {
		flags["output"] = scanOutputDir
	}
	return flags
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, scanFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()

	venue, err := simulator.New(&cfg.Simulator, cfg.Scan.ItemsPerPage, log)
	if err != nil {
		return fmt.Errorf("failed to build simulated venue: %w", err)
	}

	kv, err := store.NewFileKV(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}

	if scanTUI {
		return runScanTUI(cfg, venue, kv)
	}
	return runScanConsole(cfg, venue, kv)
}

// runScanConsole starts one scan and drives it with a readiness poll
// until it completes, times out, or the user interrupts.
func runScanConsole(cfg *config.Config, venue *simulator.Venue, kv *store.FileKV) error {
	display := ui.NewScanDisplay(strings.EqualFold(cfg.Logging.Level, "debug"))

	var exporter *storage.Manager
	if cfg.Output.Enabled {
		var err error
		exporter, err = storage.NewManager(cfg.Output.BaseDirectory, cfg.Output.WriteSummary)
		if err != nil {
			return fmt.Errorf("failed to prepare output directory: %w", err)
		}
	}
	notifier := ui.NewNotifier(cfg.Notifications.NotificationType)

	ctrl, err := scanner.New(venue, kv, scanner.Options{
		ItemsPerPage:    cfg.Scan.ItemsPerPage,
		HistoryCapacity: cfg.History.Capacity,
		Events: scanner.Events{
			Started:  display.ScanStarted,
			Progress: display.ScanProgress,
			Completed: func(entry history.Entry) {
				display.ScanCompleted(entry)
				exportScan(exporter, display, entry)
				if cfg.Notifications.Enabled && cfg.Notifications.OnComplete {
					notifier.SendSuccess("Scan complete",
						fmt.Sprintf("%d listings captured in %s", entry.ItemCount, entry.Elapsed.Round(time.Second)))
				}
			},
			Cancelled: func(p scanner.Progress) {
				display.ScanCancelled(p)
				if cfg.Notifications.Enabled && cfg.Notifications.OnCancel {
					notifier.SendNotification("Scan cancelled",
						fmt.Sprintf("%d listings discarded", p.ItemsScanned))
				}
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build scan controller: %w", err)
	}
	if err := ctrl.OnLoad(); err != nil {
		return fmt.Errorf("failed to restore scanner state: %w", err)
	}

	ui.PrintInfo("Venue", fmt.Sprintf("%d simulated listings, %d per page", venue.ListingCount(), cfg.Scan.ItemsPerPage))
	ui.PrintInfo("History", kv.Path())
	if exporter != nil {
		ui.PrintInfo("Output", exporter.GetOutputDir())
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ctrl.Start(); err != nil {
		return err
	}

	maxPolls := 0
	if cfg.Scan.ScanTimeout > 0 {
		maxPolls = int(cfg.Scan.ScanTimeout / cfg.Scan.PollInterval)
	}

	err = poll.Do(func() bool {
		ctrl.ReadinessCheck()
		return !ctrl.IsScanning()
	}, &poll.Config{
		Interval: cfg.Scan.PollInterval,
		MaxPolls: maxPolls,
		OnPoll:   func(int) { display.Waiting() },
		Context:  ctx,
		Logger:   logger.GetLogger(),
	})
	if err != nil {
		// Cancel cooperatively; the cancellation display and
		// notification run through the event callbacks.
		_ = ctrl.Cancel()
		if errors.Is(err, poll.ErrExhausted) {
			return fmt.Errorf("scan timed out after %s", cfg.Scan.ScanTimeout)
		}
		return nil
	}
	return nil
}

// runScanTUI hands the terminal to the dashboard and drives readiness
// from a ticker beside it. Keypresses start and cancel scans.
func runScanTUI(cfg *config.Config, venue *simulator.Venue, kv *store.FileKV) error {
	var exporter *storage.Manager
	if cfg.Output.Enabled {
		var err error
		exporter, err = storage.NewManager(cfg.Output.BaseDirectory, cfg.Output.WriteSummary)
		if err != nil {
			return fmt.Errorf("failed to prepare output directory: %w", err)
		}
	}

	// Events only fire once a scan is started from inside the TUI, so
	// the closures can capture the variable before it is assigned.
	var terminal *tui.TUI

	ctrl, err := scanner.New(venue, kv, scanner.Options{
		ItemsPerPage:    cfg.Scan.ItemsPerPage,
		HistoryCapacity: cfg.History.Capacity,
		Events: scanner.Events{
			Started:  func(p scanner.Progress) { terminal.ScanStarted(p) },
			Progress: func(p scanner.Progress) { terminal.ScanProgress(p) },
			Completed: func(entry history.Entry) {
				terminal.ScanCompleted(entry)
				exportScan(exporter, terminal, entry)
			},
			Cancelled: func(p scanner.Progress) { terminal.ScanCancelled(p) },
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build scan controller: %w", err)
	}
	if err := ctrl.OnLoad(); err != nil {
		return fmt.Errorf("failed to restore scanner state: %w", err)
	}

	terminal = tui.NewTUI(ctrl, ctrl.History().Entries())

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Scan.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if ctrl.IsScanning() {
					ctrl.ReadinessCheck()
				}
			}
		}
	}()

	err = terminal.Start()
	close(done)
	if ctrl.IsScanning() {
		_ = ctrl.Cancel()
	}
	if err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}
	return nil
}

// exportScan writes a completed scan through the exporter, if one is
// configured, reporting the outcome on the monitor.
func exportScan(exporter *storage.Manager, monitor ui.Monitor, entry history.Entry) {
	if exporter == nil {
		return
	}
	if exporter.IsExported(entry.ID) {
		monitor.LogWarning("scan %s already exported", entry.ID)
		return
	}
	path, err := exporter.SaveScan(entry)
	if err != nil {
		monitor.LogError("failed to export scan: %v", err)
		return
	}
	monitor.LogSuccess("results written to %s", path)
}
