package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"auctionscan/internal/simulator"
	"auctionscan/pkg/command"
	"auctionscan/pkg/config"
	"auctionscan/pkg/history"
	"auctionscan/pkg/logger"
	"auctionscan/pkg/metadata"
	"auctionscan/pkg/scanner"
	"auctionscan/pkg/store"
	"auctionscan/pkg/ui"
)

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"repl"},
	Short:   "Interactive command console for the scanner",
	Long: `Console reads scanner commands from standard input, one per line, and
prints the reply for each. It exposes the same textual surface a chat
box would:

  scan          start a scan, or cancel the one running
  cancel, stop  cancel the scan in progress
  clear         clear the scan history
  stats         show recorded scan totals

Anything unrecognized prints the command listing. Type quit to leave.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, persistentFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	venue, err := simulator.New(&cfg.Simulator, cfg.Scan.ItemsPerPage, logger.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to build simulated venue: %w", err)
	}

	kv, err := store.NewFileKV(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}

	ctrl, err := scanner.New(venue, kv, scanner.Options{
		ItemsPerPage:    cfg.Scan.ItemsPerPage,
		HistoryCapacity: cfg.History.Capacity,
		Events: scanner.Events{
			// Completion arrives from the poll goroutine while the
			// prompt is waiting; redraw it after the announcement.
			Completed: func(entry history.Entry) {
				fmt.Printf("\rScan complete: %s\n> ", metadata.FromEntry(entry).Describe())
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build scan controller: %w", err)
	}
	if err := ctrl.OnLoad(); err != nil {
		return fmt.Errorf("failed to restore scanner state: %w", err)
	}

	handler := command.NewHandler(ctrl)

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
	defer func() {
		close(done)
		if ctrl.IsScanning() {
			_ = ctrl.Cancel()
		}
	}()

	ui.PrintHighlight("Scanner console. Type 'help' for commands, 'quit' to leave.")
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "quit" || lower == "exit" {
			break
		}
		fmt.Println(handler.Execute(line))
	}
	return in.Err()
}
