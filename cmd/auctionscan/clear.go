package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"auctionscan/pkg/config"
	"auctionscan/pkg/history"
	"auctionscan/pkg/store"
	"auctionscan/pkg/ui"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recorded scan history",
	Long: `Clear drops every retained scan from the history and removes the
persisted record from the state file. Exported scan files are not
touched.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "clear without confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
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

	count := hist.Len()
	if count == 0 {
		ui.PrintInfo("Scan history", "already empty")
		return nil
	}

	if !clearForce {
		ui.PrintWarning(fmt.Sprintf("This removes %d recorded scans from %s", count, kv.Path()))
		fmt.Print("Type 'yes' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := hist.Clear(); err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}

	scanNoun := "scans"
	if count == 1 {
		scanNoun = "scan"
	}
	ui.PrintSuccess(fmt.Sprintf("Cleared %d recorded %s", count, scanNoun))
	return nil
}
