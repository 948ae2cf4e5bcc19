package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"auctionscan/pkg/config"
	"auctionscan/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scanner configuration",
	Long: `Config inspects and manages the auction scanner configuration.

Configuration is loaded from (in order of precedence): command line
flags, environment variables, .env files, the config file, and built-in
defaults.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Init writes a commented example configuration to .auctionscan.yaml in
the current directory, or to the path given with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

const exampleConfig = `# Auction scanner configuration
# Place this file at .auctionscan.yaml or ~/.config/auctionscan/config.yaml

scan:
  # Listings per page served by the venue
  items_per_page: 50
  # How often readiness is consulted while a scan waits
  poll_interval: 250ms
  # Give up on a scan that has not finished after this long
  scan_timeout: 2m

history:
  # Completed scans retained; the oldest is evicted beyond this
  capacity: 10
  # State file path (empty selects the per-user data directory)
  path: ""

simulator:
  # Listing population served by the simulated auction house
  listings: 237
  # Generation seed; 0 derives one from the clock
  seed: 0
  # Readiness consults before owner names fill in on a fresh page
  warmup_polls: 2
  # Query admission: token_bucket or sliding_window
  limiter: token_bucket
  queries_per_minute: 60
  burst: 5

output:
  # Export completed scans as JSON
  enabled: false
  base_directory: ./scans
  # Write a .meta.json summary sidecar next to each export
  write_summary: true

notifications:
  enabled: true
  on_complete: true
  on_cancel: false
  # terminal, desktop or none
  notification_type: terminal

logging:
  # debug, info, warn or error
  level: info
  # Optional log file (stderr when empty)
  file: ""
  # console or json
  format: console
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = ".auctionscan.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	ui.PrintSuccess(fmt.Sprintf("Created %s", path))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the file to adjust page size, history and output")
	fmt.Println("  2. Run 'auctionscan config validate' to check it")
	fmt.Println("  3. Run 'auctionscan scan' to record a scan")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, persistentFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	fmt.Println("# Effective configuration")
	fmt.Println("# Precedence: flags > environment > .env > config file > defaults")
	fmt.Println("# Durations render as nanoseconds")
	fmt.Print(string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return fmt.Errorf("config file not found at %s", configFile)
		}
		ui.PrintInfo("Config file", configFile)
	} else {
		ui.PrintInfo("Config file", "searching default locations")
	}

	cfg, err := config.Load(configFile, persistentFlags())
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	var warnings []string
	if cfg.Simulator.Listings == 0 {
		warnings = append(warnings, "simulator.listings is 0; scans will wait forever on an empty venue")
	}
	if cfg.Scan.PollInterval < 50*time.Millisecond {
		warnings = append(warnings, fmt.Sprintf("scan.poll_interval %s is aggressive for a live venue", cfg.Scan.PollInterval))
	}
	if cfg.Scan.ScanTimeout < cfg.Scan.PollInterval {
		warnings = append(warnings, "scan.scan_timeout is shorter than one poll interval")
	}
	if cfg.Scan.ItemsPerPage > 100 {
		warnings = append(warnings, fmt.Sprintf("scan.items_per_page %d is larger than live venues serve", cfg.Scan.ItemsPerPage))
	}
	if cfg.History.Capacity > 100 {
		warnings = append(warnings, fmt.Sprintf("history.capacity %d retains full listings per scan; the state file will grow large", cfg.History.Capacity))
	}
	if cfg.Output.Enabled {
		if err := os.MkdirAll(cfg.Output.BaseDirectory, 0755); err != nil {
			warnings = append(warnings, fmt.Sprintf("output.base_directory is not writable: %v", err))
		}
	}

	for _, w := range warnings {
		ui.PrintWarning(w)
	}
	if len(warnings) == 0 {
		ui.PrintSuccess("Configuration valid")
	} else {
		ui.PrintSuccess(fmt.Sprintf("Configuration valid with %d warnings", len(warnings)))
	}
	return nil
}
