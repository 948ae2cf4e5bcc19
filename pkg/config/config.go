package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the auction scanner
type Config struct {
	// Scan loop settings
	Scan ScanConfig `yaml:"scan" json:"scan"`

	// Scan history settings
	History HistoryConfig `yaml:"history" json:"history"`

	// Simulated venue settings (used when no live host drives the scanner)
	Simulator SimulatorConfig `yaml:"simulator" json:"simulator"`

	// Result export settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Notification preferences
	Notifications NotificationConfig `yaml:"notifications" json:"notifications"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ScanConfig holds scan loop configuration
type ScanConfig struct {
	ItemsPerPage int           `yaml:"items_per_page" json:"items_per_page"`
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval"`
	ScanTimeout  time.Duration `yaml:"scan_timeout" json:"scan_timeout"`
}

// HistoryConfig holds scan history configuration
type HistoryConfig struct {
	Capacity int    `yaml:"capacity" json:"capacity"`
	Path     string `yaml:"path" json:"path"`
}

// SimulatorConfig holds the simulated venue configuration
type SimulatorConfig struct {
	Listings         int    `yaml:"listings" json:"listings"`
	Seed             int64  `yaml:"seed" json:"seed"`
	WarmupPolls      int    `yaml:"warmup_polls" json:"warmup_polls"`
	Limiter          string `yaml:"limiter" json:"limiter"`
	QueriesPerMinute int    `yaml:"queries_per_minute" json:"queries_per_minute"`
	Burst            int    `yaml:"burst" json:"burst"`
}

// OutputConfig holds result export configuration
type OutputConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
	WriteSummary  bool   `yaml:"write_summary" json:"write_summary"`
}

// NotificationConfig holds notification preferences
type NotificationConfig struct {
	Enabled          bool   `yaml:"enabled" json:"enabled"`
	OnComplete       bool   `yaml:"on_complete" json:"on_complete"`
	OnCancel         bool   `yaml:"on_cancel" json:"on_cancel"`
	NotificationType string `yaml:"notification_type" json:"notification_type"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	File   string `yaml:"file" json:"file"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			ItemsPerPage: 50,
			PollInterval: 250 * time.Millisecond,
			ScanTimeout:  2 * time.Minute,
		},
		History: HistoryConfig{
			Capacity: 10,
			Path:     "", // empty means the per-OS data directory
		},
		Simulator: SimulatorConfig{
			Listings:         237,
			Seed:             0, // 0 means time-based
			WarmupPolls:      2,
			Limiter:          "token_bucket",
			QueriesPerMinute: 60,
			Burst:            5,
		},
		Output: OutputConfig{
			Enabled:       false,
			BaseDirectory: "./scans",
			WriteSummary:  true,
		},
		Notifications: NotificationConfig{
			Enabled:          true,
			OnComplete:       true,
			OnCancel:         false,
			NotificationType: "terminal",
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   "",
			Format: "console",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	// Scan loop
	if ipp := os.Getenv("AUCTIONSCAN_ITEMS_PER_PAGE"); ipp != "" {
		var val int
		fmt.Sscanf(ipp, "%d", &val)
		if val > 0 {
			c.Scan.ItemsPerPage = val
		}
	}
	if interval := os.Getenv("AUCTIONSCAN_POLL_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil && d > 0 {
			c.Scan.PollInterval = d
		}
	}

	// History
	if path := os.Getenv("AUCTIONSCAN_HISTORY_PATH"); path != "" {
		c.History.Path = path
	}

	// Simulator
	if listings := os.Getenv("AUCTIONSCAN_LISTINGS"); listings != "" {
		var val int
		fmt.Sscanf(listings, "%d", &val)
		if val > 0 {
			c.Simulator.Listings = val
		}
	}
	if seed := os.Getenv("AUCTIONSCAN_SEED"); seed != "" {
		var val int64
		fmt.Sscanf(seed, "%d", &val)
		c.Simulator.Seed = val
	}

	// Output directory
	if outputDir := os.Getenv("AUCTIONSCAN_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
		c.Output.Enabled = true
	}

	// Notifications
	if notifEnabled := os.Getenv("AUCTIONSCAN_NOTIFICATIONS_ENABLED"); notifEnabled != "" {
		c.Notifications.Enabled = strings.ToLower(notifEnabled) == "true"
	}

	// Logging level
	if logLevel := os.Getenv("AUCTIONSCAN_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".auctionscan.yaml",
		".auctionscan.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "auctionscan", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "auctionscan", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".auctionscan.yaml"),
		filepath.Join(os.Getenv("HOME"), ".auctionscan.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Validate scan loop settings
	if c.Scan.ItemsPerPage <= 0 {
		errs = append(errs, errors.New("items per page must be positive"))
	}
	if c.Scan.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}
	if c.Scan.ScanTimeout <= 0 {
		errs = append(errs, errors.New("scan timeout must be positive"))
	}

	// Validate history settings
	if c.History.Capacity <= 0 {
		errs = append(errs, errors.New("history capacity must be positive"))
	}

	// Validate simulator settings
	if c.Simulator.Listings < 0 {
		errs = append(errs, errors.New("simulated listings cannot be negative"))
	}
	if c.Simulator.WarmupPolls < 0 {
		errs = append(errs, errors.New("warmup polls cannot be negative"))
	}
	validLimiters := map[string]bool{
		"token_bucket": true, "sliding_window": true,
	}
	if !validLimiters[strings.ToLower(c.Simulator.Limiter)] {
		errs = append(errs, errors.New("invalid limiter type"))
	}
	if c.Simulator.QueriesPerMinute <= 0 {
		errs = append(errs, errors.New("queries per minute must be positive"))
	}
	if c.Simulator.Burst <= 0 {
		errs = append(errs, errors.New("burst size must be positive"))
	}

	// Validate output settings
	if c.Output.Enabled && c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required when export is enabled"))
	}

	// Validate logging
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}
	validLogFormats := map[string]bool{
		"console": true, "json": true,
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, errors.New("invalid log format"))
	}

	// Validate notification type
	validNotifTypes := map[string]bool{
		"terminal": true, "desktop": true, "none": true,
	}
	if !validNotifTypes[strings.ToLower(c.Notifications.NotificationType)] {
		errs = append(errs, errors.New("invalid notification type"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if ipp, ok := flags["items-per-page"].(int); ok && ipp > 0 {
		c.Scan.ItemsPerPage = ipp
	}
	if listings, ok := flags["listings"].(int); ok && listings > 0 {
		c.Simulator.Listings = listings
	}
	if seed, ok := flags["seed"].(int64); ok && seed != 0 {
		c.Simulator.Seed = seed
	}
	if historyPath, ok := flags["history-path"].(string); ok && historyPath != "" {
		c.History.Path = historyPath
	}
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
		c.Output.Enabled = true
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".env"))
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".auctionscan.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
