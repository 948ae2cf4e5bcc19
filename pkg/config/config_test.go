package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	// Scan defaults
	assert.Equal(t, 50, cfg.Scan.ItemsPerPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Scan.PollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Scan.ScanTimeout)

	// History defaults
	assert.Equal(t, 10, cfg.History.Capacity)
	assert.Empty(t, cfg.History.Path)

	// Simulator defaults
	assert.Equal(t, 237, cfg.Simulator.Listings)
	assert.Equal(t, int64(0), cfg.Simulator.Seed)
	assert.Equal(t, 2, cfg.Simulator.WarmupPolls)
	assert.Equal(t, "token_bucket", cfg.Simulator.Limiter)
	assert.Equal(t, 60, cfg.Simulator.QueriesPerMinute)
	assert.Equal(t, 5, cfg.Simulator.Burst)

	// Output defaults
	assert.False(t, cfg.Output.Enabled)
	assert.Equal(t, "./scans", cfg.Output.BaseDirectory)
	assert.True(t, cfg.Output.WriteSummary)

	// Notification defaults
	assert.True(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.Notifications.OnComplete)
	assert.False(t, cfg.Notifications.OnCancel)
	assert.Equal(t, "terminal", cfg.Notifications.NotificationType)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnv(t *testing.T) {
	envVars := map[string]string{
		"AUCTIONSCAN_ITEMS_PER_PAGE":        "25",
		"AUCTIONSCAN_POLL_INTERVAL":         "100ms",
		"AUCTIONSCAN_HISTORY_PATH":          "/tmp/scan-history.json",
		"AUCTIONSCAN_LISTINGS":              "500",
		"AUCTIONSCAN_SEED":                  "42",
		"AUCTIONSCAN_OUTPUT_DIR":            "/tmp/test-scans",
		"AUCTIONSCAN_NOTIFICATIONS_ENABLED": "false",
		"AUCTIONSCAN_LOG_LEVEL":             "debug",
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	defer func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
	}()

	cfg := DefaultConfig()
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Scan.ItemsPerPage)
	assert.Equal(t, 100*time.Millisecond, cfg.Scan.PollInterval)
	assert.Equal(t, "/tmp/scan-history.json", cfg.History.Path)
	assert.Equal(t, 500, cfg.Simulator.Listings)
	assert.Equal(t, int64(42), cfg.Simulator.Seed)
	assert.Equal(t, "/tmp/test-scans", cfg.Output.BaseDirectory)
	assert.True(t, cfg.Output.Enabled)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvIgnoresInvalidValues(t *testing.T) {
	os.Setenv("AUCTIONSCAN_ITEMS_PER_PAGE", "not-a-number")
	os.Setenv("AUCTIONSCAN_POLL_INTERVAL", "soon")
	defer func() {
		os.Unsetenv("AUCTIONSCAN_ITEMS_PER_PAGE")
		os.Unsetenv("AUCTIONSCAN_POLL_INTERVAL")
	}()

	cfg := DefaultConfig()
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Scan.ItemsPerPage)
	assert.Equal(t, 250*time.Millisecond, cfg.Scan.PollInterval)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.yaml")
		content := `
scan:
  items_per_page: 40
  poll_interval: 500ms
history:
  capacity: 5
simulator:
  listings: 75
  warmup_polls: 1
logging:
  level: warn
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg := DefaultConfig()
		err := cfg.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, 40, cfg.Scan.ItemsPerPage)
		assert.Equal(t, 500*time.Millisecond, cfg.Scan.PollInterval)
		assert.Equal(t, 5, cfg.History.Capacity)
		assert.Equal(t, 75, cfg.Simulator.Listings)
		assert.Equal(t, 1, cfg.Simulator.WarmupPolls)
		assert.Equal(t, "warn", cfg.Logging.Level)
		// Untouched sections keep their defaults
		assert.Equal(t, "token_bucket", cfg.Simulator.Limiter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("scan: [not a mapping"), 0644))

		cfg := DefaultConfig()
		err := cfg.LoadFromFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.LoadFromFile(filepath.Join(tmpDir, "does-not-exist.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty path with no config present", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.LoadFromFile("")
		assert.NoError(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "zero items per page",
			mutate:    func(c *Config) { c.Scan.ItemsPerPage = 0 },
			wantError: true,
		},
		{
			name:      "negative poll interval",
			mutate:    func(c *Config) { c.Scan.PollInterval = -time.Second },
			wantError: true,
		},
		{
			name:      "zero history capacity",
			mutate:    func(c *Config) { c.History.Capacity = 0 },
			wantError: true,
		},
		{
			name:      "negative listings",
			mutate:    func(c *Config) { c.Simulator.Listings = -1 },
			wantError: true,
		},
		{
			name:      "unknown limiter",
			mutate:    func(c *Config) { c.Simulator.Limiter = "leaky_bucket" },
			wantError: true,
		},
		{
			name: "export enabled without directory",
			mutate: func(c *Config) {
				c.Output.Enabled = true
				c.Output.BaseDirectory = ""
			},
			wantError: true,
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantError: true,
		},
		{
			name:      "invalid log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantError: true,
		},
		{
			name:      "invalid notification type",
			mutate:    func(c *Config) { c.Notifications.NotificationType = "carrier_pigeon" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJoinsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.ItemsPerPage = 0
	cfg.History.Capacity = 0
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "items per page")
	assert.Contains(t, err.Error(), "history capacity")
	assert.Contains(t, err.Error(), "log level")
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()

	flags := map[string]interface{}{
		"items-per-page": 30,
		"listings":       120,
		"seed":           int64(7),
		"history-path":   "/flag/history.json",
		"output":         "/flag/scans",
		"log-level":      "error",
	}

	cfg.MergeCommandLineFlags(flags)

	assert.Equal(t, 30, cfg.Scan.ItemsPerPage)
	assert.Equal(t, 120, cfg.Simulator.Listings)
	assert.Equal(t, int64(7), cfg.Simulator.Seed)
	assert.Equal(t, "/flag/history.json", cfg.History.Path)
	assert.Equal(t, "/flag/scans", cfg.Output.BaseDirectory)
	assert.True(t, cfg.Output.Enabled)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestMergeCommandLineFlagsIgnoresZeroValues(t *testing.T) {
	cfg := DefaultConfig()

	cfg.MergeCommandLineFlags(map[string]interface{}{
		"items-per-page": 0,
		"log-level":      "",
	})

	assert.Equal(t, 50, cfg.Scan.ItemsPerPage)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveAndLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "test-config.yaml")

	cfg := DefaultConfig()
	cfg.Scan.ItemsPerPage = 35
	cfg.Simulator.Listings = 99
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.Save(configPath))

	loaded := DefaultConfig()
	require.NoError(t, loaded.LoadFromFile(configPath))

	assert.Equal(t, 35, loaded.Scan.ItemsPerPage)
	assert.Equal(t, 99, loaded.Simulator.Listings)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
scan:
  items_per_page: 20
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	os.Setenv("AUCTIONSCAN_LOG_LEVEL", "error")
	defer os.Unsetenv("AUCTIONSCAN_LOG_LEVEL")

	// Flags beat env, env beats file, file beats defaults.
	cfg, err := Load(configPath, map[string]interface{}{
		"items-per-page": 45,
	})
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Scan.ItemsPerPage)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.History.Capacity)
}
