// Package logger provides a structured logging interface for the auction scanner.
//
// It wraps the zerolog library to provide a clean, easy-to-use API with support for:
// - Multiple log levels (Debug, Info, Warn, Error, Fatal)
// - Structured logging with fields
// - Pretty console output with colors, or raw JSON
// - Optional file output (always JSON, machine readable)
// - Global logger instance for easy access
//
// Basic Usage:
//
//	import "auctionscan/pkg/logger"
//
//	// Initialize the global logger
//	cfg := &config.LoggingConfig{
//	    Level:  "info",
//	    Format: "console",
//	}
//	err := logger.Initialize(cfg)
//
//	// Use the global logger
//	logger.Info("scanner ready")
//	logger.WithField("page", 3).Info("page ingested")
//	logger.WithError(err).Error("failed to persist history")
//
// Advanced Usage:
//
//	// Create a logger instance with fields
//	log := logger.GetLogger().
//	    WithField("component", "scanner").
//	    WithField("scan_id", id)
//
//	// Use structured logging
//	log.InfoWithFields("scan completed", map[string]interface{}{
//	    "items":   75,
//	    "pages":   2,
//	    "elapsed": time.Second * 5,
//	})
//
// The logger supports the following configuration options:
// - Level: Log level (debug, info, warn, error, fatal, disabled)
// - File: Path to a JSON log file (empty for console only)
// - Format: Console output format (console or json)
package logger
