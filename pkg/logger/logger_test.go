package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"auctionscan/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name: "valid config with info level",
			cfg: &config.LoggingConfig{
				Level: "info",
			},
			wantErr: false,
		},
		{
			name: "valid config with debug level",
			cfg: &config.LoggingConfig{
				Level: "debug",
			},
			wantErr: false,
		},
		{
			name: "json format",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			cfg: &config.LoggingConfig{
				Level: "invalid",
			},
			wantErr: true,
		},
		{
			name: "config with file output",
			cfg: &config.LoggingConfig{
				Level: "info",
				File:  "/tmp/auctionscan-test.log",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}

			// Clean up test files
			if tt.cfg.File != "" {
				os.Remove(tt.cfg.File)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"fatal", zerolog.FatalLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if level != tt.expected {
				t.Errorf("parseLogLevel() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zlog := zerolog.New(buf).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return &zerologLogger{
		logger: &zlog,
		fields: make(map[string]interface{}),
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	tests := []struct {
		name string
		log  func(string)
	}{
		{"Debug", logger.Debug},
		{"Info", logger.Info},
		{"Warn", logger.Warn},
		{"Error", logger.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(tt.name + " message")
			if !strings.Contains(buf.String(), tt.name+" message") {
				t.Errorf("%s message not found in output", tt.name)
			}
		})
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithField("page", 3).Info("page ingested")

	output := buf.String()
	if !strings.Contains(output, "page ingested") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"page":3`) {
		t.Error("Field not found in output")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithFields(map[string]interface{}{
		"realm": "stormwind",
		"items": 42,
		"full":  true,
		"rate":  3.14,
	}).Info("batch complete")

	output := buf.String()
	if !strings.Contains(output, "batch complete") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"realm":"stormwind"`) {
		t.Error("String field not found in output")
	}
	if !strings.Contains(output, `"items":42`) {
		t.Error("Int field not found in output")
	}
	if !strings.Contains(output, `"full":true`) {
		t.Error("Bool field not found in output")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// Nil error returns the same logger
	if logger.WithError(nil) != Logger(logger) {
		t.Error("WithError(nil) should return the same logger")
	}

	testErr := &testError{msg: "venue closed"}
	logger.WithError(testErr).Error("scan aborted")

	output := buf.String()
	if !strings.Contains(output, "scan aborted") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, "venue closed") {
		t.Error("Error message not found in output")
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.InfoWithFields("scan completed", map[string]interface{}{
		"items":   75,
		"pages":   2,
		"elapsed": 5 * time.Second,
	})

	output := buf.String()
	if !strings.Contains(output, "scan completed") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"items":75`) {
		t.Error("Items field not found in output")
	}
	if !strings.Contains(output, `"pages":2`) {
		t.Error("Pages field not found in output")
	}
}

func TestFieldTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	fields := map[string]interface{}{
		"string":   "test",
		"int":      123,
		"int64":    int64(456),
		"float":    3.14,
		"bool":     true,
		"time":     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		"duration": time.Second * 5,
		"strings":  []string{"a", "b", "c"},
		"ints":     []int{1, 2, 3},
		"custom":   struct{ Name string }{Name: "test"},
	}

	logger.WithFields(fields).Info("test all types")

	if !strings.Contains(buf.String(), "test all types") {
		t.Error("Message not found in output")
	}
}

func TestFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.
		WithField("component", "scanner").
		WithField("page", 1).
		WithFields(map[string]interface{}{
			"items": 50,
			"total": 237,
		}).
		Info("chained fields")

	output := buf.String()
	for _, want := range []string{
		"chained fields",
		`"component":"scanner"`,
		`"page":1`,
		`"items":50`,
		`"total":237`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("%s not found in output", want)
		}
	}
}

func TestGlobalLogger(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level: "debug",
	}

	if err := Initialize(cfg); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if GetLogger() == nil {
		t.Error("GetLogger() returned nil")
	}

	// Convenience functions must not panic
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	WithField("key", "value").Info("with field")
	WithFields(map[string]interface{}{"k1": "v1", "k2": "v2"}).Info("with fields")
	WithError(&testError{msg: "test"}).Error("with error")
}

func TestTestLoggerCaptures(t *testing.T) {
	tl := NewTestLogger()

	tl.Info("scan started")
	tl.WithField("page", 2).Warn("slow page")
	tl.WithError(&testError{msg: "boom"}).Error("persist failed")

	if !tl.HasMessage("scan started") {
		t.Error("expected captured info message")
	}
	if len(tl.GetMessagesByLevel("WARN")) != 1 {
		t.Error("expected one warn message")
	}
	if !tl.HasError() {
		t.Error("expected captured error")
	}

	msgs := tl.GetMessages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Fields["page"] != 2 {
		t.Errorf("expected page field 2, got %v", msgs[1].Fields["page"])
	}

	tl.Clear()
	if len(tl.GetMessages()) != 0 {
		t.Error("expected cleared messages")
	}
}

// Helper error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
