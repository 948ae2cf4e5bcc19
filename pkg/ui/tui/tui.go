package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"auctionscan/pkg/history"
	"auctionscan/pkg/scanner"
)

// TUI wraps the terminal program driving the scan monitor. It
// implements ui.Monitor so the host loop can feed it scan events.
type TUI struct {
	program *tea.Program
	model   *Model
}

// NewTUI creates a monitor over the given controller, seeded with the
// persisted scan history
func NewTUI(ctrl ScanController, entries []history.Entry) *TUI {
	model := NewModel(ctrl, entries)
	program := tea.NewProgram(&model, tea.WithAltScreen())

	return &TUI{
		program: program,
		model:   &model,
	}
}

// Start runs the monitor until the user quits
func (t *TUI) Start() error {
	_, err := t.program.Run()
	return err
}

// Stop stops the monitor gracefully
func (t *TUI) Stop() {
	t.program.Quit()
}

// Send sends a message to the monitor
func (t *TUI) Send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

// ScanStarted notifies the monitor that a scan started
func (t *TUI) ScanStarted(p scanner.Progress) {
	t.Send(SendScanStarted(p))
}

// ScanProgress delivers a page-ingest snapshot
func (t *TUI) ScanProgress(p scanner.Progress) {
	t.Send(SendScanProgress(p))
}

// ScanCompleted notifies the monitor that a scan completed
func (t *TUI) ScanCompleted(entry history.Entry) {
	t.Send(SendScanCompleted(entry))
}

// ScanCancelled notifies the monitor that a scan was cancelled
func (t *TUI) ScanCancelled(p scanner.Progress) {
	t.Send(SendScanCancelled(p))
}

// Log sends a log message to the monitor
func (t *TUI) Log(level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	t.Send(SendLog(level, message))
}

// LogInfo logs an info message
func (t *TUI) LogInfo(format string, args ...interface{}) {
	t.Log("INFO", format, args...)
}

// LogSuccess logs a success message
func (t *TUI) LogSuccess(format string, args ...interface{}) {
	t.Log("SUCCESS", format, args...)
}

// LogWarning logs a warning message
func (t *TUI) LogWarning(format string, args ...interface{}) {
	t.Log("WARN", format, args...)
}

// LogError logs an error message
func (t *TUI) LogError(format string, args ...interface{}) {
	t.Log("ERROR", format, args...)
}
