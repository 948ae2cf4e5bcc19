package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"auctionscan/pkg/history"
	"auctionscan/pkg/scanner"
)

// Message types for the monitor

// ScanStartedMsg is sent when a scan starts
type ScanStartedMsg struct {
	Progress scanner.Progress
}

// ScanProgressMsg is sent after a page is ingested
type ScanProgressMsg struct {
	Progress scanner.Progress
}

// ScanCompletedMsg is sent when a scan completes
type ScanCompletedMsg struct {
	Entry history.Entry
}

// ScanCancelledMsg is sent when a scan is cancelled
type ScanCancelledMsg struct {
	Progress scanner.Progress
}

// LogMsg is sent to add a log message
type LogMsg struct {
	Level   string
	Message string
}

// TickMsg is sent periodically to refresh elapsed time and ETA
type TickMsg time.Time

// Update handles all messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		// Keep elapsed and ETA moving between page events
		m.RefreshProgress()
		return m, tickCmd()

	case ScanStartedMsg:
		m.SetProgress(msg.Progress)
		m.AddLogMessage("INFO", "Scan started")
		return m, nil

	case ScanProgressMsg:
		m.SetProgress(msg.Progress)
		return m, nil

	case ScanCompletedMsg:
		m.RecordCompletion(msg.Entry)
		m.RefreshProgress()
		m.AddLogMessage("SUCCESS", fmt.Sprintf("Scan complete: %d items", msg.Entry.ItemCount))
		return m, nil

	case ScanCancelledMsg:
		m.SetProgress(msg.Progress)
		m.AddLogMessage("WARN", fmt.Sprintf("Scan cancelled, %d items discarded", msg.Progress.ItemsScanned))
		return m, nil

	case LogMsg:
		m.AddLogMessage(msg.Level, msg.Message)
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "s", "S":
		if m.ctrl != nil {
			if err := m.ctrl.Activate(); err != nil {
				m.AddLogMessage("WARN", err.Error())
			}
		}
		return m, nil

	case "c", "C":
		if m.ctrl != nil {
			if err := m.ctrl.Cancel(); err != nil {
				m.AddLogMessage("WARN", err.Error())
			}
		}
		return m, nil

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "ctrl+l":
		// Clear logs
		m.mu.Lock()
		m.logMessages = []LogMessage{}
		m.mu.Unlock()
		return m, nil
	}

	return m, nil
}

// Commands

// tickCmd returns a command that sends a tick message
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Helper functions for external use

// SendScanStarted creates a message for a started scan
func SendScanStarted(p scanner.Progress) tea.Msg {
	return ScanStartedMsg{Progress: p}
}

// SendScanProgress creates a message for an ingested page
func SendScanProgress(p scanner.Progress) tea.Msg {
	return ScanProgressMsg{Progress: p}
}

// SendScanCompleted creates a message for a completed scan
func SendScanCompleted(entry history.Entry) tea.Msg {
	return ScanCompletedMsg{Entry: entry}
}

// SendScanCancelled creates a message for a cancelled scan
func SendScanCancelled(p scanner.Progress) tea.Msg {
	return ScanCancelledMsg{Progress: p}
}

// SendLog creates a log message
func SendLog(level, message string) tea.Msg {
	return LogMsg{Level: level, Message: message}
}
