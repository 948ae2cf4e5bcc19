package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"auctionscan/pkg/history"
	"auctionscan/pkg/metadata"
	"auctionscan/pkg/scanner"
)

// ScanController is the control surface the monitor drives. It is
// satisfied by *scanner.Controller.
type ScanController interface {
	Activate() error
	Cancel() error
	IsScanning() bool
	Snapshot() scanner.Progress
}

// Model represents the monitor model
type Model struct {
	// UI components
	spinner     spinner.Model
	progressBar progress.Model

	// Scan state
	ctrl        ScanController
	prog        scanner.Progress
	lastSummary *metadata.ScanSummary

	// Session stats
	sessionStartTime time.Time
	scansCompleted   int
	itemsScanned     int

	// Scan history, oldest first
	entries    []history.Entry
	maxEntries int

	// UI state
	width          int
	height         int
	showHelp       bool
	logMessages    []LogMessage
	maxLogMessages int

	// Mutex for thread safety
	mu sync.RWMutex
}

// LogMessage represents a log entry
type LogMessage struct {
	Time    time.Time
	Level   string
	Message string
	Color   lipgloss.Color
}

// NewModel creates a monitor model over the given controller, seeded
// with the persisted scan history
func NewModel(ctrl ScanController, entries []history.Entry) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(goldLight)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	var prog scanner.Progress
	if ctrl != nil {
		prog = ctrl.Snapshot()
	}

	return Model{
		spinner:          s,
		progressBar:      bar,
		ctrl:             ctrl,
		prog:             prog,
		entries:          entries,
		maxEntries:       history.DefaultCapacity,
		sessionStartTime: time.Now(),
		logMessages:      []LogMessage{},
		maxLogMessages:   50,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

// SetProgress stores the latest scan snapshot
func (m *Model) SetProgress(p scanner.Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prog = p
}

// RefreshProgress re-snapshots the controller so elapsed time and ETA
// stay live between page events
func (m *Model) RefreshProgress() {
	if m.ctrl == nil {
		return
	}
	m.SetProgress(m.ctrl.Snapshot())
}

// RecordCompletion folds a completed scan into the session stats and
// the history panel
func (m *Model) RecordCompletion(entry history.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scansCompleted++
	m.itemsScanned += entry.ItemCount
	m.lastSummary = metadata.FromEntry(entry)

	m.entries = append(m.entries, entry)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[len(m.entries)-m.maxEntries:]
	}
}

// AddLogMessage adds a log message
func (m *Model) AddLogMessage(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	color := dimWhite
	switch level {
	case "ERROR":
		color = lipgloss.Color("#FF0000")
	case "WARN":
		color = emberOrange
	case "SUCCESS":
		color = vividGreen
	case "INFO":
		color = arcaneBlue
	}

	m.logMessages = append(m.logMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Color:   color,
	})

	// Keep only the last N messages
	if len(m.logMessages) > m.maxLogMessages {
		m.logMessages = m.logMessages[len(m.logMessages)-m.maxLogMessages:]
	}
}

// GetProgress returns the latest stored snapshot
func (m *Model) GetProgress() scanner.Progress {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.prog
}

// GetRecentEntries returns up to n retained scans, newest first
func (m *Model) GetRecentEntries(n int) []history.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var recent []history.Entry
	for i := len(m.entries) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, m.entries[i])
	}
	return recent
}

// GetSessionStats returns the totals accumulated this session
func (m *Model) GetSessionStats() (scans, items int, elapsed time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.scansCompleted, m.itemsScanned, time.Since(m.sessionStartTime)
}
