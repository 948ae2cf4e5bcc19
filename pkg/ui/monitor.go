package ui

import (
	"auctionscan/pkg/history"
	"auctionscan/pkg/scanner"
)

// Monitor is the display surface for scan sessions. Both the in-place
// terminal display and the full-screen monitor implement it, so the
// host loop renders through one interface.
type Monitor interface {
	ScanStarted(p scanner.Progress)
	ScanProgress(p scanner.Progress)
	ScanCompleted(entry history.Entry)
	ScanCancelled(p scanner.Progress)
	LogInfo(format string, args ...interface{})
	LogSuccess(format string, args ...interface{})
	LogWarning(format string, args ...interface{})
	LogError(format string, args ...interface{})
}
