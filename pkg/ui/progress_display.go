package ui

import (
	"fmt"
	"strings"
	"sync"

	"auctionscan/pkg/history"
	"auctionscan/pkg/metadata"
	"auctionscan/pkg/scanner"
)

// ScanDisplay renders scan progress as a single in-place terminal line,
// falling back to one line per page when stdout is not a terminal.
type ScanDisplay struct {
	mu          sync.Mutex
	interactive bool
	isDebug     bool
	polls       int
}

// NewScanDisplay creates a display for one or more scan sessions
func NewScanDisplay(debug bool) *ScanDisplay {
	return &ScanDisplay{
		interactive: IsInteractive(),
		isDebug:     debug,
	}
}

// ScanStarted announces a new scan
func (d *ScanDisplay) ScanStarted(p scanner.Progress) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.polls = 0
	fmt.Printf("%s Scan started\n", Magenta("→"))
}

// ScanProgress redraws the progress line after a page is ingested
func (d *ScanDisplay) ScanProgress(p scanner.Progress) {
	d.mu.Lock()
	defer d.mu.Unlock()

	line := fmt.Sprintf("%s %s %d%% • page %d/%d • %d items • ETA %s",
		Cyan("Scanning"),
		RenderBar(p.Percent, 20),
		p.Percent,
		p.CurrentPage,
		p.TotalPages,
		p.ItemsScanned,
		p.ETA,
	)

	if d.interactive {
		// Clear line and redraw in place
		fmt.Printf("\r%s\r%s", strings.Repeat(" ", 120), line)
	} else {
		fmt.Println(line)
	}
}

// ScanCompleted prints the completion summary
func (d *ScanDisplay) ScanCompleted(entry history.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	summary := metadata.FromEntry(entry)

	fmt.Printf("\n%s Scan complete: %s\n", Green("✓"), summary.Describe())

	if entry.Elapsed > 0 {
		fmt.Printf("  %s %.1f items/min\n",
			Dim("•"),
			float64(entry.ItemCount)/entry.Elapsed.Minutes(),
		)
	}
}

// ScanCancelled prints the cancellation notice
func (d *ScanDisplay) ScanCancelled(p scanner.Progress) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Printf("\n%s Scan cancelled • %d items discarded\n", Red("✗"), p.ItemsScanned)
}

// Waiting notes a denied readiness poll. Quiet outside debug mode.
func (d *ScanDisplay) Waiting() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.polls++
	if d.isDebug {
		fmt.Printf("%s waiting on listings (poll %d)\n", Magenta("→"), d.polls)
	}
}

// LogInfo prints an info line
func (d *ScanDisplay) LogInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Cyan("[INFO]"), fmt.Sprintf(format, args...))
}

// LogSuccess prints a success line
func (d *ScanDisplay) LogSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Green("[OK]"), fmt.Sprintf(format, args...))
}

// LogWarning prints a warning line
func (d *ScanDisplay) LogWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Yellow("[WARN]"), fmt.Sprintf(format, args...))
}

// LogError prints an error line
func (d *ScanDisplay) LogError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", Red("[ERROR]"), fmt.Sprintf(format, args...))
}
