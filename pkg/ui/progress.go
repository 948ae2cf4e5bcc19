package ui

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProgressBar   = "█"
	ProgressEmpty = "░"
)

// StatusTracker accumulates results across a monitoring session that
// may span several scans
type StatusTracker struct {
	ScansCompleted int
	ItemsScanned   int
	StartTime      time.Time
}

// NewStatusTracker creates a new status tracker
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		StartTime: time.Now(),
	}
}

// RecordScan adds one completed scan to the running totals
func (st *StatusTracker) RecordScan(itemCount int) {
	st.ScansCompleted++
	st.ItemsScanned += itemCount
}

// GetElapsedTime returns the elapsed time since tracking started
func (st *StatusTracker) GetElapsedTime() time.Duration {
	return time.Since(st.StartTime)
}

// GetItemRate returns the average ingest rate (items per minute)
func (st *StatusTracker) GetItemRate() float64 {
	elapsed := st.GetElapsedTime().Minutes()
	if elapsed == 0 {
		return 0
	}
	return float64(st.ItemsScanned) / elapsed
}

// PrintStatus prints the running session totals
func (st *StatusTracker) PrintStatus() {
	fmt.Printf("\r%s Scans: %d | Items: %d | %.1f items/min",
		Green("[RECORDED]"),
		st.ScansCompleted,
		st.ItemsScanned,
		st.GetItemRate())
}

// RenderBar returns a fixed-width progress bar for a 0-100 percent value
func RenderBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100

	return fmt.Sprintf("[%s%s]",
		strings.Repeat(ProgressBar, filled),
		strings.Repeat(ProgressEmpty, width-filled))
}
