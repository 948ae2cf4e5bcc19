package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"auctionscan/pkg/auction"
	"auctionscan/pkg/metadata"
	"auctionscan/pkg/scanner"
)

// View renders the entire monitor
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Build the UI layout
	var sections []string

	// Banner
	sections = append(sections, m.renderBanner())

	// Main content area with two columns
	leftColumn := m.renderLeftColumn()
	rightColumn := m.renderRightColumn()

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		"  ", // spacing
		rightColumn,
	)
	sections = append(sections, mainContent)

	// Help
	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, helpStyle.Render("s scan • c cancel • q quit • ? help"))
	}

	// Join all sections vertically
	return baseStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderBanner renders the monitor banner
func (m *Model) renderBanner() string {
	banner := `
╔══════════════════════════════════════════════════╗
║            AUCTION HOUSE SCAN MONITOR            ║
╚══════════════════════════════════════════════════╝`

	return bannerStyle.Width(m.width).Render(banner)
}

// renderLeftColumn renders the left side of the UI
func (m *Model) renderLeftColumn() string {
	width := (m.width - 4) / 2

	var sections []string

	// Session panel
	sections = append(sections, m.renderSessionPanel(width))

	// Latest scan panel
	sections = append(sections, m.renderLatestScanPanel(width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRightColumn renders the right side of the UI
func (m *Model) renderRightColumn() string {
	width := (m.width - 4) / 2

	var sections []string

	// History panel
	sections = append(sections, m.renderHistoryPanel(width))

	// Logs panel
	sections = append(sections, m.renderLogsPanel(width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSessionPanel renders the live scan session
func (m *Model) renderSessionPanel(width int) string {
	title := titleStyle.Render(" SCAN SESSION ")

	p := m.GetProgress()
	scans, items, elapsed := m.GetSessionStats()

	state := statsValueStyle.Render(p.State.String())
	if p.State == scanner.StateScanning {
		state = m.spinner.View() + successStyle.Render("Scanning")
	}

	rows := []string{
		fmt.Sprintf("%s %s", statsLabelStyle.Render("State:"), state),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Page:"),
			statsValueStyle.Render(fmt.Sprintf("%d/%d", p.CurrentPage, p.TotalPages))),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Items:"),
			statsValueStyle.Render(fmt.Sprintf("%d of %d reported", p.ItemsScanned, p.TotalReported))),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Elapsed:"), statsValueStyle.Render(formatDuration(p.Elapsed))),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("ETA:"), statsValueStyle.Render(p.ETA)),
		"",
		m.progressBar.ViewAs(float64(p.Percent) / 100),
		"",
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Session:"),
			statsValueStyle.Render(fmt.Sprintf("%d scans, %d items in %s", scans, items, formatDuration(elapsed)))),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return panelStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, content),
	)
}

// renderLatestScanPanel renders the summary of the newest completed scan
func (m *Model) renderLatestScanPanel(width int) string {
	m.mu.RLock()
	summary := m.lastSummary
	m.mu.RUnlock()

	title := titleStyle.Render(" LATEST SCAN ")

	if summary == nil {
		content := lipgloss.NewStyle().Foreground(dimWhite).Render("No scans completed yet")
		return panelStyle.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, content),
		)
	}

	rows := []string{
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Items:"),
			statsValueStyle.Render(fmt.Sprintf("%d (%d unique)", summary.ItemCount, summary.UniqueNames))),
		fmt.Sprintf("%s %s", statsLabelStyle.Render("Usable:"),
			statsValueStyle.Render(fmt.Sprintf("%d", summary.UsableCount))),
	}

	if summary.BuyoutListings > 0 {
		rows = append(rows,
			fmt.Sprintf("%s %s", statsLabelStyle.Render("Cheapest buyout:"),
				statsValueStyle.Render(metadata.FormatCopper(summary.MinBuyout))))
	}

	// Quality breakdown in tier colors
	var tiers []string
	for q := auction.QualityPoor; q <= auction.QualityLegendary; q++ {
		if n := summary.QualityCounts[q.String()]; n > 0 {
			tiers = append(tiers, GetQualityStyle(q).Render(fmt.Sprintf("%s %d", q, n)))
		}
	}
	if len(tiers) > 0 {
		rows = append(rows, "", strings.Join(tiers, "  "))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return panelStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, content),
	)
}

// renderHistoryPanel renders the retained completed scans
func (m *Model) renderHistoryPanel(width int) string {
	title := titleStyle.Render(" SCAN HISTORY ")

	recent := m.GetRecentEntries(5)

	if len(recent) == 0 {
		content := lipgloss.NewStyle().Foreground(dimWhite).Render("No scans recorded")
		return panelStyle.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, content),
		)
	}

	var rows []string
	for i, entry := range recent {
		line := fmt.Sprintf("%s • %d items • %s",
			entry.CompletedAt.Format("15:04:05"),
			entry.ItemCount,
			formatDuration(entry.Elapsed))
		if i == 0 {
			rows = append(rows, historyLatestStyle.Render("▸ "+line))
		} else {
			rows = append(rows, historyItemStyle.Render("• "+line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return panelStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, content),
	)
}

// renderLogsPanel renders the logs panel
func (m *Model) renderLogsPanel(width int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	title := titleStyle.Render(" SCAN LOG ")

	// Get recent logs
	start := len(m.logMessages) - 10
	if start < 0 {
		start = 0
	}

	var logs []string
	for i := start; i < len(m.logMessages); i++ {
		log := m.logMessages[i]
		timestamp := logTimestampStyle.Render(log.Time.Format("15:04:05"))
		level := lipgloss.NewStyle().Foreground(log.Color).Bold(true).Render(fmt.Sprintf("[%-7s]", log.Level))
		message := logMessageStyle.Render(log.Message)

		// Truncate message if too long
		maxMsgLen := width - 25
		if maxMsgLen > 3 && len(message) > maxMsgLen {
			message = message[:maxMsgLen-3] + "..."
		}

		logs = append(logs, fmt.Sprintf("%s %s %s", timestamp, level, message))
	}

	content := strings.Join(logs, "\n")
	if content == "" {
		content = lipgloss.NewStyle().Foreground(dimWhite).Render("No log entries yet...")
	}

	// Fill the remaining vertical space
	logsHeight := m.height - 28
	if logsHeight < 5 {
		logsHeight = 5
	}

	return panelStyle.Width(width).Height(logsHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, content),
	)
}

// renderHelp renders the help panel
func (m *Model) renderHelp() string {
	help := `
  Keys:
    s/S      - Start a scan, or cancel the one in progress
    c/C      - Cancel the scan in progress
    q/Q      - Quit the monitor
    ctrl+l   - Clear the log panel
    ?        - Toggle this help

  Status Indicators:
    ` + successStyle.Render("Green") + `    - Scanning/Completed
    ` + warningStyle.Render("Orange") + `   - Warning/Cancelled
    ` + errorStyle.Render("Red") + `      - Error

  Listing qualities render in their tier colors, Poor through Legendary.
`

	return panelStyle.Width(m.width).Render(help)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "00:00"
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
