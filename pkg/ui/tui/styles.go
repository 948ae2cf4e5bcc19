package tui

import (
	"github.com/charmbracelet/lipgloss"

	"auctionscan/pkg/auction"
)

var (
	// Auction house color palette
	goldLight   = lipgloss.Color("#FFD700")
	emberOrange = lipgloss.Color("#FF6700")
	arcaneBlue  = lipgloss.Color("#69CCF0")
	vividGreen  = lipgloss.Color("#1EFF00")
	darkBg      = lipgloss.Color("#14100B")
	darkBg2     = lipgloss.Color("#241C12")
	dimWhite    = lipgloss.Color("#B0B0B0")

	// Listing quality tier colors
	qualityColors = map[auction.Quality]lipgloss.Color{
		auction.QualityPoor:      lipgloss.Color("#9D9D9D"),
		auction.QualityCommon:    lipgloss.Color("#FFFFFF"),
		auction.QualityUncommon:  lipgloss.Color("#1EFF00"),
		auction.QualityRare:      lipgloss.Color("#0070DD"),
		auction.QualityEpic:      lipgloss.Color("#A335EE"),
		auction.QualityLegendary: lipgloss.Color("#FF8000"),
	}

	// Base styles
	baseStyle = lipgloss.NewStyle().
			Background(darkBg).
			Foreground(dimWhite)

	// Banner style
	bannerStyle = lipgloss.NewStyle().
			Foreground(goldLight).
			Bold(true).
			Padding(1, 0).
			Align(lipgloss.Center)

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(goldLight).
			Background(darkBg2).
			Padding(1, 2)

	// Progress bar styles
	progressBarStyle = lipgloss.NewStyle().
				Foreground(vividGreen).
				Background(darkBg)

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#333333"))

	// Stats styles
	statsLabelStyle = lipgloss.NewStyle().
			Foreground(arcaneBlue).
			Bold(true)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(goldLight)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(vividGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(emberOrange).
			Bold(true)

	// History entry styles
	historyItemStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	historyLatestStyle = lipgloss.NewStyle().
				Foreground(vividGreen).
				Bold(true).
				PaddingLeft(2)

	// Log styles
	logTimestampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	logMessageStyle = lipgloss.NewStyle().
			Foreground(dimWhite)

	// Help style
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0, 0, 2)

	// Title styles for panels
	titleStyle = lipgloss.NewStyle().
			Background(goldLight).
			Foreground(darkBg).
			Bold(true).
			Padding(0, 1)
)

// GetProgressBarStyle returns the appropriate style based on progress percentage
func GetProgressBarStyle(percentage float64) lipgloss.Style {
	switch {
	case percentage >= 80:
		return progressBarStyle.Foreground(vividGreen)
	case percentage >= 50:
		return progressBarStyle.Foreground(goldLight)
	case percentage >= 30:
		return progressBarStyle.Foreground(emberOrange)
	default:
		return progressBarStyle.Foreground(arcaneBlue)
	}
}

// GetQualityStyle returns the display style for a listing quality tier
func GetQualityStyle(q auction.Quality) lipgloss.Style {
	color, ok := qualityColors[q]
	if !ok {
		color = dimWhite
	}
	return lipgloss.NewStyle().Foreground(color)
}
