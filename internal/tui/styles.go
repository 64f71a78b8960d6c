package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pbaille/mindvault/internal/domain"
)

// ─── Colors ──────────────────────────────────────────────────────────────────

var (
	colorOverlay  = lipgloss.Color("#6e6a86")
	colorText     = lipgloss.Color("#e0def4")
	colorSubtext  = lipgloss.Color("#908caa")
	colorLavender = lipgloss.Color("#c4a7e7")
	colorGreen    = lipgloss.Color("#9ccfd8")
	colorPeach    = lipgloss.Color("#f6c177")
	colorRed      = lipgloss.Color("#eb6f92")
	colorBlue     = lipgloss.Color("#31748f")
	colorMauve    = lipgloss.Color("#ebbcba")
)

// ─── Layout ──────────────────────────────────────────────────────────────────

var (
	appStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(1, 2)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorOverlay).
			Foreground(colorLavender).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMauve).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			Padding(0, 1)

	flashStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			MarginBottom(1)
)

// ─── List ────────────────────────────────────────────────────────────────────

var (
	listItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	listSelectedStyle = lipgloss.NewStyle().
				Foreground(colorLavender).
				Bold(true).
				PaddingLeft(1)

	idStyle = lipgloss.NewStyle().
		Foreground(colorBlue)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Italic(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	metaStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	noResultsStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Italic(true).
			PaddingLeft(2)
)

// ─── Detail / Input ──────────────────────────────────────────────────────────

var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorSubtext).
				Width(11).
				Align(lipgloss.Right).
				PaddingRight(1)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorLavender).
			Padding(0, 1)
)

func sentimentStyle(s domain.Sentiment) lipgloss.Style {
	switch s {
	case domain.Positive:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case domain.Negative:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorSubtext)
	}
}
