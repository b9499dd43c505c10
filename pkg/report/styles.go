package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(headingColor).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	valueStyle = lipgloss.NewStyle().
			Foreground(pathColor)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)
)

var (
	foundStyle    = pterm.NewStyle(pterm.FgGreen)
	notFoundStyle = pterm.NewStyle(pterm.FgYellow)
	dryRunStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)
