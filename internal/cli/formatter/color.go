// Package formatter renders engine output for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskStyle returns the style for a burnout risk level.
func RiskStyle(level domain.RiskLevel) lipgloss.Style {
	switch level {
	case domain.RiskLow:
		return StyleGreen
	case domain.RiskModerate:
		return StyleYellow
	case domain.RiskHigh:
		return StyleOrange
	case domain.RiskCritical:
		return StyleRed
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored indicator such as "● HIGH".
func RiskIndicator(level domain.RiskLevel) string {
	return RiskStyle(level).Render("● " + strings.ToUpper(string(level)))
}

// TrendIndicator returns a colored arrow plus label for a trend.
func TrendIndicator(trend domain.Trend) string {
	switch trend {
	case domain.TrendImproving:
		return StyleGreen.Render("▼ improving")
	case domain.TrendWorsening:
		return StyleRed.Render("▲ worsening")
	default:
		return StyleDim.Render("→ stable")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
