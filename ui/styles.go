package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	hotStyle    = lipgloss.NewStyle().Foreground(colorMagenta)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// tier is a usage severity band.
type tier int

const (
	tierGray tier = iota
	tierGreen
	tierYellow
	tierMagenta
	tierRed
)

// usageTier maps a usage percentage to its severity band. The same
// ladder applies everywhere a percentage is colored: core cells, memory
// bars, and totals.
func usageTier(pct float64) tier {
	switch {
	case math.IsNaN(pct) || math.IsInf(pct, 0):
		return tierGray
	case pct >= 90:
		return tierRed
	case pct >= 75:
		return tierMagenta
	case pct >= 50:
		return tierYellow
	default:
		return tierGreen
	}
}

// usageStyle returns the lipgloss style for a usage percentage.
func usageStyle(pct float64) lipgloss.Style {
	switch usageTier(pct) {
	case tierRed:
		return critStyle
	case tierMagenta:
		return hotStyle
	case tierYellow:
		return warnStyle
	case tierGreen:
		return okStyle
	default:
		return dimStyle
	}
}
