package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultGaugeWidth = 24

// gaugeFill computes the filled-cell count for a percentage bar.
// Non-finite percentages clamp to 0, values outside [0,100] clamp in.
func gaugeFill(pct float64, width int) int {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	return filled
}

// gauge renders a percentage bar of given width, colored by severity.
func gauge(pct float64, width int) string {
	if width < 1 {
		width = defaultGaugeWidth
	}
	filled := gaugeFill(pct, width)
	empty := width - filled
	if empty < 0 {
		empty = 0
	}
	b := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return usageStyle(pct).Render(b)
}

// labeledGauge renders a header line with the label and percentage to
// one decimal place, then the bar itself.
func labeledGauge(label string, pct float64, width int) string {
	shown := pct
	if math.IsNaN(shown) || math.IsInf(shown, 0) {
		shown = 0
	}
	header := fmt.Sprintf("%s %s",
		headerStyle.Render(label),
		usageStyle(pct).Render(fmt.Sprintf("%.1f%%", shown)))
	return header + "\n" + gauge(pct, width)
}

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		if width > 3 {
			return string(r[:width-3]) + "..."
		}
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func padLeft(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// truncate shortens s to maxLen runes with ellipsis if needed.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
