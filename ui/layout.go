package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/ElizabethCF01/system-monitor-cli/model"
	"github.com/ElizabethCF01/system-monitor-cli/util"
)

// Process table column widths.
const (
	colPID  = 5
	colUser = 10
	colPct  = 5
	colProc = 22
	colCmd  = 40
)

const (
	coreBarWidth = 8
	maxGridCols  = 4
)

// gridDims derives the per-core grid shape from the core count.
// Columns grow with the square root of the count, capped at 4.
func gridDims(coreCount int) (cols, rows int) {
	if coreCount < 1 {
		return 1, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(coreCount))))
	if cols > maxGridCols {
		cols = maxGridCols
	}
	if cols < 1 {
		cols = 1
	}
	rows = (coreCount + cols - 1) / cols
	return cols, rows
}

// coreCell renders one fixed-width grid cell for a core.
func coreCell(idx int, pct float64) string {
	label := dimStyle.Render(padRight(fmt.Sprintf("C%d", idx), 3))
	val := styledPad(usageStyle(pct).Render(fmt.Sprintf("%.1f%%", pct)), 6)
	return label + " " + gauge(pct, coreBarWidth) + " " + val
}

// coreCellWidth is the visual width of one grid cell.
const coreCellWidth = 3 + 1 + coreBarWidth + 1 + 6

// coreGrid lays the per-core percentages out row-major. Positions past
// the core count render as blank placeholders so every row keeps the
// same rectangular shape.
func coreGrid(perCore []float64) string {
	cols, rows := gridDims(len(perCore))
	if rows == 0 {
		return ""
	}
	blank := strings.Repeat(" ", coreCellWidth)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(perCore) {
				cells = append(cells, coreCell(i, perCore[i]))
			} else {
				cells = append(cells, blank)
			}
		}
		sb.WriteString(strings.Join(cells, "  "))
		if r < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// processTable renders the ranked process list with fixed columns.
func processTable(procs []model.Process) string {
	var sb strings.Builder
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s %s %s %s %s %s",
		padLeft("PID", colPID),
		padRight("USER", colUser),
		padLeft("CPU%", colPct),
		padLeft("MEM%", colPct),
		padRight("NAME", colProc),
		padRight("COMMAND", colCmd))))
	for _, p := range procs {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s %s %s %s %s %s",
			valueStyle.Render(padLeft(fmt.Sprintf("%d", p.PID), colPID)),
			padRight(p.User, colUser),
			styledPad(usageStyle(p.CPU).Render(padLeft(fmt.Sprintf("%.1f", p.CPU), colPct)), colPct),
			styledPad(usageStyle(p.Memory).Render(padLeft(fmt.Sprintf("%.1f", p.Memory), colPct)), colPct),
			valueStyle.Render(padRight(p.Name, colProc)),
			dimStyle.Render(padRight(p.Command, colCmd))))
	}
	return sb.String()
}

// RenderDashboard renders the full dashboard for one snapshot. Pure:
// identical snapshot and width produce byte-identical output.
func RenderDashboard(snap *model.Snapshot, width, barWidth int) string {
	if barWidth < 1 {
		barWidth = defaultGaugeWidth
	}
	sep := dimStyle.Render(strings.Repeat("─", sepWidth(width)))

	memPct := pctOf(snap.Memory.Used, snap.Memory.Total)
	swapPct := pctOf(snap.Memory.SwapUsed, snap.Memory.SwapTotal)

	sections := []string{
		titleStyle.Render("sysmon") + "  " +
			dimStyle.Render("up "+util.FormatDuration(snap.UptimeSeconds)) + "  " +
			dimStyle.Render(fmt.Sprintf("load %.2f %.2f %.2f",
				snap.CPU.LoadAvg.Load1, snap.CPU.LoadAvg.Load5, snap.CPU.LoadAvg.Load15)),
		sep,
		labeledGauge("CPU", snap.CPU.Total, barWidth),
		coreGrid(snap.CPU.PerCore),
		sep,
		labeledGauge("Memory", memPct, barWidth) + "  " +
			dimStyle.Render(util.FormatBytes(float64(snap.Memory.Used))+" / "+util.FormatBytes(float64(snap.Memory.Total))),
		labeledGauge("Swap", swapPct, barWidth) + "  " +
			dimStyle.Render(util.FormatBytes(float64(snap.Memory.SwapUsed))+" / "+util.FormatBytes(float64(snap.Memory.SwapTotal))),
		sep,
		headerStyle.Render("Processes"),
		processTable(snap.Processes),
	}
	return strings.Join(sections, "\n")
}

// RenderError replaces the metrics view with the failure and a quit hint.
func RenderError(msg string) string {
	return critStyle.Render("metrics refresh failed") + "\n" +
		valueStyle.Render(msg) + "\n\n" +
		helpStyle.Render("retrying on next cycle — press q to quit")
}

// RenderPending is shown before the first cycle completes.
func RenderPending() string {
	return dimStyle.Render("gathering metrics...")
}

func pctOf(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

func sepWidth(termWidth int) int {
	w := termWidth - 2
	if w < 20 {
		w = 20
	}
	if w > 96 {
		w = 96
	}
	return w
}
