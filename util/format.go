package util

import (
	"fmt"
	"math"
	"strings"
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// FormatBytes renders a byte count with base-1024 scaling.
// Values < 10 after scaling keep one decimal place, larger values none.
func FormatBytes(bytes float64) string {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes <= 0 {
		return "0 B"
	}
	v := bytes
	unit := byteUnits[0]
	for _, u := range byteUnits[1:] {
		if v < 1024 {
			break
		}
		v /= 1024
		unit = u
	}
	if v >= 10 {
		return fmt.Sprintf("%.0f %s", v, unit)
	}
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s + " " + unit
}

// FormatDuration renders a second count as "2d 3h 0m 15s".
// Zero-valued leading units are dropped; once a unit is shown every
// smaller unit is shown too, and seconds always appear.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0s"
	}
	total := int64(seconds)
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	parts = append(parts, fmt.Sprintf("%ds", secs))
	return strings.Join(parts, " ")
}
