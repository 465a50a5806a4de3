package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// UptimeCollector reads system uptime.
type UptimeCollector struct{}

func (u *UptimeCollector) Name() string { return "uptime" }

func (u *UptimeCollector) Collect(snap *model.Snapshot) error {
	secs, err := host.Uptime()
	if err != nil {
		return fmt.Errorf("uptime: %w", err)
	}
	snap.UptimeSeconds = float64(secs)
	return nil
}
