package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// CPUCollector reads aggregate and per-core CPU load plus load averages.
type CPUCollector struct{}

func (c *CPUCollector) Name() string { return "cpu" }

func (c *CPUCollector) Collect(snap *model.Snapshot) error {
	total, err := cpu.Percent(0, false)
	if err != nil {
		return fmt.Errorf("aggregate load: %w", err)
	}
	if len(total) > 0 {
		snap.CPU.Total = total[0]
	}

	perCore, err := cpu.Percent(0, true)
	if err != nil {
		return fmt.Errorf("per-core load: %w", err)
	}
	snap.CPU.PerCore = perCore

	// Load averages are legitimately unavailable on some platforms
	// (Windows). Zeros are a documented degradation, not a failure.
	if avg, err := load.Avg(); err == nil {
		snap.CPU.LoadAvg = model.LoadAvg{
			Load1:  avg.Load1,
			Load5:  avg.Load5,
			Load15: avg.Load15,
		}
	}
	return nil
}
