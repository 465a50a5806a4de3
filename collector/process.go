package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// ProcessCollector reads the raw process list. Per-process attribute
// lookups are best-effort: a process can exit between enumeration and
// inspection, so individual read errors leave zero values rather than
// failing the cycle. Ranking and fallbacks happen later in the engine.
type ProcessCollector struct{}

func (p *ProcessCollector) Name() string { return "process" }

func (p *ProcessCollector) Collect(snap *model.Snapshot) error {
	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	out := make([]model.Process, 0, len(procs))
	for _, proc := range procs {
		name, _ := proc.Name()
		user, _ := proc.Username()
		cpuPct, _ := proc.CPUPercent()
		memPct, _ := proc.MemoryPercent()
		cmd, _ := proc.Cmdline()
		out = append(out, model.Process{
			PID:     proc.Pid,
			Name:    name,
			User:    user,
			CPU:     cpuPct,
			Memory:  float64(memPct),
			Command: cmd,
		})
	}
	snap.Processes = out
	return nil
}
