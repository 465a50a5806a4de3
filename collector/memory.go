package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// MemoryCollector reads virtual memory and swap totals.
type MemoryCollector struct{}

func (m *MemoryCollector) Name() string { return "memory" }

func (m *MemoryCollector) Collect(snap *model.Snapshot) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("virtual memory: %w", err)
	}
	swap, err := mem.SwapMemory()
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	snap.Memory = model.Memory{
		Used:      usedBytes(vm),
		Total:     vm.Total,
		SwapUsed:  swap.Used,
		SwapTotal: swap.Total,
	}
	return nil
}

// usedBytes prefers the active-page figure when the platform exposes it;
// the generic used figure counts reclaimable cache on some systems.
func usedBytes(vm *mem.VirtualMemoryStat) uint64 {
	if vm.Active > 0 {
		return vm.Active
	}
	return vm.Used
}
