package engine

import (
	"sort"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// RankProcesses filters out processes idle on both CPU and memory, sorts
// the rest by descending CPU (ties keep provider order), truncates to
// limit, and applies display fallbacks for empty name and user fields.
func RankProcesses(procs []model.Process, limit int) []model.Process {
	ranked := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		if p.CPU > 0 || p.Memory > 0 {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPU > ranked[j].CPU
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for i := range ranked {
		if ranked[i].Name == "" {
			ranked[i].Name = ranked[i].Command
		}
		if ranked[i].Name == "" {
			ranked[i].Name = "unknown"
		}
		if ranked[i].User == "" {
			ranked[i].User = "-"
		}
	}
	return ranked
}
