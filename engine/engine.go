package engine

import (
	"time"

	"github.com/ElizabethCF01/system-monitor-cli/collector"
	"github.com/ElizabethCF01/system-monitor-cli/model"
)

// ProcessLimit caps the ranked process table.
const ProcessLimit = 12

// Builder abstracts a source of snapshots.
type Builder interface {
	Build() (*model.Snapshot, error)
}

// Engine turns raw collector output into normalized snapshots.
type Engine struct {
	registry *collector.Registry
	limit    int
}

// NewEngine creates an engine with the default collectors registered.
// A limit <= 0 falls back to ProcessLimit.
func NewEngine(limit int) *Engine {
	if limit <= 0 {
		limit = ProcessLimit
	}
	return &Engine{
		registry: collector.NewRegistry(),
		limit:    limit,
	}
}

// Build performs one collection pass and returns a normalized snapshot.
// The four collectors run concurrently; if any fails, no snapshot is
// returned — a half-built reading is never published.
func (e *Engine) Build() (*model.Snapshot, error) {
	snap := &model.Snapshot{Timestamp: time.Now()}
	if err := e.registry.CollectAll(snap); err != nil {
		return nil, err
	}
	snap.Processes = RankProcesses(snap.Processes, e.limit)
	return snap, nil
}
